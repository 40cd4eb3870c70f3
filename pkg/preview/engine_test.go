package preview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/event"
	"github.com/nightswitch/fmcore/pkg/mime"
)

func testEngine(events chan event.Event, dispatch Dispatch) *Engine {
	return New(dispatch, events, func() (int, int) { return 80, 24 }, config.GetDefaultConfig().Layout)
}

func drainPreview(t *testing.T, events chan event.Event) event.Preview {
	t.Helper()
	select {
	case e := <-events:
		p, ok := e.(event.Preview)
		if !ok {
			t.Fatalf("expected a Preview event, got %T", e)
		}
		return p
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for a Preview event")
		return event.Preview{}
	}
}

func TestResetOnFreshEngineReturnsFalse(t *testing.T) {
	e := testEngine(make(chan event.Event, 4), Dispatch{})
	if e.Reset() {
		t.Fatalf("expected false on a fresh engine")
	}
}

func TestResetAfterGoReturnsTrueThenFalse(t *testing.T) {
	events := make(chan event.Event, 4)
	dispatch := Dispatch{
		mime.Text: func(ctx context.Context, path string) (event.PreviewData, error) {
			return event.PreviewData{Kind: event.PreviewText, Text: "ok"}, nil
		},
	}
	e := testEngine(events, dispatch)

	e.Go("/a.txt", "text/plain")
	drainPreview(t, events)

	if !e.Reset() {
		t.Fatalf("expected true after a completed go()")
	}
	if e.Reset() {
		t.Fatalf("expected false on the second reset")
	}
}

func TestGoEmitsExactlyOnePreviewEvent(t *testing.T) {
	events := make(chan event.Event, 4)
	dispatch := Dispatch{
		mime.Text: func(ctx context.Context, path string) (event.PreviewData, error) {
			return event.PreviewData{Kind: event.PreviewText, Text: "hi"}, nil
		},
	}
	e := testEngine(events, dispatch)

	e.Go("/a.txt", "text/plain")
	p := drainPreview(t, events)
	if p.Path != "/a.txt" || p.Data.Text != "hi" {
		t.Fatalf("unexpected preview: %+v", p)
	}

	select {
	case extra := <-events:
		t.Fatalf("expected exactly one event, got an extra one: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGoTwiceOnlyLatestSelectionMatters(t *testing.T) {
	events := make(chan event.Event, 4)
	dispatch := Dispatch{
		mime.Text: func(ctx context.Context, path string) (event.PreviewData, error) {
			return event.PreviewData{Kind: event.PreviewText, Text: path}, nil
		},
	}
	e := testEngine(events, dispatch)

	e.Go("/a.txt", "text/plain")
	e.Go("/b.txt", "text/plain")

	seenB := false
	for i := 0; i < 2; i++ {
		select {
		case ev := <-events:
			p := ev.(event.Preview)
			if p.Path == "/b.txt" {
				seenB = true
			}
		case <-time.After(time.Second):
		}
	}
	if !seenB {
		t.Fatalf("expected a Preview(/b.txt, ...) event eventually")
	}
}

func TestGoUnsupportedMimeEmitsNone(t *testing.T) {
	events := make(chan event.Event, 4)
	e := testEngine(events, Dispatch{})

	e.Go("/x.bin", "application/x-random")
	p := drainPreview(t, events)
	if p.Path != "/x.bin" {
		t.Fatalf("unexpected path: %s", p.Path)
	}
	if p.Data.Kind != event.PreviewNone {
		t.Fatalf("expected None preview data, got %+v", p.Data)
	}
}

func TestGoProducerErrorEmitsNone(t *testing.T) {
	events := make(chan event.Event, 4)
	dispatch := Dispatch{
		mime.Text: func(ctx context.Context, path string) (event.PreviewData, error) {
			return event.PreviewData{}, errors.New("boom")
		},
	}
	e := testEngine(events, dispatch)

	e.Go("/a.txt", "text/plain")
	p := drainPreview(t, events)
	if p.Data.Kind != event.PreviewNone {
		t.Fatalf("expected None preview data on error, got %+v", p.Data)
	}
}

func TestViewportSaturatesAtZero(t *testing.T) {
	events := make(chan event.Event, 4)
	e := testEngine(events, Dispatch{})
	e.size = func() (int, int) { return 1, 1 }
	e.layout = config.LayoutConfig{AllRatio: 10, PreviewRatio: 3, PreviewBorder: 50, PreviewPadding: 50}

	vp := e.Viewport()
	if vp.Cols != 0 || vp.Rows != 0 {
		t.Fatalf("expected saturated viewport, got %+v", vp)
	}
}
