// Package preview implements the single-slot, cancel-on-replace preview
// engine: Go(path, mime) aborts whatever producer is in flight, starts a
// fresh one, and the producer emits exactly one Preview event — never an
// error — onto the engine's Events channel.
package preview

import (
	"context"
	"sync"

	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/event"
	"github.com/nightswitch/fmcore/pkg/mime"
)

// Producer computes one preview artifact for path under ctx, returning the
// result data or an error. The engine converts any error (including
// cancellation) to event.PreviewData{} (the None variant) before emitting.
type Producer func(ctx context.Context, path string) (event.PreviewData, error)

// Dispatch maps a mime.Kind to the Producer that handles it. Callers supply
// this so the engine itself stays free of concrete producer implementations
// (folder/text/image/video/archive — see the sibling files in this
// package) and is easy to test with fakes.
type Dispatch map[mime.Kind]Producer

// Engine holds the single in-flight producer slot for one viewport. The
// zero value is not usable; construct with New.
type Engine struct {
	mu       sync.Mutex
	path     string
	data     event.PreviewData
	cancel   context.CancelFunc
	dispatch Dispatch
	events   chan<- event.Event
	size     func() (int, int)
	layout   config.LayoutConfig
}

// New builds an Engine. events receives every Preview/Files event the
// engine's producers emit; termSize reports the current terminal (cols,
// rows), queried fresh on every Go call since the terminal may have
// resized.
func New(dispatch Dispatch, events chan<- event.Event, termSize func() (int, int), layout config.LayoutConfig) *Engine {
	return &Engine{dispatch: dispatch, events: events, size: termSize, layout: layout}
}

// Go replaces the current preview target: it cancels any producer still
// running for the prior target, then launches a new one for (path, mimeStr).
// The producer's single Preview event carries path, so a consumer filtering
// on its current selection discards stale deliveries from an aborted prior
// call (see the package doc and spec scenario 2).
func (e *Engine) Go(path, mimeStr string) {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.path = path
	e.cancel = cancel
	e.mu.Unlock()

	kind := mime.New(mimeStr)
	producer, ok := e.dispatch[kind]

	go func() {
		var data event.PreviewData
		var err error
		if ok {
			data, err = producer(ctx, path)
		} else {
			err = unsupportedMimeError(mimeStr)
		}
		if err != nil {
			data = event.PreviewData{}
		}
		e.events <- event.Preview{Path: path, Data: data}
	}()
}

// Reset clears the current preview target. It returns whether state
// actually changed, so a fresh engine's first Reset returns false and every
// subsequent Reset (until the next Go) also returns false.
func (e *Engine) Reset() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.path == "" {
		return false
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.path = ""
	e.data = event.PreviewData{}
	return true
}

// Viewport returns the preview pane's current column/row budget, derived
// from the terminal size and the configured layout ratios.
func (e *Engine) Viewport() Viewport {
	cols, rows := e.size()
	return Size(cols, rows, e.layout)
}

type unsupportedMimeErr struct{ mime string }

func (e unsupportedMimeErr) Error() string { return "Unsupported mimetype: " + e.mime }

func unsupportedMimeError(m string) error { return unsupportedMimeErr{mime: m} }
