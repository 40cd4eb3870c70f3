package opener

import (
	"testing"

	"github.com/nightswitch/fmcore/pkg/config"
)

func testConfig() config.OpenConfig {
	return config.OpenConfig{
		Rules: []config.OpenRule{
			{Mime: "text/*", Openers: []config.Opener{{Command: "vi {{.path}}"}}},
			{Mime: "image/png", Openers: []config.Opener{{Command: "feh {{.paths}}", Spread: true}}},
			{Mime: "*/*", Openers: []config.Opener{{Command: "xdg-open {{.path}}"}}},
		},
	}
}

func TestResolveExactMatchBeforeWildcard(t *testing.T) {
	cfg := testConfig()
	openers := Resolve(cfg, "image/png")
	if len(openers) != 1 || !openers[0].Spread {
		t.Fatalf("expected the exact image/png rule, got %+v", openers)
	}
}

func TestResolvePrefixMatch(t *testing.T) {
	cfg := testConfig()
	openers := Resolve(cfg, "text/x-go")
	if len(openers) != 1 || openers[0].Command != "vi {{.path}}" {
		t.Fatalf("unexpected openers: %+v", openers)
	}
}

func TestResolveFallsBackToCatchAll(t *testing.T) {
	cfg := testConfig()
	openers := Resolve(cfg, "application/octet-stream")
	if len(openers) != 1 || openers[0].Command != "xdg-open {{.path}}" {
		t.Fatalf("unexpected openers: %+v", openers)
	}
}

func TestGroupSpreadProducesSingleBatch(t *testing.T) {
	cfg := testConfig()
	batches := Group(cfg, "image/png", []string{"a.png", "b.png", "c.png"})
	if len(batches) != 1 || len(batches[0].Paths) != 3 {
		t.Fatalf("expected one batch with 3 paths, got %+v", batches)
	}
}

func TestGroupNonSpreadProducesOneBatchPerPath(t *testing.T) {
	cfg := testConfig()
	batches := Group(cfg, "text/plain", []string{"a.txt", "b.txt"})
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	for _, b := range batches {
		if len(b.Paths) != 1 {
			t.Fatalf("expected 1 path per batch, got %+v", b)
		}
	}
}

func TestGroupEmptySelectionProducesNoBatches(t *testing.T) {
	cfg := testConfig()
	if batches := Group(cfg, "text/plain", nil); batches != nil {
		t.Fatalf("expected nil batches for empty selection, got %+v", batches)
	}
}
