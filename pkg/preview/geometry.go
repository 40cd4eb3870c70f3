package preview

import "github.com/nightswitch/fmcore/pkg/config"

// Viewport is the (columns, rows) budget allocated to the preview pane,
// derived from the terminal size on every producer launch (the terminal
// may have resized since the last one).
type Viewport struct {
	Cols int
	Rows int
}

// Size computes the preview viewport from the full terminal size and the
// layout constants. Both axes saturate at zero rather than go negative.
func Size(termCols, termRows int, layout config.LayoutConfig) Viewport {
	cols := saturatingSub(termCols*layout.PreviewRatio/nonZero(layout.AllRatio), layout.PreviewBorder)
	rows := saturatingSub(termRows, layout.PreviewPadding)
	return Viewport{Cols: cols, Rows: rows}
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// nonZero guards against a misconfigured AllRatio of 0, which would
// otherwise divide by zero; 1 makes the ratio a no-op rather than a crash.
func nonZero(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
