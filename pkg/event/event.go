// Package event defines the typed events the preview engine and task
// scheduler publish to the TUI layer. The TUI owns the channel; this package
// only describes what travels across it.
package event

import "github.com/nightswitch/fmcore/pkg/vfile"

// Event is the common interface implemented by every event kind emitted onto
// the shared event channel.
type Event interface {
	isEvent()
}

// Preview is emitted exactly once per Engine.Go call that isn't superseded by
// a later call before it completes.
type Preview struct {
	Path string
	Data PreviewData
}

func (Preview) isEvent() {}

// PreviewKind tags the PreviewData variant in play.
type PreviewKind int

const (
	PreviewNone PreviewKind = iota
	PreviewFolder
	PreviewText
	PreviewImage
)

// PreviewData is a tagged union: None | Folder | Text(string) | Image([]byte).
// The zero value is None.
type PreviewData struct {
	Kind  PreviewKind
	Text  string
	Image []byte
}

// Files is emitted only by the folder producer, before its Preview event.
type Files struct {
	Op FilesOp
}

func (Files) isEvent() {}

// FilesOpKind distinguishes a successful directory read from a failed one.
type FilesOpKind int

const (
	FilesRead FilesOpKind = iota
	FilesIOErr
)

// FilesOp carries either a directory listing or an IO failure marker.
type FilesOp struct {
	Kind  FilesOpKind
	Path  string
	Items []*vfile.File
}

// Progress is emitted whenever the scheduler's aggregate progress changes.
type Progress struct {
	OverallBytesDone  int64
	OverallBytesTotal int64
	OverallItemsDone  int64
	OverallItemsTotal int64
	ActiveCount       int
}

func (Progress) isEvent() {}
