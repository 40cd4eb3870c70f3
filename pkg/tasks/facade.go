package tasks

import (
	"context"

	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/fsurl"
	"github.com/nightswitch/fmcore/pkg/mime"
	"github.com/nightswitch/fmcore/pkg/opener"
	"github.com/nightswitch/fmcore/pkg/utils"
)

// Facade is the thin, synchronous-looking API a TUI calls. Every mutating
// method enqueues work onto the owned Scheduler and returns false — refreshes are
// driven by the progress pump, never by a method's return value.
type Facade struct {
	scheduler *Scheduler
	openCfg   config.OpenConfig
	layout    config.LayoutConfig
}

// NewFacade builds a Facade in front of scheduler.
func NewFacade(scheduler *Scheduler, openCfg config.OpenConfig, layout config.LayoutConfig) *Facade {
	return &Facade{scheduler: scheduler, openCfg: openCfg, layout: layout}
}

// Target pairs a URL with the mime string precache and open need to filter
// and group on.
type Target struct {
	URL  fsurl.URL
	Mime string
}

// Open groups targets by their resolved opener and invokes each group once
// (spread) or once per path (non-spread).
func (f *Facade) Open(ctx context.Context, targets []Target) bool {
	byMime := map[string][]string{}
	order := []string{}
	for _, t := range targets {
		if _, ok := byMime[t.Mime]; !ok {
			order = append(order, t.Mime)
		}
		byMime[t.Mime] = append(byMime[t.Mime], t.URL.Path)
	}

	for _, m := range order {
		for _, batch := range opener.Group(f.openCfg, m, byMime[m]) {
			f.scheduler.enqueueOpen(ctx, batch.Opener.Command, batch.Paths)
		}
	}
	return false
}

// Copy enqueues one copy task per source, skipping any source whose
// computed destination equals itself when force is set.
func (f *Facade) Copy(src []fsurl.URL, dest fsurl.URL, force bool) bool {
	for _, u := range src {
		to := dest.Join(u.FileName())
		if force && u.Equal(to) {
			continue
		}
		f.scheduler.enqueueCopy(u, to)
	}
	return false
}

// Cut enqueues one move task per source, same same-file short-circuit as Copy.
func (f *Facade) Cut(src []fsurl.URL, dest fsurl.URL, force bool) bool {
	for _, u := range src {
		to := dest.Join(u.FileName())
		if force && u.Equal(to) {
			continue
		}
		f.scheduler.enqueueCut(u, to)
	}
	return false
}

// Link enqueues one symlink task per source, same same-file short-circuit
// as Copy, plus a relative flag controlling how the link target is written.
func (f *Facade) Link(src []fsurl.URL, dest fsurl.URL, relative, force bool) bool {
	for _, u := range src {
		to := dest.Join(u.FileName())
		if force && u.Equal(to) {
			continue
		}
		f.scheduler.enqueueLink(u, to, relative)
	}
	return false
}

// Remove enqueues a delete or trash task per target when force is set.
// Without force, the caller is expected to have already obtained
// confirmation (the input-prompt collaborator is out of this core's
// scope — see spec.md §1) before calling with force=true.
func (f *Facade) Remove(targets []fsurl.URL, force, permanently bool) bool {
	if !force {
		return false
	}
	for _, u := range targets {
		if permanently {
			f.scheduler.enqueueDelete(u)
		} else {
			f.scheduler.enqueueTrash(u)
		}
	}
	return false
}

// DirSizeLookup reports whether url's size has already been memoized; it
// and PrecacheSize's sortBySize argument (whether the current sort key is by
// size) are supplied by the file-listing collaborator this core treats as
// external.
type DirSizeLookup func(url fsurl.URL) (known bool)

// PrecacheSize enqueues a size computation for every directory in targets
// lacking a memoized size, but only when the active sort key is by size.
func (f *Facade) PrecacheSize(targets []fsurl.URL, isDir func(fsurl.URL) bool, sizeKnown DirSizeLookup, sortBySize bool, onDone func(fsurl.URL, int64)) bool {
	if !sortBySize {
		return false
	}
	for _, u := range targets {
		if isDir(u) && !sizeKnown(u) {
			f.scheduler.enqueuePrecacheSize(u, onDone)
		}
	}
	return false
}

// PrecacheMime enqueues MIME classification for every non-directory in
// targets lacking a memoized MIME label.
func (f *Facade) PrecacheMime(targets []fsurl.URL, isDir func(fsurl.URL) bool, mimeKnown func(fsurl.URL) bool, onDone func(fsurl.URL, string)) bool {
	for _, u := range targets {
		if !isDir(u) && !mimeKnown(u) {
			f.scheduler.enqueuePrecacheMime(u, onDone)
		}
	}
	return false
}

// precacheThumbnails enqueues a thumbnail build for every (url, mime) pair
// whose classified kind matches want.
func (f *Facade) precacheThumbnails(kind Kind, want mime.Kind, targets []Target, commandTemplate string) bool {
	for _, t := range targets {
		if mime.New(t.Mime) == want {
			f.scheduler.enqueuePrecacheThumbnail(kind, t.URL, commandTemplate)
		}
	}
	return false
}

// PrecacheImage enqueues thumbnail generation for every image-classified target.
func (f *Facade) PrecacheImage(targets []Target) bool {
	return f.precacheThumbnails(KindPrecacheImage, mime.Image, targets, "")
}

// PrecacheVideo enqueues thumbnail generation for every video-classified
// target, via the video-thumbnailer collaborator.
func (f *Facade) PrecacheVideo(targets []Target, commandTemplate string) bool {
	return f.precacheThumbnails(KindPrecacheVideo, mime.Video, targets, commandTemplate)
}

// PrecachePDF enqueues thumbnail generation for every PDF-classified target.
func (f *Facade) PrecachePDF(targets []Target) bool {
	return f.precacheThumbnails(KindPrecachePDF, mime.PDF, targets, "")
}

// Limit returns the maximum number of running-task summaries Paginate will
// return, derived from the terminal row count and the task-pane layout
// constants, saturating at zero.
func Limit(termRows int, layout config.LayoutConfig) int {
	n := termRows * layout.TasksPercent / 100
	if n < layout.TasksPadding {
		return 0
	}
	return n - layout.TasksPadding
}

// Paginate returns up to Limit(termRows, ...) running-task summaries in
// insertion order.
func (f *Facade) Paginate(termRows int) []Record {
	return f.scheduler.Table.Paginate(Limit(termRows, f.layout))
}

// Len reports the number of tasks currently tracked.
func (f *Facade) Len() int {
	return f.scheduler.Table.Len()
}

// RenderSummaries renders the task pane: one row per record Paginate(termRows)
// returns, columns kind/name/bytes-done-of-total, byte counters formatted in
// power-of-1024 units.
func (f *Facade) RenderSummaries(termRows int) (string, error) {
	records := f.Paginate(termRows)
	if len(records) == 0 {
		return "", nil
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Kind.String(),
			r.Name,
			utils.FormatBinaryBytes(int(r.BytesDone)) + "/" + utils.FormatBinaryBytes(int(r.BytesTotal)),
		}
	}
	return utils.RenderTable(rows)
}
