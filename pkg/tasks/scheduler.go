package tasks

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nightswitch/fmcore/pkg/cache"
	"github.com/nightswitch/fmcore/pkg/commands"
	"github.com/nightswitch/fmcore/pkg/event"
	"github.com/nightswitch/fmcore/pkg/fsurl"
	"github.com/nightswitch/fmcore/pkg/mime"
)

// Scheduler owns the running table and the worker goroutines that mutate
// files and precache derived artifacts. Tasks for distinct destinations are
// never serialized against each other — each enqueue spawns its own
// goroutine; the only collision the facade short-circuits is force &&
// src == dest (see Copy/Cut/Link in facade.go).
type Scheduler struct {
	Table  *Table
	log    *logrus.Entry
	runner *commands.OSCommand
	cache  *cache.Cache
}

// NewScheduler builds a Scheduler and starts its progress pump, running
// until ctx is cancelled.
func NewScheduler(ctx context.Context, log *logrus.Entry, runner *commands.OSCommand, thumbCache *cache.Cache, events chan<- event.Event) *Scheduler {
	s := &Scheduler{Table: NewTable(), log: log, runner: runner, cache: thumbCache}
	go RunProgressPump(ctx, s.Table, events)
	return s
}

// finish transitions a record to its terminal state and then drops it from
// the table: the table is the live, ordered set of in-flight tasks, not a
// history, so a completed task has no business lingering in it (matching
// the original scheduler, which removes a task from `running` the moment
// it completes).
func (s *Scheduler) finish(id uuid.UUID, err error) {
	state := StateDone
	if err != nil {
		state = StateFailed
		switch {
		case commands.HasErrorCode(err, commands.ErrSubprocessMissing):
			s.log.WithError(err).Warn("task failed: required collaborator subprocess is missing")
		case commands.HasErrorCode(err, commands.ErrPermissionDenied):
			s.log.WithError(err).Warn("task failed: permission denied")
		default:
			s.log.WithError(err).Debug("task failed")
		}
	}
	s.Table.Update(id, func(r *Record) { r.State = state })
	s.Table.Remove(id)
}

func (s *Scheduler) enqueueCopy(src, dest fsurl.URL) {
	id := s.Table.Insert(KindCopy, src.String()+" -> "+dest.String())
	go func() {
		s.finish(id, copyFile(src.Path, dest.Path))
	}()
}

func (s *Scheduler) enqueueCut(src, dest fsurl.URL) {
	id := s.Table.Insert(KindCut, src.String()+" -> "+dest.String())
	go func() {
		s.finish(id, os.Rename(src.Path, dest.Path))
	}()
}

func (s *Scheduler) enqueueLink(src, dest fsurl.URL, relative bool) {
	id := s.Table.Insert(KindLink, src.String()+" -> "+dest.String())
	go func() {
		target := src.Path
		if relative {
			if rel, err := filepath.Rel(filepath.Dir(dest.Path), src.Path); err == nil {
				target = rel
			}
		}
		s.finish(id, os.Symlink(target, dest.Path))
	}()
}

func (s *Scheduler) enqueueDelete(target fsurl.URL) {
	id := s.Table.Insert(KindDelete, target.String())
	go func() {
		s.finish(id, os.RemoveAll(target.Path))
	}()
}

func (s *Scheduler) enqueueTrash(target fsurl.URL) {
	id := s.Table.Insert(KindTrash, target.String())
	go func() {
		s.finish(id, moveToTrash(target.Path))
	}()
}

func (s *Scheduler) enqueueOpen(ctx context.Context, commandTemplate string, paths []string) {
	id := s.Table.Insert(KindOpen, commandTemplate)
	go func() {
		s.finish(id, s.runner.Open(ctx, commandTemplate, paths))
	}()
}

func (s *Scheduler) enqueuePrecacheSize(target fsurl.URL, onDone func(url fsurl.URL, size int64)) {
	id := s.Table.Insert(KindPrecacheSize, target.String())
	go func() {
		size, err := dirSize(target.Path)
		if err == nil && onDone != nil {
			onDone(target, size)
		}
		s.finish(id, err)
	}()
}

func (s *Scheduler) enqueuePrecacheMime(target fsurl.URL, onDone func(url fsurl.URL, mime string)) {
	id := s.Table.Insert(KindPrecacheMime, target.String())
	go func() {
		m, err := mime.SniffFile(target.Path)
		if err == nil && onDone != nil {
			onDone(target, m)
		}
		s.finish(id, err)
	}()
}

// enqueuePrecacheThumbnail builds a cached thumbnail for target if one
// doesn't already exist. For video it shells out to the thumbnailer
// collaborator; for image/pdf it just warms the cache by copying the
// source in (a real deployment wires a format-specific encoder here — see
// the image/video preview producers for the decode/resize pipeline this
// cached artifact feeds into).
func (s *Scheduler) enqueuePrecacheThumbnail(kind Kind, target fsurl.URL, commandTemplate string) {
	id := s.Table.Insert(kind, target.String())
	go func() {
		_, err := s.cache.GetOrCreate(target.Path, func(dest string) error {
			if kind == KindPrecacheVideo {
				return s.runner.VideoThumbnail(context.Background(), commandTemplate, target.Path, dest)
			}
			return copyFile(target.Path, dest)
		})
		s.finish(id, err)
	}()
}

func dirSize(path string) (int64, error) {
	var total int64
	err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
