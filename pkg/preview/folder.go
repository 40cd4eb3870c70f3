package preview

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nightswitch/fmcore/pkg/event"
	"github.com/nightswitch/fmcore/pkg/fsurl"
	"github.com/nightswitch/fmcore/pkg/vfile"
)

// FolderProducer lists a directory and emits a Files event with the result
// before returning the Folder preview marker. It's the one producer that
// emits two events instead of one — spec.md calls this out explicitly.
func FolderProducer(events chan<- event.Event) Producer {
	return func(ctx context.Context, path string) (event.PreviewData, error) {
		entries, err := os.ReadDir(path)
		if err != nil {
			events <- event.Files{Op: event.FilesOp{Kind: event.FilesIOErr, Path: path}}
			return event.PreviewData{Kind: event.PreviewFolder}, nil
		}

		items := make([]*vfile.File, 0, len(entries))
		for _, entry := range entries {
			select {
			case <-ctx.Done():
				events <- event.Files{Op: event.FilesOp{Kind: event.FilesIOErr, Path: path}}
				return event.PreviewData{}, ctx.Err()
			default:
			}

			child, err := vfile.From(ctx, fsurl.Local(filepath.Join(path, entry.Name())))
			if err != nil {
				continue
			}
			items = append(items, &child)
		}

		events <- event.Files{Op: event.FilesOp{Kind: event.FilesRead, Path: path, Items: items}}
		return event.PreviewData{Kind: event.PreviewFolder}, nil
	}
}
