package preview

import (
	"context"
	"strings"

	"github.com/nightswitch/fmcore/pkg/commands"
	"github.com/nightswitch/fmcore/pkg/event"
)

// ArchiveProducer lists an archive's table of contents via the archive
// lister collaborator and keeps the first rows() entry names.
func ArchiveProducer(runner *commands.OSCommand, commandTemplate string, rows func() int) Producer {
	return func(ctx context.Context, path string) (event.PreviewData, error) {
		entries, err := runner.ArchiveList(ctx, commandTemplate, path)
		if err != nil {
			return event.PreviewData{}, err
		}

		n := rows()
		if n <= 0 {
			return event.PreviewData{Kind: event.PreviewText}, nil
		}
		if len(entries) > n {
			entries = entries[:n]
		}

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		return event.PreviewData{Kind: event.PreviewText, Text: strings.Join(names, "\n")}, nil
	}
}
