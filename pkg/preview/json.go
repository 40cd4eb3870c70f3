package preview

import (
	"context"
	"strings"

	"github.com/nightswitch/fmcore/pkg/commands"
	"github.com/nightswitch/fmcore/pkg/event"
)

// JSONProducer runs the configured JSON pretty-printer collaborator and
// keeps the first rows() lines of its output.
func JSONProducer(runner *commands.OSCommand, commandTemplate string, rows func() int) Producer {
	return func(ctx context.Context, path string) (event.PreviewData, error) {
		output, err := runner.JSONPrettyPrint(ctx, commandTemplate, path)
		if err != nil {
			return event.PreviewData{}, err
		}
		return event.PreviewData{Kind: event.PreviewText, Text: firstLines(output, rows())}, nil
	}
}

// firstLines keeps up to n lines of s, joined back with newlines. n <= 0
// yields an empty string, matching a zero row budget.
func firstLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
