package preview

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/nightswitch/fmcore/pkg/config"
	"github.com/nightswitch/fmcore/pkg/event"
	"github.com/nightswitch/fmcore/pkg/utils"
)

// resetEscape terminates a highlighted block so a following render doesn't
// inherit a dangling color.
const resetEscape = "\x1b[0m"

// styleOnce/theme memoize the loaded chroma style across every call to a
// TextProducer, mirroring the process-global, one-time-initialized
// syntax/theme pair from the source design.
var (
	styleOnce   sync.Once
	loadedStyle *chroma.Style
)

func loadStyle(themeFile string) *chroma.Style {
	styleOnce.Do(func() {
		loadedStyle = styleFromFile(themeFile)
		if loadedStyle == nil {
			loadedStyle = styles.Get(config.FallbackThemeName)
		}
		if loadedStyle == nil {
			loadedStyle = styles.Fallback
		}
	})
	return loadedStyle
}

func styleFromFile(themeFile string) *chroma.Style {
	if themeFile == "" {
		return nil
	}
	data, err := os.ReadFile(themeFile)
	if err != nil {
		return nil
	}
	style, err := chroma.NewXMLStyle(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return style
}

// TextProducer syntax-highlights a file for terminal display: tabs are
// expanded, the output is capped at rows() lines (not bytes), and each
// invocation reuses the once-loaded theme.
func TextProducer(previewCfg config.PreviewConfig, themeFile string, rows func() int) Producer {
	return func(ctx context.Context, path string) (event.PreviewData, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return event.PreviewData{}, err
		}

		lines := strings.Split(string(content), "\n")
		n := rows()
		if n < 0 {
			n = 0
		}
		if len(lines) > n {
			lines = lines[:n]
		}

		spaces := strings.Repeat(" ", utils.Max(previewCfg.TabSize, 0))
		for i, line := range lines {
			lines[i] = strings.ReplaceAll(line, "\t", spaces)
		}
		text := strings.Join(lines, "\n")

		lexer := lexers.Match(path)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)

		iterator, err := lexer.Tokenise(nil, text)
		if err != nil {
			return event.PreviewData{}, err
		}

		style := loadStyle(themeFile)
		var buf bytes.Buffer
		if err := formatters.TTY16m.Format(&buf, style, iterator); err != nil {
			return event.PreviewData{}, err
		}
		buf.WriteString(resetEscape)

		return event.PreviewData{Kind: event.PreviewText, Text: buf.String()}, nil
	}
}

