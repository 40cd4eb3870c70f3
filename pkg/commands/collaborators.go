package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mholt/archiver/v3"

	"github.com/nightswitch/fmcore/pkg/utils"
)

// ffmpegThumbnailTimeout bounds a single video-thumbnailer invocation so a
// stuck decode doesn't tie up a worker goroutine forever.
const ffmpegThumbnailTimeout = 60 * time.Second

// JSONPrettyPrint runs the configured JSON pretty-printer collaborator
// (e.g. "jq ." or "jq . {{.path}}") against path and returns its stdout.
func (c *OSCommand) JSONPrettyPrint(ctx context.Context, commandTemplate, path string) (string, error) {
	command := utils.ResolvePlaceholderString(commandTemplate, map[string]string{"path": c.Quote(path)})
	return c.RunCommandWithOutputContext(ctx, command)
}

// ArchiveEntry is the minimum shape the archive lister must produce: a name,
// and — when derivable without a full decompress — a directory flag and size.
type ArchiveEntry struct {
	Name  string
	IsDir bool
	Size  int64
}

// archiveWalkers maps a recognized extension to an in-process archiver.Walker
// so common archive formats don't need to shell out to list their contents.
var archiveWalkers = map[string]archiver.Walker{
	".zip":    archiver.NewZip(),
	".tar":    archiver.NewTar(),
	".tar.gz": archiver.NewTarGz(),
	".tgz":    archiver.NewTarGz(),
	".tar.bz2": archiver.NewTarBz2(),
	".tar.xz":  archiver.NewTarXz(),
}

// ArchiveList lists the entries of an archive. It prefers the in-process
// archiver.Walker for recognized extensions, and falls back to the
// configured external lister (commandTemplate) for everything else.
func (c *OSCommand) ArchiveList(ctx context.Context, commandTemplate, path string) ([]ArchiveEntry, error) {
	for ext, walker := range archiveWalkers {
		if hasExtension(path, ext) {
			return listViaWalker(walker, path)
		}
	}
	return c.archiveListExternal(ctx, commandTemplate, path)
}

func hasExtension(path, ext string) bool {
	if len(path) < len(ext) {
		return false
	}
	return path[len(path)-len(ext):] == ext
}

func listViaWalker(walker archiver.Walker, path string) ([]ArchiveEntry, error) {
	var entries []ArchiveEntry
	err := walker.Walk(path, func(f archiver.File) error {
		entries = append(entries, ArchiveEntry{
			Name:  f.Name(),
			IsDir: f.IsDir(),
			Size:  f.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, WrapError(err)
	}
	return entries, nil
}

// archiveListExternal shells out to a configured archive-listing binary
// (e.g. "lsar -json {{.path}}") for formats the in-process walkers don't
// cover; it only guarantees a Name per entry, per the collaborator contract.
func (c *OSCommand) archiveListExternal(ctx context.Context, commandTemplate, path string) ([]ArchiveEntry, error) {
	command := utils.ResolvePlaceholderString(commandTemplate, map[string]string{"path": c.Quote(path)})
	output, err := c.RunCommandWithOutputContext(ctx, command)
	if err != nil {
		return nil, err
	}

	var entries []ArchiveEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, ArchiveEntry{Name: line})
	}
	return entries, nil
}

// VideoThumbnail invokes the configured video-thumbnailer collaborator to
// write a decodable image at dest, derived from src.
func (c *OSCommand) VideoThumbnail(ctx context.Context, commandTemplate, src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return WrapError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, ffmpegThumbnailTimeout)
	defer cancel()

	command := utils.ResolvePlaceholderString(commandTemplate, map[string]string{
		"input":  c.Quote(src),
		"output": c.Quote(dest),
	})
	_, err := c.RunCommandWithOutputContext(ctx, command)
	if err != nil {
		return fmt.Errorf("video thumbnailer failed for %s: %w", src, err)
	}
	if _, statErr := os.Stat(dest); statErr != nil {
		return fmt.Errorf("video thumbnailer did not produce %s: %w", dest, statErr)
	}
	return nil
}

// Open invokes an opener command template against one or more paths,
// honoring the "spread" convention (true: one invocation with every path;
// false: one invocation per path — the caller drives that split, this just
// runs a single invocation with whatever args it's given). Both {{.path}} and
// {{.paths}} in the template expand to the quoted, space-separated paths.
func (c *OSCommand) Open(ctx context.Context, commandTemplate string, paths []string) error {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = c.Quote(p)
	}
	joined := strings.Join(quoted, " ")
	command := utils.ResolvePlaceholderString(commandTemplate, map[string]string{"path": joined, "paths": joined})
	_, err := c.RunCommandWithOutputContext(ctx, command)
	return err
}
