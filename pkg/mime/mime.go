// Package mime classifies a MIME string into the closed set of kinds the
// preview engine dispatches on, and sniffs a MIME string from file content
// for the precache-mime task.
package mime

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind is a closed enumeration of preview-relevant MIME categories.
type Kind int

const (
	Dir Kind = iota
	JSON
	Text
	Image
	Video
	PDF
	Archive
	Others
)

func (k Kind) String() string {
	switch k {
	case Dir:
		return "Dir"
	case JSON:
		return "JSON"
	case Text:
		return "Text"
	case Image:
		return "Image"
	case Video:
		return "Video"
	case PDF:
		return "PDF"
	case Archive:
		return "Archive"
	default:
		return "Others"
	}
}

var archiveMimes = map[string]bool{
	"application/zip":              true,
	"application/x-tar":            true,
	"application/x-gtar":           true,
	"application/gzip":             true,
	"application/x-gzip":           true,
	"application/x-bzip2":          true,
	"application/x-xz":             true,
	"application/x-7z-compressed":  true,
	"application/x-rar-compressed": true,
	"application/vnd.rar":          true,
	"application/x-compressed":    true,
}

// New is a pure total function from a MIME string to a Kind. Unknown strings
// classify as Others.
func New(m string) Kind {
	switch {
	case m == "inode/directory":
		return Dir
	case m == "application/json" || strings.HasSuffix(m, "+json"):
		return JSON
	case m == "application/pdf":
		return PDF
	case strings.HasPrefix(m, "text/"):
		return Text
	case strings.HasPrefix(m, "image/"):
		return Image
	case strings.HasPrefix(m, "video/"):
		return Video
	case archiveMimes[m]:
		return Archive
	default:
		return Others
	}
}

// SniffFile classifies path's content, reporting "inode/directory" for
// directories (mimetype.DetectFile doesn't special-case those) and the
// sniffed MIME string otherwise.
func SniffFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "inode/directory", nil
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return detected.String(), nil
}

// Canonical returns a representative MIME string for a Kind, used by tests
// that check New is idempotent on its own canonical form.
func (k Kind) Canonical() string {
	switch k {
	case Dir:
		return "inode/directory"
	case JSON:
		return "application/json"
	case Text:
		return "text/plain"
	case Image:
		return "image/png"
	case Video:
		return "video/mp4"
	case PDF:
		return "application/pdf"
	case Archive:
		return "application/zip"
	default:
		return "application/x-random"
	}
}
