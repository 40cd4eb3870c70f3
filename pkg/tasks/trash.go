package tasks

import (
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
)

// moveToTrash relocates path into the XDG trash directory convention
// ($XDG_DATA_HOME/Trash/files) rather than deleting it outright. No
// corpus-grounded "send to trash" library covers this (see DESIGN.md); this
// stays on stdlib plus the xdg package already pulled in for config
// resolution.
func moveToTrash(path string) error {
	trashDir := filepath.Join(xdg.New("", "").DataHome(), "Trash", "files")
	if err := os.MkdirAll(trashDir, 0o755); err != nil {
		return err
	}

	dest := filepath.Join(trashDir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		dest = dest + "." + time.Now().Format("20060102150405")
	}
	return os.Rename(path, dest)
}
