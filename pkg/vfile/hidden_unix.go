//go:build !windows

package vfile

import "os"

// platformHidden is a no-op on POSIX platforms: the dot-prefix check in
// isHidden already covers it.
func platformHidden(info os.FileInfo) bool {
	return false
}
