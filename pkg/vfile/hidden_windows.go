//go:build windows

package vfile

import (
	"os"
	"syscall"
)

// fileAttributeHidden is windows' FILE_ATTRIBUTE_HIDDEN bit.
const fileAttributeHidden = 2

func platformHidden(info os.FileInfo) bool {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return stat.FileAttributes&fileAttributeHidden != 0
}
