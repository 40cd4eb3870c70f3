//go:build windows

package cha

import (
	"os"
	"syscall"
	"time"
)

type statResult struct {
	accessed *time.Time
	created  *time.Time
	uid      int
	gid      int
}

func statTimes(info os.FileInfo) statResult {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return statResult{}
	}

	accessed := time.Unix(0, stat.LastAccessTime.Nanoseconds())
	created := time.Unix(0, stat.CreationTime.Nanoseconds())
	return statResult{accessed: &accessed, created: &created}
}
