//go:build !windows

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
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return statResult{}
	}

	accessed := time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	created := time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	return statResult{
		accessed: &accessed,
		created:  &created,
		uid:      int(stat.Uid),
		gid:      int(stat.Gid),
	}
}
