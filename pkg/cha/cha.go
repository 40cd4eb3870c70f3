// Package cha holds the metadata snapshot attached to every File: a
// directory/link/hidden classification plus the stat fields the preview
// engine and task scheduler need, without forcing callers back to the
// filesystem for a second lookup.
package cha

import (
	"os"
	"time"
)

// Kind is a set of bit flags describing what a path's metadata says about
// it, independent of os.FileMode (which only a local stat ever supplies).
type Kind uint8

const (
	KindDir Kind = 1 << iota
	KindLink
	KindOrphan
	KindHidden
)

func (k Kind) Has(flag Kind) bool { return k&flag != 0 }

// RemotePermissions is yazi's "Always return 774 for remote files"
// placeholder value, used when constructing a Cha from a scheme adapter
// instead of a local stat.
const (
	RemotePermissions os.FileMode = 0o774
)

// Cha ("characteristics") is an immutable snapshot of a path's metadata at
// the moment it was read. Two Cha values for the same path taken at
// different times are never mutated in place — a fresh read produces a
// fresh Cha.
type Cha struct {
	Kind        Kind
	Len         int64
	Accessed    *time.Time
	Created     *time.Time
	Modified    *time.Time
	Permissions os.FileMode
	UID         int
	GID         int
}

// IsDir reports whether the snapshot describes a directory.
func (c Cha) IsDir() bool { return c.Kind.Has(KindDir) }

// IsLink reports whether the path is a symlink whose target resolved.
func (c Cha) IsLink() bool { return c.Kind.Has(KindLink) }

// IsOrphan reports whether the path is a symlink whose target could not be
// resolved (a dangling link).
func (c Cha) IsOrphan() bool { return c.Kind.Has(KindOrphan) }

// IsHidden reports whether the path is hidden per the platform convention
// (POSIX dot-prefix, or the Windows hidden attribute bit).
func (c Cha) IsHidden() bool { return c.Kind.Has(KindHidden) }

// FromFileInfo builds a Cha from a local os.FileInfo, given the kind flags
// the caller has already derived from the surrounding symlink/hidden checks
// (those require the path and a second stat, which this package doesn't
// have access to — see vfile.From).
func FromFileInfo(info os.FileInfo, extra Kind) Cha {
	kind := extra
	if info.IsDir() {
		kind |= KindDir
	}

	modified := info.ModTime()
	sys := statTimes(info)

	return Cha{
		Kind:        kind,
		Len:         info.Size(),
		Accessed:    sys.accessed,
		Created:     sys.created,
		Modified:    &modified,
		Permissions: info.Mode().Perm(),
		UID:         sys.uid,
		GID:         sys.gid,
	}
}

// RemoteMeta is the minimal stat shape a scheme.Adapter returns; FromRemote
// maps it onto the synthesized-permission convention yazi uses for every
// non-local scheme.
type RemoteMeta struct {
	IsDir         bool
	ContentLength int64
	LastModified  *time.Time
}

// FromRemote builds a Cha for a non-local URL. Remote stats never carry
// real POSIX permissions or ownership, so those fields are synthesized:
// 0774 and the current process's uid/gid.
func FromRemote(meta RemoteMeta, uid, gid int) Cha {
	var kind Kind
	if meta.IsDir {
		kind |= KindDir
	}
	return Cha{
		Kind:        kind,
		Len:         meta.ContentLength,
		Modified:    meta.LastModified,
		Permissions: RemotePermissions,
		UID:         uid,
		GID:         gid,
	}
}
