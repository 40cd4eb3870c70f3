// Package vfile builds the File value the preview engine and task
// scheduler pass around: a URL paired with the Cha snapshot taken for it,
// plus a symlink target when the path is a link.
package vfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/nightswitch/fmcore/pkg/cha"
	"github.com/nightswitch/fmcore/pkg/fsurl"
	"github.com/nightswitch/fmcore/pkg/scheme"
)

// File is an addressable path plus its metadata snapshot. It forwards Cha's
// predicates so callers can write f.IsDir() instead of f.Cha.IsDir(),
// mirroring yazi's Deref<Target = Cha>.
type File struct {
	URL    fsurl.URL
	Cha    cha.Cha
	LinkTo *fsurl.URL
}

func (f File) IsDir() bool    { return f.Cha.IsDir() }
func (f File) IsLink() bool   { return f.Cha.IsLink() }
func (f File) IsOrphan() bool { return f.Cha.IsOrphan() }
func (f File) IsHidden() bool { return f.Cha.IsHidden() }

// From builds a File for url, dispatching to the local or remote
// constructor based on url.IsRemote().
func From(ctx context.Context, url fsurl.URL) (File, error) {
	if url.IsRemote() {
		return fromRemote(ctx, url)
	}
	return fromLocal(url)
}

// fromLocal mirrors File::from_meta: lstat first; if the result is a
// symlink, stat through it to tell a live link from an orphan, and resolve
// readlink for LinkTo.
func fromLocal(url fsurl.URL) (File, error) {
	lstatInfo, err := os.Lstat(url.Path)
	if err != nil {
		return File{}, err
	}

	isLink := lstatInfo.Mode()&os.ModeSymlink != 0
	info := lstatInfo
	statResolved := false
	var linkTo *fsurl.URL

	if isLink {
		if target, statErr := os.Stat(url.Path); statErr == nil {
			info = target
			statResolved = true
		}
		if dest, readErr := os.Readlink(url.Path); readErr == nil {
			resolved := fsurl.Local(dest)
			linkTo = &resolved
		}
	}

	var kind cha.Kind
	switch {
	case isLink && !statResolved:
		// stat through the link failed: the target is gone.
		kind |= cha.KindOrphan
	case isLink:
		kind |= cha.KindLink
	}

	if isHidden(url.Path, info) {
		kind |= cha.KindHidden
	}

	return File{URL: url, Cha: cha.FromFileInfo(info, kind), LinkTo: linkTo}, nil
}

// fromRemote mirrors File::from_remote: look up the scheme adapter, stat
// through it, and synthesize the POSIX fields FromRemote always carries.
func fromRemote(ctx context.Context, url fsurl.URL) (File, error) {
	adapter, err := scheme.Get(url.Scheme)
	if err != nil {
		return File{}, err
	}

	stat, err := adapter.Stat(ctx, url.Path)
	if err != nil {
		return File{}, err
	}

	uid, gid := os.Getuid(), os.Getgid()
	remoteCha := cha.FromRemote(cha.RemoteMeta{
		IsDir:         stat.IsDir,
		ContentLength: stat.ContentLength,
		LastModified:  stat.LastModified,
	}, uid, gid)

	return File{URL: url, Cha: remoteCha}, nil
}

// isHidden applies the POSIX dot-prefix convention on every platform; on
// Windows a path without a leading dot is also hidden when its hidden
// attribute bit is set.
func isHidden(path string, info os.FileInfo) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	return platformHidden(info)
}
