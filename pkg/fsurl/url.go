// Package fsurl implements the addressable-location type shared by the
// preview engine and task scheduler: either a local filesystem path, or a
// remote (scheme, path) tuple.
package fsurl

import (
	"path"
	"strings"
)

// URL is an addressable location. An empty Scheme means "local filesystem
// path"; any other value names an entry in the scheme registry.
type URL struct {
	Scheme string
	Path   string
}

// Local builds a local URL from a filesystem path.
func Local(p string) URL {
	return URL{Path: p}
}

// Remote builds a URL addressing a path under a named remote scheme.
func Remote(scheme, p string) URL {
	return URL{Scheme: scheme, Path: p}
}

// IsRemote reports whether the URL addresses a scheme-backed remote store.
func (u URL) IsRemote() bool {
	return u.Scheme != ""
}

// Join appends name as a new path component, preserving the scheme.
func (u URL) Join(name string) URL {
	return URL{Scheme: u.Scheme, Path: path.Join(u.Path, name)}
}

// Parent returns the URL's parent directory. ok is false at the root, where
// there is no parent to return.
func (u URL) Parent() (URL, bool) {
	dir := path.Dir(u.Path)
	if dir == u.Path {
		return URL{}, false
	}
	return URL{Scheme: u.Scheme, Path: dir}, true
}

// FileName returns the final path component.
func (u URL) FileName() string {
	return path.Base(u.Path)
}

// FileStem returns the final path component with its extension (if any)
// removed.
func (u URL) FileStem() string {
	name := u.FileName()
	if ext := path.Ext(name); ext != "" && ext != name {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

// String renders the URL in "scheme://path" form for local-only callers that
// just want a diagnostic string; local URLs render as a bare path.
func (u URL) String() string {
	if !u.IsRemote() {
		return u.Path
	}
	return u.Scheme + "://" + u.Path
}

// Equal reports whether two URLs address the same location.
func (u URL) Equal(other URL) bool {
	return u.Scheme == other.Scheme && u.Path == other.Path
}
