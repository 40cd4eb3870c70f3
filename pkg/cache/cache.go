// Package cache maps a file's fingerprint onto a deterministic, sharded
// path for its derived artifact (thumbnail, highlighted text, folder size),
// and guards concurrent builds of the same artifact with a singleflight
// group so two viewports previewing the same file at once don't race to
// build it twice.
package cache

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
)

// Cache is a content-addressed store for derived preview artifacts, rooted
// at a directory on disk.
type Cache struct {
	dir   string
	group singleflight.Group
}

// New returns a Cache rooted at dir, creating it if necessary.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Path deterministically maps a fingerprint (the preview and precache callers
// pass the source file's path string as given) to a sharded path under
// the cache root: two leading hex bytes of the digest become directories,
// so no single directory ends up with every cached artifact in it.
func (c *Cache) Path(fingerprint string) string {
	sum := sha256.Sum256([]byte(fingerprint))
	hexDigest := fmt.Sprintf("%x", sum)
	return filepath.Join(c.dir, hexDigest[:2], hexDigest[2:4], hexDigest)
}

// GetOrCreate returns the cached path for fingerprint, invoking build to
// populate it if it doesn't exist yet. Concurrent calls for the same
// fingerprint share a single build via singleflight; only one goroutine
// ever runs build for a given fingerprint at a time.
func (c *Cache) GetOrCreate(fingerprint string, build func(dest string) error) (string, error) {
	dest := c.Path(fingerprint)
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	_, err, _ := c.group.Do(fingerprint, func() (interface{}, error) {
		if _, statErr := os.Stat(dest); statErr == nil {
			return nil, nil
		}
		if mkdirErr := os.MkdirAll(filepath.Dir(dest), 0o755); mkdirErr != nil {
			return nil, mkdirErr
		}
		return nil, build(dest)
	})
	if err != nil {
		return "", err
	}
	return dest, nil
}

// Evict removes a cached artifact, if present. Used when a precache result
// turns out to be stale (e.g. the source file changed underneath it).
func (c *Cache) Evict(fingerprint string) error {
	err := os.Remove(c.Path(fingerprint))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
