// Package scheme maps a URL's scheme prefix ("sftp://", "s3://", ...) to
// the Adapter that knows how to stat a path on it. Local paths never go
// through here — they use os.Lstat directly.
package scheme

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Stat is what an Adapter reports back for a remote path. It deliberately
// excludes POSIX permission/ownership fields: yazi's convention (carried
// forward here) is to synthesize those for every remote scheme rather than
// pretend a protocol that has no concept of uid/gid has one.
type Stat struct {
	IsDir         bool
	ContentLength int64
	LastModified  *time.Time
}

// Adapter is implemented by a remote backend capable of stat-ing a path.
type Adapter interface {
	Stat(ctx context.Context, path string) (Stat, error)
}

// registry is the process-wide scheme -> Adapter table. Adapters register
// themselves from an init() in their own package, mirroring yazi's
// lazy_static SCHEMES map.
var (
	mu       sync.RWMutex
	adapters = map[string]Adapter{}
)

// Register installs an Adapter for a scheme name. Call from an adapter
// package's init().
func Register(name string, adapter Adapter) {
	mu.Lock()
	defer mu.Unlock()
	adapters[name] = adapter
}

// Get looks up the Adapter for a scheme name.
func Get(name string) (Adapter, error) {
	mu.RLock()
	defer mu.RUnlock()
	adapter, ok := adapters[name]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for scheme %q", name)
	}
	return adapter, nil
}
