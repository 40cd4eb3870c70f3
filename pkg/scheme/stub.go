package scheme

import (
	"context"
	"fmt"
)

// stubAdapter is a placeholder remote backend: enough to exercise the
// Adapter interface and FromRemote's synthesized-permission path end to
// end, without committing to one real remote protocol client. A concrete
// deployment swaps this for a real adapter (sftp, s3, ...) registered under
// the same scheme name.
type stubAdapter struct{}

func (stubAdapter) Stat(ctx context.Context, path string) (Stat, error) {
	return Stat{}, fmt.Errorf("remote scheme not configured for path %q", path)
}

func init() {
	Register("remote", stubAdapter{})
}
