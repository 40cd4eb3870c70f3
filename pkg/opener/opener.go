// Package opener resolves a (path, mime) pair to the ordered list of
// external-program rules configured for it, and groups invocations by
// spread/non-spread for the task facade's Open operation.
package opener

import (
	"strings"

	"github.com/nightswitch/fmcore/pkg/config"
)

// Resolve returns the openers configured for mime, trying each OpenRule in
// declaration order and returning the first match. A rule's Mime matches
// either exactly, or as a "type/*" prefix; "*/*" matches every mime.
func Resolve(cfg config.OpenConfig, mime string) []config.Opener {
	for _, rule := range cfg.Rules {
		if ruleMatches(rule.Mime, mime) {
			return rule.Openers
		}
	}
	return nil
}

func ruleMatches(pattern, mime string) bool {
	if pattern == mime || pattern == "*/*" {
		return true
	}
	if strings.HasSuffix(pattern, "/*") {
		return strings.HasPrefix(mime, strings.TrimSuffix(pattern, "*"))
	}
	return false
}

// Batch is one invocation's worth of paths for a single opener: either
// every selected path at once (Spread) or one path per invocation.
type Batch struct {
	Opener config.Opener
	Paths  []string
}

// Group splits a selection into invocation batches for the first opener
// matching mime. A spread opener gets a single batch with every path; a
// non-spread opener gets one batch per path.
func Group(cfg config.OpenConfig, mime string, paths []string) []Batch {
	openers := Resolve(cfg, mime)
	if len(openers) == 0 || len(paths) == 0 {
		return nil
	}

	first := openers[0]
	if first.Spread {
		return []Batch{{Opener: first, Paths: paths}}
	}

	batches := make([]Batch, len(paths))
	for i, p := range paths {
		batches[i] = Batch{Opener: first, Paths: []string{p}}
	}
	return batches
}
