package repos

import (
	"time"
)

const (
	// mirrorsDir is the subdirectory of Root that holds the bare mirror
	// clones, one per repository.
	mirrorsDir = ".mirrors"

	// DefaultFetchTimeout bounds a single clone or fetch against the
	// remote. Local operations (cat-file, checkout) run on the caller's
	// context unchanged.
	DefaultFetchTimeout = 5 * time.Minute
)

// Config holds the on-disk layout and git invocation settings for the
// materialiser.
type Config struct {
	// Root is the directory that holds mirror caches and working trees.
	// Mirrors live under Root/.mirrors/<repo-id>.git and working trees
	// under Root/<repo-id>/<commit>.
	Root string

	// Binary is the git executable to invoke.
	Binary string

	// FetchTimeout bounds each network operation against the remote.
	FetchTimeout time.Duration
}

// NewConfig returns a Config rooted at the given directory with defaults
// filled in.
func NewConfig(root string) Config {
	return Config{
		Root:         root,
		Binary:       "git",
		FetchTimeout: DefaultFetchTimeout,
	}
}
