// Package repos turns (repository, commit) pairs into working trees on
// local disk that the container runtime can bind-mount. Remote history is
// cached in per-repository mirror clones so repeated builds of the same
// repository fetch deltas, not full histories.
package repos

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Materialiser

// Materialiser resolves a commit to a working tree. Concurrent
// materialisations for the same repository are serialised; distinct
// repositories proceed in parallel.
type Materialiser interface {
	// Materialise returns a tree whose path contains exactly the tree at
	// commit. A commit that cannot be resolved from the remote yields a
	// yard.FetchFailedError.
	Materialise(ctx context.Context, repo RemoteRepo, commit string) (Tree, error)
}

//counterfeiter:generate . Tree

// Tree is one materialised working tree. Release frees the space once the
// build is done with it; the mirror cache is retained either way.
type Tree interface {
	Path() string
	Release() error
}

// RemoteRepo identifies one source repository.
type RemoteRepo struct {
	// ID keys the mirror cache and working tree layout.
	ID int

	// Name is the human-readable repository name, used in errors and
	// logs. Never the clone URL, which may embed credentials.
	Name string

	// CloneURL is the URL git fetches from.
	CloneURL string
}
