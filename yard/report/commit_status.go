package report

import (
	"context"
)

// CommitState is the provider-facing rendering of a build's status. The
// build state machine is richer than what providers display; every terminal
// status short of success collapses to failure.
type CommitState string

const (
	CommitStatePending CommitState = "pending"
	CommitStateSuccess CommitState = "success"
	CommitStateFailure CommitState = "failure"
)

// CommitStatus is one compact status line posted against a commit.
type CommitStatus struct {
	Repo        string
	SHA         string
	State       CommitState
	TargetURL   string
	Description string
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Poster

// Poster delivers a commit status to the hosting provider. The returned
// code is the provider's HTTP status, or zero when no response arrived at
// all; it feeds the status-report metrics.
type Poster interface {
	Post(ctx context.Context, status CommitStatus) (int, error)
}
