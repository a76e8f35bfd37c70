// Package report pushes build outcomes back to the hosting provider: a
// commit status when a build enters running and another on every terminal
// transition, plus a notification row for failed builds that ask for one.
// Reporting is advisory; a failed post never alters a build's status.
package report

import (
	"context"

	"github.com/slipway/slipway/yard/db"
)

//counterfeiter:generate . Reporter

// Reporter is notified at the two externally visible moments of a build:
// when it enters running and when it reaches a terminal status.
type Reporter interface {
	BuildStarted(ctx context.Context, build db.Build)
	BuildFinished(ctx context.Context, build db.Build)
}
