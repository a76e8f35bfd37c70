// Package gc reclaims what builds leave behind: expired artifact files and
// their rows, aged-out log entries, stray containers, and, when a build
// retention window is configured, whole ancient builds. Each collector is a
// single idempotent sweep; the Runner owns the pacing.
package gc

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Collector

// Collector runs one garbage sweep. Sweeps over a build's remains hold
// that build's retention lock, so a collector never races an executor that
// is still writing.
type Collector interface {
	Name() string
	Run(ctx context.Context) error
}
