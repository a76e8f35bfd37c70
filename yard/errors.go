package yard

import (
	"fmt"
)

// ErrorKind classifies a build's terminal failure. It is recorded on the
// build row and drives retry eligibility.
type ErrorKind string

const (
	// ErrorKindValidation rejects malformed input synchronously; no build is
	// created.
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindMissingSecret fails a build whose project requires a secret
	// that is absent from the vault. Not retried automatically.
	ErrorKindMissingSecret ErrorKind = "missing_secret"

	// ErrorKindInfrastructure covers engine unavailability, image pull
	// failures, and filesystem errors. Eligible for one automatic requeue.
	ErrorKindInfrastructure ErrorKind = "infrastructure"

	// ErrorKindBuild is a non-zero exit from a user-defined phase. Retried
	// only by explicit user action.
	ErrorKindBuild ErrorKind = "build"

	// ErrorKindTimeout is a deadline hit; the build moves to timed_out.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindCancelled is a user cancel or shutdown drain.
	ErrorKindCancelled ErrorKind = "cancelled"

	// ErrorKindAbandoned marks a running build whose dispatch token expired,
	// i.e. its executor crashed. Auto-retried once.
	ErrorKindAbandoned ErrorKind = "abandoned"
)

// ValidationError is returned synchronously for malformed triggers, unknown
// projects, and invalid secret names.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// MissingSecretError fails a build fast, before any container is touched.
type MissingSecretError struct {
	Name string
}

func (e MissingSecretError) Error() string {
	return fmt.Sprintf("required secret %q is not configured", e.Name)
}

// BuildFailedError records a phase exiting non-zero.
type BuildFailedError struct {
	Phase      string
	ExitStatus int
}

func (e BuildFailedError) Error() string {
	return fmt.Sprintf("phase %q exited with status %d", e.Phase, e.ExitStatus)
}

// InfrastructureError wraps failures of the machinery around the build
// rather than the build itself.
type InfrastructureError struct {
	Cause error
}

func (e InfrastructureError) Error() string {
	return fmt.Sprintf("infrastructure failure: %s", e.Cause.Error())
}

func (e InfrastructureError) Unwrap() error {
	return e.Cause
}

// FetchFailedError is returned by the materialiser when a commit cannot be
// resolved to a working tree.
type FetchFailedError struct {
	Repo   string
	Commit string
	Cause  error
}

func (e FetchFailedError) Error() string {
	return fmt.Sprintf("fetching %s@%s: %s", e.Repo, e.Commit, e.Cause.Error())
}

func (e FetchFailedError) Unwrap() error {
	return e.Cause
}
