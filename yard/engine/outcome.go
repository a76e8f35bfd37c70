package engine

import (
	"context"
	"errors"

	"github.com/slipway/slipway/yard"
)

// cancelledMessage matches the message recorded when a queued build is
// cancelled, so both cancellation paths read the same on the build row.
const cancelledMessage = "build cancelled"

// classifyOutcome maps the first error out of the execution recipe to the
// terminal status, error kind and message recorded on the build. Context
// errors are checked first: a phase failure caused by the build deadline or
// a cancel must land on timed_out/cancelled, whatever error it surfaced
// through.
func classifyOutcome(err error) (yard.BuildStatus, yard.ErrorKind, string) {
	if err == nil {
		return yard.StatusSuccess, "", ""
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return yard.StatusTimedOut, yard.ErrorKindTimeout, yard.TimeoutMessage
	case errors.Is(err, context.Canceled):
		return yard.StatusCancelled, yard.ErrorKindCancelled, cancelledMessage
	}

	var missingSecret yard.MissingSecretError
	if errors.As(err, &missingSecret) {
		return yard.StatusFailed, yard.ErrorKindMissingSecret, missingSecret.Error()
	}

	var buildFailed yard.BuildFailedError
	if errors.As(err, &buildFailed) {
		return yard.StatusFailed, yard.ErrorKindBuild, buildFailed.Error()
	}

	// Misconfiguration discovered mid-build (bad manifest, unknown
	// profile, no phases) is the user's to fix, not the infrastructure's.
	var validation yard.ValidationError
	if errors.As(err, &validation) {
		return yard.StatusFailed, yard.ErrorKindBuild, validation.Error()
	}

	return yard.StatusFailed, yard.ErrorKindInfrastructure, err.Error()
}
