package dockerrt

import (
	"errors"
	"net"
	"strings"
)

// TransientError wraps an error that represents a transient engine
// failure which should be retried at the build level. It implements
// runtime.RetryableError.
type TransientError struct {
	Cause error
}

func (e *TransientError) Error() string {
	return e.Cause.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Cause
}

func (e *TransientError) IsRetryable() bool {
	return true
}

// wrapIfTransient wraps err as a TransientError if it represents a
// transient engine failure that should be retried. Non-transient errors
// are returned unchanged.
func wrapIfTransient(err error) error {
	if err == nil {
		return nil
	}
	if isTransientEngineError(err) {
		return &TransientError{Cause: err}
	}
	return err
}

// isTransientEngineError returns true if the error represents a failure
// that is likely to succeed on retry: an unreachable daemon, a failed or
// rate-limited image pull, or a network-level error.
func isTransientEngineError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range []string{
		"cannot connect to the docker daemon",
		"error during connect",
		"connection refused",
		"connection reset by peer",
		"i/o timeout",
		"temporary failure in name resolution",
		"error pulling image",
		"failed to pull",
		"toomanyrequests",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}

// isNotFound reports whether an engine error means the container is
// already gone, which Stop, Remove and Lookup treat as success.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such container") || strings.Contains(msg, "no such object")
}
