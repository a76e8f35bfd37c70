package logstream

import (
	"time"
)

const (
	// DefaultLiveBuffer is the per-subscriber delivery channel capacity.
	DefaultLiveBuffer = 64

	// DefaultHighWaterMark caps a subscriber's backlog of undelivered
	// live entries. Beyond it the oldest backlog entries are dropped
	// from the live stream only; the store keeps every line.
	DefaultHighWaterMark = 10000

	// DefaultStatusPollInterval is how often an idle subscription
	// re-checks the build row, so a completion signalled while it was
	// not attached still closes the stream.
	DefaultStatusPollInterval = 5 * time.Second

	// DefaultPersistRetryFor bounds retries of a failed log entry
	// insert before the line is surrendered.
	DefaultPersistRetryFor = 30 * time.Second
)

// Config tunes the pipeline and hub. The zero value is not usable; start
// from NewConfig.
type Config struct {
	// LiveBuffer is the delivery channel capacity handed to each
	// subscriber.
	LiveBuffer int

	// HighWaterMark is the per-subscriber backlog cap. Overflow drops
	// the oldest backlog entries and injects one synthetic warning per
	// capping episode into that subscriber's stream.
	HighWaterMark int

	// StatusPollInterval is the idle re-check period for subscriptions.
	StatusPollInterval time.Duration

	// PersistRetryFor bounds how long a pipeline retries persisting a
	// single entry before giving up on it.
	PersistRetryFor time.Duration
}

// NewConfig returns the default tuning.
func NewConfig() Config {
	return Config{
		LiveBuffer:         DefaultLiveBuffer,
		HighWaterMark:      DefaultHighWaterMark,
		StatusPollInterval: DefaultStatusPollInterval,
		PersistRetryFor:    DefaultPersistRetryFor,
	}
}
