// Package notify decides the addressing and labelling of staged failure
// notifications. Delivery itself belongs to an external process draining
// the outbox table; the row is the whole interface.
package notify

import (
	"github.com/caarlos0/env/v11"
)

// Config is read from the process environment rather than the flag
// surface: delivery details tend to live with the mail relay's credentials
// in the deployment's environment, not in command lines.
type Config struct {
	// DefaultRecipient receives notifications for builds whose project
	// has no owner on record. Empty means such notifications are
	// dropped.
	DefaultRecipient string `env:"SLIPWAY_NOTIFY_DEFAULT_RECIPIENT"`

	// SubjectPrefix tags every staged subject line.
	SubjectPrefix string `env:"SLIPWAY_NOTIFY_SUBJECT_PREFIX" envDefault:"[slipway]"`
}

// ConfigFromEnv parses Config from SLIPWAY_NOTIFY_* variables.
func ConfigFromEnv() (Config, error) {
	var config Config
	err := env.Parse(&config)
	return config, err
}
