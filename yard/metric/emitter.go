package metric

import (
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type Event struct {
	Name       string
	Value      float64
	State      EventState
	Attributes map[string]string
	Host       string
	Time       time.Time
}

type EventState string

const (
	EventStateOK       EventState = "ok"
	EventStateWarning  EventState = "warning"
	EventStateCritical EventState = "critical"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Emitter

// Emitter ships a single event to a metrics backend.
type Emitter interface {
	Emit(lager.Logger, Event)
}

//counterfeiter:generate . EmitterFactory

// EmitterFactory describes one backend. Its flag group decides whether it
// is configured; at most one factory may be configured per process.
type EmitterFactory interface {
	Description() string
	IsConfigured() bool
	NewEmitter(attributes map[string]string) (Emitter, error)
}
