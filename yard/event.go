package yard

// EventKind is the kind persisted with each log entry.
type EventKind string

const (
	EventStepStarted   EventKind = "step_started"
	EventStepCompleted EventKind = "step_completed"
	EventStepFailed    EventKind = "step_failed"
	EventInfo          EventKind = "info"
	EventWarning       EventKind = "warning"
	EventError         EventKind = "error"
	EventOutput        EventKind = "output"
)

// StreamChannel identifies which process stream produced an output line.
type StreamChannel string

const (
	ChannelStdout StreamChannel = "stdout"
	ChannelStderr StreamChannel = "stderr"
)

// LogEvent is the wire form of one log entry. Sequence numbers are dense and
// strictly increasing per build, assigned at insertion.
type LogEvent struct {
	BuildID  int           `json:"build_id"`
	Sequence int           `json:"sequence"`
	Kind     EventKind     `json:"kind"`
	StepName string        `json:"step_name,omitempty"`
	Channel  StreamChannel `json:"channel,omitempty"`
	Message  string        `json:"message"`
	Time     int64         `json:"time"`
}

// CapWarningMessage is the synthetic warning entry emitted once per capping
// episode when a subscriber's live buffer exceeds the high-water mark.
const CapWarningMessage = "log buffering capped; older lines dropped from live stream only"

// TimeoutMessage is the synthetic error entry appended when a build hits its
// deadline.
const TimeoutMessage = "timeout exceeded"
