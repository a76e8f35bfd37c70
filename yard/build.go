package yard

// BuildStatus describes where a build is in its lifecycle.
type BuildStatus string

const (
	// StatusQueued is the initial status: the build sits in the work queue
	// waiting for a worker.
	StatusQueued BuildStatus = "queued"

	// StatusRunning means a worker has dispatched the build and the executor
	// is driving it.
	StatusRunning BuildStatus = "running"

	// StatusSuccess means every phase exited zero.
	StatusSuccess BuildStatus = "success"

	// StatusFailed means a phase exited non-zero, a required secret was
	// missing, provisioning failed, or the build was abandoned.
	StatusFailed BuildStatus = "failed"

	// StatusCancelled means a user or a shutdown drain cancelled the build.
	StatusCancelled BuildStatus = "cancelled"

	// StatusTimedOut means the build hit its deadline.
	StatusTimedOut BuildStatus = "timed_out"
)

// BuildStatuses enumerates every recognised status.
var BuildStatuses = []BuildStatus{
	StatusQueued,
	StatusRunning,
	StatusSuccess,
	StatusFailed,
	StatusCancelled,
	StatusTimedOut,
}

// Terminal reports whether the status is final. Attributes of a terminal
// build (other than artifact expiry and log retention) are immutable.
func (s BuildStatus) Terminal() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusCancelled, StatusTimedOut:
		return true
	}
	return false
}

// validTransitions is the exhaustive transition set of the build state
// machine. Terminal statuses have no outgoing edges.
var validTransitions = map[BuildStatus][]BuildStatus{
	StatusQueued:  {StatusRunning, StatusCancelled},
	StatusRunning: {StatusSuccess, StatusFailed, StatusCancelled, StatusTimedOut},
}

// ValidTransition reports whether the state machine permits moving a build
// from one status to another.
func ValidTransition(from, to BuildStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TriggerKind records what caused a build to be enqueued.
type TriggerKind string

const (
	TriggerPush        TriggerKind = "push"
	TriggerPullRequest TriggerKind = "pull_request"
	TriggerManual      TriggerKind = "manual"
	TriggerRetry       TriggerKind = "retry"
)

// KnownTrigger reports whether the kind is one of the recognised triggers.
func KnownTrigger(kind TriggerKind) bool {
	switch kind {
	case TriggerPush, TriggerPullRequest, TriggerManual, TriggerRetry:
		return true
	}
	return false
}

// Build is the wire form of one attempted run.
type Build struct {
	ID          int         `json:"id"`
	ProjectID   int         `json:"project_id"`
	ProjectName string      `json:"project_name,omitempty"`
	Commit      string      `json:"commit"`
	Branch      string      `json:"branch"`
	Message     string      `json:"message,omitempty"`
	Author      string      `json:"author,omitempty"`
	PRNumber    int         `json:"pr_number,omitempty"`
	Trigger     TriggerKind `json:"trigger"`
	Status      BuildStatus `json:"status"`
	ParentID    int         `json:"parent_id,omitempty"`

	ErrorKind    ErrorKind `json:"error_kind,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`

	QueuedAt   int64 `json:"queued_at,omitempty"`
	StartedAt  int64 `json:"started_at,omitempty"`
	FinishedAt int64 `json:"finished_at,omitempty"`
	DurationMS int64 `json:"duration_ms,omitempty"`

	StepsTotal     int `json:"steps_total"`
	StepsCompleted int `json:"steps_completed"`
	StepsFailed    int `json:"steps_failed"`
}

// BuildSnapshot is the compact progress view served by the coordinator.
type BuildSnapshot struct {
	BuildID        int         `json:"build_id"`
	Status         BuildStatus `json:"status"`
	StepsTotal     int         `json:"steps_total"`
	StepsCompleted int         `json:"steps_completed"`
	StepsFailed    int         `json:"steps_failed"`
	ErrorKind      ErrorKind   `json:"error_kind,omitempty"`
	ErrorMessage   string      `json:"error_message,omitempty"`
	StartedAt      int64       `json:"started_at,omitempty"`
	FinishedAt     int64       `json:"finished_at,omitempty"`
}

// Trigger is a validated, normalised incoming trigger as handed over by the
// webhook adapter.
type Trigger struct {
	RepoFullName string      `json:"repo_full_name"`
	Commit       string      `json:"commit_sha"`
	Branch       string      `json:"branch"`
	PRNumber     int         `json:"pr_number,omitempty"`
	Kind         TriggerKind `json:"trigger_kind"`
	Author       string      `json:"author,omitempty"`
	Message      string      `json:"message,omitempty"`
}
