package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/slipway/slipway/yard"
)

// InvalidTransitionError is returned when a status change is attempted that
// the build state machine does not permit. Terminal builds are immutable.
type InvalidTransitionError struct {
	BuildID int
	From    yard.BuildStatus
	To      yard.BuildStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("build %d: invalid transition from %s to %s", e.BuildID, e.From, e.To)
}

//counterfeiter:generate . Build

// Build is a row in the builds table: one attempted run of a project at a
// commit. Status changes are compare-and-swap updates so concurrent writers
// can never skip a state.
type Build interface {
	ID() int
	ProjectID() int
	ProjectName() string
	Commit() string
	Branch() string
	Message() string
	Author() string
	PRNumber() int
	TriggerKind() yard.TriggerKind
	Status() yard.BuildStatus
	ParentID() int
	ErrorKind() yard.ErrorKind
	ErrorMessage() string
	QueuedAt() time.Time
	StartedAt() time.Time
	FinishedAt() time.Time
	Duration() time.Duration
	StepsTotal() int
	StepsCompleted() int
	StepsFailed() int
	CancelRequested() bool
	AbandonRetry() bool
	InfraRetry() bool
	DispatchCount() int
	DispatchedTo() string

	Reload() (bool, error)
	Start() (bool, error)
	Finish(status yard.BuildStatus, errorKind yard.ErrorKind, errorMessage string) error
	CancelQueued() (bool, error)
	RequestCancel() error
	UpdateProgress(total, completed, failed int) error

	SaveEvent(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) (yard.LogEvent, error)
	Events(from int) (EventSource, error)

	SaveArtifact(name, storagePath string, sizeBytes int64, expiresAt time.Time) (Artifact, error)
	Artifacts() ([]Artifact, error)

	ToWire() yard.Build
	Snapshot() yard.BuildSnapshot
}

// Artifact is a stored build output file.
type Artifact struct {
	ID          int
	BuildID     int
	Name        string
	StoragePath string
	SizeBytes   int64
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

var buildsQuery = psql.Select(
	"b.id",
	"b.project_id",
	"p.name",
	"b.commit_sha",
	"b.branch",
	"b.message",
	"b.author",
	"b.pr_number",
	"b.trigger_kind",
	"b.status",
	"b.parent_id",
	"b.error_kind",
	"b.error_message",
	"b.queued_at",
	"b.started_at",
	"b.finished_at",
	"b.duration_ms",
	"b.steps_total",
	"b.steps_completed",
	"b.steps_failed",
	"b.cancel_requested",
	"b.abandon_retry",
	"b.infra_retry",
	"b.dispatch_count",
	"b.dispatched_to",
).
	From("builds b").
	Join("projects p ON p.id = b.project_id")

type build struct {
	conn DbConn

	id              int
	projectID       int
	projectName     string
	commit          string
	branch          string
	message         string
	author          string
	prNumber        int
	triggerKind     yard.TriggerKind
	status          yard.BuildStatus
	parentID        int
	errorKind       yard.ErrorKind
	errorMessage    string
	queuedAt        time.Time
	startedAt       time.Time
	finishedAt      time.Time
	duration        time.Duration
	stepsTotal      int
	stepsCompleted  int
	stepsFailed     int
	cancelRequested bool
	abandonRetry    bool
	infraRetry      bool
	dispatchCount   int
	dispatchedTo    string
}

func (b *build) ID() int                      { return b.id }
func (b *build) ProjectID() int               { return b.projectID }
func (b *build) ProjectName() string          { return b.projectName }
func (b *build) Commit() string               { return b.commit }
func (b *build) Branch() string               { return b.branch }
func (b *build) Message() string              { return b.message }
func (b *build) Author() string               { return b.author }
func (b *build) PRNumber() int                { return b.prNumber }
func (b *build) TriggerKind() yard.TriggerKind { return b.triggerKind }
func (b *build) Status() yard.BuildStatus     { return b.status }
func (b *build) ParentID() int                { return b.parentID }
func (b *build) ErrorKind() yard.ErrorKind    { return b.errorKind }
func (b *build) ErrorMessage() string         { return b.errorMessage }
func (b *build) QueuedAt() time.Time          { return b.queuedAt }
func (b *build) StartedAt() time.Time         { return b.startedAt }
func (b *build) FinishedAt() time.Time        { return b.finishedAt }
func (b *build) Duration() time.Duration      { return b.duration }
func (b *build) StepsTotal() int              { return b.stepsTotal }
func (b *build) StepsCompleted() int          { return b.stepsCompleted }
func (b *build) StepsFailed() int             { return b.stepsFailed }
func (b *build) CancelRequested() bool        { return b.cancelRequested }
func (b *build) AbandonRetry() bool           { return b.abandonRetry }
func (b *build) InfraRetry() bool             { return b.infraRetry }
func (b *build) DispatchCount() int           { return b.dispatchCount }
func (b *build) DispatchedTo() string         { return b.dispatchedTo }

func (b *build) Reload() (bool, error) {
	row := buildsQuery.Where(sq.Eq{"b.id": b.id}).
		RunWith(b.conn).
		QueryRow()

	err := scanBuild(b, row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Start moves the build from queued to running. It returns false when the
// build is no longer queued, e.g. it was cancelled between the claim and the
// executor picking it up.
func (b *build) Start() (bool, error) {
	result, err := psql.Update("builds").
		Set("status", string(yard.StatusRunning)).
		Set("started_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":     b.id,
			"status": string(yard.StatusQueued),
		}).
		RunWith(b.conn).
		Exec()
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if affected == 0 {
		return false, nil
	}

	_, err = b.Reload()
	return true, err
}

// Finish moves a running build to a terminal status. Any other starting
// point yields an InvalidTransitionError carrying the actual current status.
func (b *build) Finish(status yard.BuildStatus, errorKind yard.ErrorKind, errorMessage string) error {
	if !yard.ValidTransition(yard.StatusRunning, status) {
		return InvalidTransitionError{BuildID: b.id, From: yard.StatusRunning, To: status}
	}

	result, err := psql.Update("builds").
		Set("status", string(status)).
		Set("error_kind", string(errorKind)).
		Set("error_message", errorMessage).
		Set("finished_at", sq.Expr("now()")).
		Set("duration_ms", sq.Expr("(extract(epoch from now() - started_at) * 1000)::bigint")).
		Where(sq.Eq{
			"id":     b.id,
			"status": string(yard.StatusRunning),
		}).
		RunWith(b.conn).
		Exec()
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		_, err = b.Reload()
		if err != nil {
			return err
		}

		return InvalidTransitionError{BuildID: b.id, From: b.status, To: status}
	}

	_, err = b.Reload()
	return err
}

// CancelQueued finalises a build that never started. It returns false when
// the build already left the queued status.
func (b *build) CancelQueued() (bool, error) {
	result, err := psql.Update("builds").
		Set("status", string(yard.StatusCancelled)).
		Set("error_kind", string(yard.ErrorKindCancelled)).
		Set("error_message", "build cancelled").
		Set("finished_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":     b.id,
			"status": string(yard.StatusQueued),
		}).
		RunWith(b.conn).
		Exec()
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if affected == 0 {
		return false, nil
	}

	_, err = b.Reload()
	return true, err
}

// RequestCancel flags a running build and pokes its executor through the
// notifications bus. Finalisation happens in the executor, which is the only
// writer of terminal statuses for running builds.
func (b *build) RequestCancel() error {
	_, err := psql.Update("builds").
		Set("cancel_requested", true).
		Where(sq.Eq{"id": b.id}).
		RunWith(b.conn).
		Exec()
	if err != nil {
		return err
	}

	return b.conn.Bus().Notify(BuildCancelChannel, strconv.Itoa(b.id))
}

func (b *build) UpdateProgress(total, completed, failed int) error {
	_, err := psql.Update("builds").
		Set("steps_total", total).
		Set("steps_completed", completed).
		Set("steps_failed", failed).
		Where(sq.Eq{"id": b.id}).
		RunWith(b.conn).
		Exec()
	if err != nil {
		return err
	}

	b.stepsTotal = total
	b.stepsCompleted = completed
	b.stepsFailed = failed
	return nil
}

// saveEventQuery assigns the next dense sequence number and persists the
// entry in one round trip. last_log_seq is only ever advanced here.
const saveEventQuery = `
	WITH next AS (
		UPDATE builds
		SET last_log_seq = last_log_seq + 1
		WHERE id = $1
		RETURNING last_log_seq
	)
	INSERT INTO log_entries (build_id, seq, kind, step_name, channel, message, at)
	SELECT $1, next.last_log_seq, $2, $3, $4, $5, $6 FROM next
	RETURNING seq
`

func (b *build) SaveEvent(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) (yard.LogEvent, error) {
	var seq int
	err := b.conn.QueryRow(
		saveEventQuery,
		b.id,
		string(kind),
		step,
		string(channel),
		message,
		at,
	).Scan(&seq)
	if err != nil {
		return yard.LogEvent{}, err
	}

	return yard.LogEvent{
		BuildID:  b.id,
		Sequence: seq,
		Kind:     kind,
		StepName: step,
		Channel:  channel,
		Message:  message,
		Time:     at.Unix(),
	}, nil
}

func (b *build) Events(from int) (EventSource, error) {
	rows, err := psql.Select("build_id", "seq", "kind", "step_name", "channel", "message", "at").
		From("log_entries").
		Where(sq.Eq{"build_id": b.id}).
		Where(sq.Gt{"seq": from}).
		OrderBy("seq ASC").
		RunWith(b.conn).
		Query()
	if err != nil {
		return nil, err
	}

	return newBuildEventSource(rows), nil
}

func (b *build) SaveArtifact(name, storagePath string, sizeBytes int64, expiresAt time.Time) (Artifact, error) {
	artifact := Artifact{
		BuildID:     b.id,
		Name:        name,
		StoragePath: storagePath,
		SizeBytes:   sizeBytes,
		ExpiresAt:   expiresAt,
	}

	err := psql.Insert("artifacts").
		Columns("build_id", "name", "storage_path", "size_bytes", "expires_at").
		Values(b.id, name, storagePath, sizeBytes, expiresAt).
		Suffix(`ON CONFLICT (build_id, name) DO UPDATE SET
			storage_path = excluded.storage_path,
			size_bytes = excluded.size_bytes,
			expires_at = excluded.expires_at
		RETURNING id, created_at`).
		RunWith(b.conn).
		QueryRow().
		Scan(&artifact.ID, &artifact.CreatedAt)
	if err != nil {
		return Artifact{}, err
	}

	return artifact, nil
}

func (b *build) Artifacts() ([]Artifact, error) {
	rows, err := artifactsQuery.Where(sq.Eq{"build_id": b.id}).
		OrderBy("name").
		RunWith(b.conn).
		Query()
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var artifacts []Artifact
	for rows.Next() {
		var artifact Artifact
		err = scanArtifact(&artifact, rows)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (b *build) ToWire() yard.Build {
	wire := yard.Build{
		ID:             b.id,
		ProjectID:      b.projectID,
		ProjectName:    b.projectName,
		Commit:         b.commit,
		Branch:         b.branch,
		Message:        b.message,
		Author:         b.author,
		PRNumber:       b.prNumber,
		Trigger:        b.triggerKind,
		Status:         b.status,
		ParentID:       b.parentID,
		ErrorKind:      b.errorKind,
		ErrorMessage:   b.errorMessage,
		QueuedAt:       b.queuedAt.Unix(),
		DurationMS:     b.duration.Milliseconds(),
		StepsTotal:     b.stepsTotal,
		StepsCompleted: b.stepsCompleted,
		StepsFailed:    b.stepsFailed,
	}

	if !b.startedAt.IsZero() {
		wire.StartedAt = b.startedAt.Unix()
	}

	if !b.finishedAt.IsZero() {
		wire.FinishedAt = b.finishedAt.Unix()
	}

	return wire
}

func (b *build) Snapshot() yard.BuildSnapshot {
	snapshot := yard.BuildSnapshot{
		BuildID:        b.id,
		Status:         b.status,
		StepsTotal:     b.stepsTotal,
		StepsCompleted: b.stepsCompleted,
		StepsFailed:    b.stepsFailed,
		ErrorKind:      b.errorKind,
		ErrorMessage:   b.errorMessage,
	}

	if !b.startedAt.IsZero() {
		snapshot.StartedAt = b.startedAt.Unix()
	}

	if !b.finishedAt.IsZero() {
		snapshot.FinishedAt = b.finishedAt.Unix()
	}

	return snapshot
}

func scanBuild(b *build, row scannable) error {
	var (
		prNumber, parentID      sql.NullInt64
		startedAt, finishedAt   sql.NullTime
		triggerKind, status     string
		errorKind               string
		durationMS              int64
	)

	err := row.Scan(
		&b.id,
		&b.projectID,
		&b.projectName,
		&b.commit,
		&b.branch,
		&b.message,
		&b.author,
		&prNumber,
		&triggerKind,
		&status,
		&parentID,
		&errorKind,
		&b.errorMessage,
		&b.queuedAt,
		&startedAt,
		&finishedAt,
		&durationMS,
		&b.stepsTotal,
		&b.stepsCompleted,
		&b.stepsFailed,
		&b.cancelRequested,
		&b.abandonRetry,
		&b.infraRetry,
		&b.dispatchCount,
		&b.dispatchedTo,
	)
	if err != nil {
		return err
	}

	b.prNumber = int(prNumber.Int64)
	b.parentID = int(parentID.Int64)
	b.triggerKind = yard.TriggerKind(triggerKind)
	b.status = yard.BuildStatus(status)
	b.errorKind = yard.ErrorKind(errorKind)
	b.duration = time.Duration(durationMS) * time.Millisecond

	b.startedAt = time.Time{}
	if startedAt.Valid {
		b.startedAt = startedAt.Time
	}

	b.finishedAt = time.Time{}
	if finishedAt.Valid {
		b.finishedAt = finishedAt.Time
	}

	return nil
}
