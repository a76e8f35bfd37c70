package db

import (
	"fmt"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"
	sq "github.com/Masterminds/squirrel"
)

//counterfeiter:generate . BuildLifecycle

// BuildLifecycle hosts the reconciliation scans: finalising builds whose
// worker disappeared and enqueueing the single automatic retry each failure
// class is allowed. It also enumerates and destroys builds that have aged
// past the configured retention window.
type BuildLifecycle interface {
	FailAbandoned(logger lager.Logger) ([]Build, []Build, error)
	RetryInfraFailed(logger lager.Logger, delay time.Duration) ([]Build, error)
	QueueDepths() (queued int, running int, err error)
	DestroyableBuilds(window time.Duration, limit int) ([]int, error)
	DestroyBuild(id int) error
}

type buildLifecycle struct {
	conn DbConn
}

func NewBuildLifecycle(conn DbConn) BuildLifecycle {
	return &buildLifecycle{conn: conn}
}

// failAbandonedQuery finalises running builds whose dispatch token expired,
// which means the executor stopped heartbeating the queue and is presumed
// dead.
const failAbandonedQuery = `
	UPDATE builds
	SET status = 'failed',
		error_kind = 'abandoned',
		error_message = 'worker stopped responding; build abandoned',
		finished_at = now(),
		duration_ms = (extract(epoch from now() - started_at) * 1000)::bigint
	WHERE status = 'running'
	AND dispatch_expires_at IS NOT NULL
	AND dispatch_expires_at < now()
	RETURNING id, abandon_retry
`

// FailAbandoned returns the finalised builds and the retry children it
// enqueued. A build that is itself an abandon retry fails for good.
func (l *buildLifecycle) FailAbandoned(logger lager.Logger) ([]Build, []Build, error) {
	tx, err := l.conn.Begin()
	if err != nil {
		return nil, nil, err
	}

	defer Rollback(tx)

	rows, err := tx.Query(failAbandonedQuery)
	if err != nil {
		return nil, nil, err
	}

	type abandonedRow struct {
		id          int
		alreadyOnce bool
	}

	var abandoned []abandonedRow
	for rows.Next() {
		var row abandonedRow
		err = rows.Scan(&row.id, &row.alreadyOnce)
		if err != nil {
			Close(rows)
			return nil, nil, err
		}

		abandoned = append(abandoned, row)
	}

	err = rows.Err()
	Close(rows)
	if err != nil {
		return nil, nil, err
	}

	if len(abandoned) == 0 {
		return nil, nil, nil
	}

	var childIDs []int
	for _, row := range abandoned {
		if row.alreadyOnce {
			logger.Info("abandoned-retry-abandoned", lager.Data{"build": row.id})
			continue
		}

		childID, err := cloneBuild(tx, row.id, true, false)
		if err != nil {
			return nil, nil, fmt.Errorf("enqueue abandon retry of build %d: %w", row.id, err)
		}

		childIDs = append(childIDs, childID)
	}

	err = tx.Commit()
	if err != nil {
		return nil, nil, err
	}

	for _, id := range childIDs {
		err = l.conn.Bus().Notify(BuildEnqueuedChannel, strconv.Itoa(id))
		if err != nil {
			logger.Error("failed-to-notify-enqueue", err, lager.Data{"build": id})
		}
	}

	sourceIDs := make([]int, len(abandoned))
	for i, row := range abandoned {
		sourceIDs[i] = row.id
	}

	sources, err := l.buildsByID(sourceIDs)
	if err != nil {
		return nil, nil, err
	}

	children, err := l.buildsByID(childIDs)
	if err != nil {
		return nil, nil, err
	}

	return sources, children, nil
}

// retryInfraFailedQuery marks infrastructure failures eligible for their one
// automatic retry. The delay keeps a flapping engine from burning the retry
// immediately.
const retryInfraFailedQuery = `
	UPDATE builds
	SET infra_retried = true
	WHERE status = 'failed'
	AND error_kind = 'infrastructure'
	AND infra_retried = false
	AND infra_retry = false
	AND finished_at < now() - $1::interval
	RETURNING id
`

func (l *buildLifecycle) RetryInfraFailed(logger lager.Logger, delay time.Duration) ([]Build, error) {
	tx, err := l.conn.Begin()
	if err != nil {
		return nil, err
	}

	defer Rollback(tx)

	rows, err := tx.Query(retryInfraFailedQuery, fmt.Sprintf("%d seconds", int(delay.Seconds())))
	if err != nil {
		return nil, err
	}

	var sourceIDs []int
	for rows.Next() {
		var id int
		err = rows.Scan(&id)
		if err != nil {
			Close(rows)
			return nil, err
		}

		sourceIDs = append(sourceIDs, id)
	}

	err = rows.Err()
	Close(rows)
	if err != nil {
		return nil, err
	}

	if len(sourceIDs) == 0 {
		return nil, nil
	}

	var childIDs []int
	for _, sourceID := range sourceIDs {
		childID, err := cloneBuild(tx, sourceID, false, true)
		if err != nil {
			return nil, fmt.Errorf("enqueue infrastructure retry of build %d: %w", sourceID, err)
		}

		childIDs = append(childIDs, childID)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	for _, id := range childIDs {
		err = l.conn.Bus().Notify(BuildEnqueuedChannel, strconv.Itoa(id))
		if err != nil {
			logger.Error("failed-to-notify-enqueue", err, lager.Data{"build": id})
		}
	}

	return l.buildsByID(childIDs)
}

// QueueDepths counts the builds currently queued and running. The
// reconciler mirrors the counts into the queue-depth gauges.
func (l *buildLifecycle) QueueDepths() (int, int, error) {
	var queued, running int
	err := psql.Select(
		"count(*) FILTER (WHERE status = 'queued')",
		"count(*) FILTER (WHERE status = 'running')",
	).
		From("builds").
		RunWith(l.conn).
		QueryRow().
		Scan(&queued, &running)
	if err != nil {
		return 0, 0, err
	}

	return queued, running, nil
}

// destroyableBuildsQuery skips builds still referenced as a retry parent;
// the child carries the lineage until it ages out itself, at which point a
// later sweep takes the parent.
const destroyableBuildsQuery = `
	SELECT id FROM builds b
	WHERE b.status IN ('success', 'failed', 'cancelled', 'timed_out')
	AND b.finished_at < now() - $1::interval
	AND NOT EXISTS (SELECT 1 FROM builds c WHERE c.parent_id = b.id)
	ORDER BY b.id
	LIMIT $2
`

func (l *buildLifecycle) DestroyableBuilds(window time.Duration, limit int) ([]int, error) {
	rows, err := l.conn.Query(destroyableBuildsQuery, fmt.Sprintf("%d seconds", int(window.Seconds())), limit)
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var ids []int
	for rows.Next() {
		var id int
		err = rows.Scan(&id)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// DestroyBuild removes the build row; log entries, artifact rows and staged
// notifications go with it by cascade.
func (l *buildLifecycle) DestroyBuild(id int) error {
	_, err := psql.Delete("builds").
		Where(sq.Eq{"id": id}).
		RunWith(l.conn).
		Exec()
	return err
}

func (l *buildLifecycle) buildsByID(ids []int) ([]Build, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return getBuilds(l.conn, buildsQuery.
		Where(sq.Eq{"b.id": ids}).
		OrderBy("b.id"))
}
