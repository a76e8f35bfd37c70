package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

//counterfeiter:generate . BuildQueue

// BuildQueue is the durable FIFO over the builds table. A claim hands out a
// dispatch token and hides the build for the visibility timeout; an
// unacknowledged claim becomes claimable again once the timeout lapses, so
// delivery is at-least-once.
type BuildQueue interface {
	Claim(logger lager.Logger, workerName string) (Build, string, bool, error)
	Ack(buildID int, token string) (bool, error)
	Nack(buildID int, token string, requeueAfter time.Duration) (bool, error)
}

type buildQueue struct {
	conn              DbConn
	visibilityTimeout time.Duration
}

func NewBuildQueue(conn DbConn, visibilityTimeout time.Duration) BuildQueue {
	return &buildQueue{
		conn:              conn,
		visibilityTimeout: visibilityTimeout,
	}
}

// claimQuery picks the oldest visible queued build. SKIP LOCKED keeps
// concurrent claimers from blocking on each other; each claimer gets a
// distinct row or nothing.
const claimQuery = `
	UPDATE builds
	SET dispatch_token = $1,
		dispatch_expires_at = now() + $2::interval,
		dispatched_to = $3,
		dispatch_count = dispatch_count + 1
	WHERE id = (
		SELECT id
		FROM builds
		WHERE status = 'queued'
		AND (queue_not_before IS NULL OR queue_not_before <= now())
		AND (dispatch_token IS NULL OR dispatch_expires_at < now())
		ORDER BY id
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	)
	RETURNING id
`

func (q *buildQueue) Claim(logger lager.Logger, workerName string) (Build, string, bool, error) {
	token := uuid.NewString()

	var id int
	err := q.conn.QueryRow(
		claimQuery,
		token,
		fmt.Sprintf("%d seconds", int(q.visibilityTimeout.Seconds())),
		workerName,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", false, nil
		}
		return nil, "", false, err
	}

	build, found, err := getBuild(q.conn, buildsQuery.Where(sq.Eq{"b.id": id}))
	if err != nil {
		return nil, "", false, err
	}

	if !found {
		return nil, "", false, fmt.Errorf("claimed build %d disappeared", id)
	}

	logger.Debug("claimed", lager.Data{
		"build":    id,
		"worker":   workerName,
		"attempts": build.DispatchCount(),
	})

	return build, token, true, nil
}

// Ack releases the dispatch token once the claim is fully handled. A stale
// token, i.e. one that expired and was reissued, acknowledges nothing.
func (q *buildQueue) Ack(buildID int, token string) (bool, error) {
	result, err := psql.Update("builds").
		Set("dispatch_token", nil).
		Set("dispatch_expires_at", nil).
		Where(sq.Eq{
			"id":             buildID,
			"dispatch_token": token,
		}).
		RunWith(q.conn).
		Exec()
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Nack returns a claimed build that never started to the queue, optionally
// delaying its next claim. Only still-queued builds can be nacked; anything
// running is finalised through the build row instead.
func (q *buildQueue) Nack(buildID int, token string, requeueAfter time.Duration) (bool, error) {
	notBefore := sq.Expr(fmt.Sprintf("now() + interval '%d second'", int(requeueAfter.Seconds())))

	result, err := psql.Update("builds").
		Set("dispatch_token", nil).
		Set("dispatch_expires_at", nil).
		Set("queue_not_before", notBefore).
		Where(sq.Eq{
			"id":             buildID,
			"dispatch_token": token,
			"status":         "queued",
		}).
		RunWith(q.conn).
		Exec()
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
