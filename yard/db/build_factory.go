package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/slipway/slipway/yard"
)

// ErrProjectDisappeared is returned when a build is created against a
// project row deleted underneath it.
var ErrProjectDisappeared = errors.New("project disappeared")

//counterfeiter:generate . BuildFactory

type BuildFactory interface {
	CreateBuild(project Project, trigger yard.Trigger) (Build, error)
	CreateRetry(source Build) (Build, error)
	GetBuild(id int) (Build, bool, error)
	BuildsForProject(projectID int, limit int) ([]Build, error)
}

type buildFactory struct {
	conn DbConn
}

func NewBuildFactory(conn DbConn) BuildFactory {
	return &buildFactory{conn: conn}
}

// CreateBuild enqueues a build: the row is born queued, carries a queued
// marker as its first log entry, and dequeuers are notified once the
// transaction commits.
func (f *buildFactory) CreateBuild(project Project, trigger yard.Trigger) (Build, error) {
	tx, err := f.conn.Begin()
	if err != nil {
		return nil, err
	}

	defer Rollback(tx)

	var prNumber any
	if trigger.PRNumber != 0 {
		prNumber = trigger.PRNumber
	}

	var id int
	err = psql.Insert("builds").
		Columns(
			"project_id",
			"commit_sha",
			"branch",
			"message",
			"author",
			"pr_number",
			"trigger_kind",
			"status",
			"last_log_seq",
		).
		Values(
			project.ID(),
			trigger.Commit,
			trigger.Branch,
			trigger.Message,
			trigger.Author,
			prNumber,
			string(trigger.Kind),
			string(yard.StatusQueued),
			1,
		).
		Suffix("RETURNING id").
		RunWith(tx).
		QueryRow().
		Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrProjectDisappeared
		}
		return nil, err
	}

	err = insertQueuedMarker(tx, id)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	err = f.conn.Bus().Notify(BuildEnqueuedChannel, strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	build, found, err := f.GetBuild(id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("created build %d disappeared", id)
	}

	return build, nil
}

// CreateRetry enqueues a fresh build of the source's commit. The child
// records its parent; both remain independently visible.
func (f *buildFactory) CreateRetry(source Build) (Build, error) {
	tx, err := f.conn.Begin()
	if err != nil {
		return nil, err
	}

	defer Rollback(tx)

	id, err := cloneBuild(tx, source.ID(), false, false)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	err = f.conn.Bus().Notify(BuildEnqueuedChannel, strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	build, found, err := f.GetBuild(id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("created build %d disappeared", id)
	}

	return build, nil
}

func (f *buildFactory) GetBuild(id int) (Build, bool, error) {
	return getBuild(f.conn, buildsQuery.Where(sq.Eq{"b.id": id}))
}

func (f *buildFactory) BuildsForProject(projectID int, limit int) ([]Build, error) {
	return getBuilds(f.conn, buildsQuery.
		Where(sq.Eq{"b.project_id": projectID}).
		OrderBy("b.id DESC").
		Limit(uint64(limit)))
}

// cloneBuild enqueues a copy of an existing build inside the caller's
// transaction and returns the new id. The retry flags mark children created
// by the reconciler so they are never themselves retried automatically.
func cloneBuild(tx Tx, sourceID int, abandonRetry, infraRetry bool) (int, error) {
	var id int
	err := tx.QueryRow(`
		INSERT INTO builds (
			project_id, commit_sha, branch, message, author, pr_number,
			trigger_kind, status, parent_id, abandon_retry, infra_retry, last_log_seq
		)
		SELECT
			project_id, commit_sha, branch, message, author, pr_number,
			$2, $3, id, $4, $5, 1
		FROM builds
		WHERE id = $1
		RETURNING id
	`, sourceID, string(yard.TriggerRetry), string(yard.StatusQueued), abandonRetry, infraRetry).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, insertQueuedMarker(tx, id)
}

func insertQueuedMarker(tx Tx, buildID int) error {
	_, err := psql.Insert("log_entries").
		Columns("build_id", "seq", "kind", "message").
		Values(buildID, 1, string(yard.EventInfo), "build queued").
		RunWith(tx).
		Exec()
	return err
}

func getBuild(conn DbConn, query sq.SelectBuilder) (Build, bool, error) {
	row := query.RunWith(conn).QueryRow()

	b := &build{conn: conn}

	err := scanBuild(b, row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return b, true, nil
}

func getBuilds(conn DbConn, query sq.SelectBuilder) ([]Build, error) {
	rows, err := query.RunWith(conn).Query()
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var builds []Build
	for rows.Next() {
		b := &build{conn: conn}

		err = scanBuild(b, rows)
		if err != nil {
			return nil, err
		}

		builds = append(builds, b)
	}

	return builds, nil
}
