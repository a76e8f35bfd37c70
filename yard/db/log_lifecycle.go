package db

import (
	"fmt"
	"time"
)

//counterfeiter:generate . LogLifecycle

// LogLifecycle finds terminal builds whose logs have outlived the retention
// window and deletes their entries. Build rows themselves are kept; only the
// log volume is reclaimed.
type LogLifecycle interface {
	BuildsWithExpiredLogs(retention time.Duration) ([]int, error)
	DeleteLogs(buildID int) (int64, error)
}

type logLifecycle struct {
	conn DbConn
}

func NewLogLifecycle(conn DbConn) LogLifecycle {
	return &logLifecycle{conn: conn}
}

const expiredLogsQuery = `
	SELECT DISTINCT b.id
	FROM builds b
	JOIN log_entries l ON l.build_id = b.id
	WHERE b.status IN ('success', 'failed', 'cancelled', 'timed_out')
	AND b.finished_at < now() - $1::interval
	ORDER BY b.id
`

func (l *logLifecycle) BuildsWithExpiredLogs(retention time.Duration) ([]int, error) {
	rows, err := l.conn.Query(expiredLogsQuery, fmt.Sprintf("%d seconds", int(retention.Seconds())))
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

func (l *logLifecycle) DeleteLogs(buildID int) (int64, error) {
	result, err := l.conn.Exec(`DELETE FROM log_entries WHERE build_id = $1`, buildID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
