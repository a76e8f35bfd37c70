package db

import (
	sq "github.com/Masterminds/squirrel"
)

//counterfeiter:generate . SyslogDrain

// SyslogDrain enumerates terminal builds whose log entries have not yet been
// forwarded to the syslog sink, and records the handoff. A build is marked
// drained only after every entry went out, so an interrupted sweep re-sends
// the whole build next time; forwarding is at-least-once.
type SyslogDrain interface {
	UndrainedBuilds(limit int) ([]Build, error)
	MarkDrained(buildID int) error
}

type syslogDrain struct {
	conn DbConn
}

func NewSyslogDrain(conn DbConn) SyslogDrain {
	return &syslogDrain{conn: conn}
}

func (d *syslogDrain) UndrainedBuilds(limit int) ([]Build, error) {
	return getBuilds(d.conn, buildsQuery.
		Where(sq.Eq{"b.syslog_drained": false}).
		Where(sq.Expr(`b.status IN ('success', 'failed', 'cancelled', 'timed_out')`)).
		OrderBy("b.id ASC").
		Limit(uint64(limit)))
}

func (d *syslogDrain) MarkDrained(buildID int) error {
	_, err := d.conn.Exec(`UPDATE builds SET syslog_drained = true WHERE id = $1`, buildID)
	return err
}
