package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/slipway/slipway/yard"
)

// ErrEndOfBuildEventStream is returned by Next once every persisted entry
// has been read.
var ErrEndOfBuildEventStream = errors.New("end of build event stream")

//counterfeiter:generate . EventSource

// EventSource is a forward-only cursor over a build's persisted log entries
// in sequence order.
type EventSource interface {
	Next() (yard.LogEvent, error)
	Close() error
}

type buildEventSource struct {
	rows *sql.Rows
}

func newBuildEventSource(rows *sql.Rows) EventSource {
	return &buildEventSource{rows: rows}
}

func (s *buildEventSource) Next() (yard.LogEvent, error) {
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return yard.LogEvent{}, err
		}
		return yard.LogEvent{}, ErrEndOfBuildEventStream
	}

	var (
		event yard.LogEvent
		kind  string
		ch    string
		at    time.Time
	)

	err := s.rows.Scan(&event.BuildID, &event.Sequence, &kind, &event.StepName, &ch, &event.Message, &at)
	if err != nil {
		return yard.LogEvent{}, err
	}

	event.Kind = yard.EventKind(kind)
	event.Channel = yard.StreamChannel(ch)
	event.Time = at.Unix()

	return event, nil
}

func (s *buildEventSource) Close() error {
	return s.rows.Close()
}
