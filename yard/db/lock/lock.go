package lock

import (
	"database/sql"
	"fmt"
	"sync"

	"code.cloudfoundry.org/lager/v3"
)

const (
	LockTypeBuildRetention = iota + 1
	LockTypeBuildTracking
)

// NewBuildRetentionLockID guards a build's log and artifact sweep so the
// sweeper never races another sweeper pass over the same build.
func NewBuildRetentionLockID(buildID int) LockID {
	return LockID{LockTypeBuildRetention, buildID}
}

// NewBuildTrackingLockID guards reconciliation of a single build.
func NewBuildTrackingLockID(buildID int) LockID {
	return LockID{LockTypeBuildTracking, buildID}
}

// LockID is a (class, key) pair mapped onto pg_try_advisory_lock's two
// int4 arguments.
type LockID [2]int

func (id LockID) key() string {
	return fmt.Sprintf("%d/%d", id[0], id[1])
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . LockFactory

type LockFactory interface {
	Acquire(logger lager.Logger, id LockID) (Lock, bool, error)
}

//counterfeiter:generate . Lock

type Lock interface {
	Release() error
}

// lockFactory holds one database handle dedicated to advisory locks.
// Postgres advisory locks are session-scoped and re-entrant within a
// session, so the factory additionally tracks held ids in-process: a second
// Acquire of a held id reports busy instead of silently nesting.
type lockFactory struct {
	db *sql.DB

	mu   sync.Mutex
	held map[string]bool
}

// NewLockFactory wants a *sql.DB whose pool is pinned to a single
// connection, so that locking and unlocking happen on the same session.
func NewLockFactory(db *sql.DB) LockFactory {
	return &lockFactory{
		db:   db,
		held: make(map[string]bool),
	}
}

func (f *lockFactory) Acquire(logger lager.Logger, id LockID) (Lock, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.held[id.key()] {
		return nil, false, nil
	}

	var acquired bool
	err := f.db.QueryRow(`SELECT pg_try_advisory_lock($1, $2)`, id[0], id[1]).Scan(&acquired)
	if err != nil {
		return nil, false, err
	}

	if !acquired {
		return nil, false, nil
	}

	f.held[id.key()] = true

	logger.Debug("acquired", lager.Data{"lock": id.key()})

	return &lock{factory: f, id: id}, true, nil
}

func (f *lockFactory) release(id LockID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.held, id.key())

	var released bool
	err := f.db.QueryRow(`SELECT pg_advisory_unlock($1, $2)`, id[0], id[1]).Scan(&released)
	if err != nil {
		return err
	}

	if !released {
		return fmt.Errorf("lock %s was not held", id.key())
	}

	return nil
}

type lock struct {
	factory *lockFactory
	id      LockID

	once sync.Once
	err  error
}

// Release is idempotent; releasing twice returns the first outcome.
func (l *lock) Release() error {
	l.once.Do(func() {
		l.err = l.factory.release(l.id)
	})

	return l.err
}
