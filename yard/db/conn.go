package db

import (
	"database/sql"
	"io"

	sq "github.com/Masterminds/squirrel"
	"github.com/hashicorp/go-multierror"
	"github.com/slipway/slipway/yard/db/encryption"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type scannable interface {
	Scan(dest ...any) error
}

// DbConn is the database handle threaded through every factory and row. It
// carries the notifications bus and the encryption strategy alongside the
// usual query surface so rows can encrypt and signal without extra plumbing.
type DbConn interface {
	Bus() NotificationsBus
	EncryptionStrategy() encryption.Strategy

	Ping() error
	Begin() (Tx, error)
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) sq.RowScanner

	Close() error
	Name() string
}

type Tx interface {
	Commit() error
	Rollback() error
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) sq.RowScanner
}

// Rollback is intended for deferred cleanup after Begin. Rolling back a
// transaction that has already committed is a no-op worth ignoring.
func Rollback(tx Tx) {
	_ = tx.Rollback()
}

// Close is intended for deferred cleanup of row sets.
func Close(c io.Closer) {
	_ = c.Close()
}

func NewConn(name string, sqlDB *sql.DB, bus NotificationsBus, strategy encryption.Strategy) DbConn {
	return &conn{
		name:     name,
		db:       sqlDB,
		bus:      bus,
		strategy: strategy,
	}
}

type conn struct {
	name     string
	db       *sql.DB
	bus      NotificationsBus
	strategy encryption.Strategy
}

func (c *conn) Bus() NotificationsBus {
	return c.bus
}

func (c *conn) EncryptionStrategy() encryption.Strategy {
	return c.strategy
}

func (c *conn) Ping() error {
	return c.db.Ping()
}

func (c *conn) Begin() (Tx, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, err
	}

	return &dbTx{tx}, nil
}

func (c *conn) Exec(query string, args ...any) (sql.Result, error) {
	return c.db.Exec(query, args...)
}

func (c *conn) Query(query string, args ...any) (*sql.Rows, error) {
	return c.db.Query(query, args...)
}

func (c *conn) QueryRow(query string, args ...any) sq.RowScanner {
	return c.db.QueryRow(query, args...)
}

func (c *conn) Close() error {
	var errs error

	if c.bus != nil {
		if err := c.bus.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := c.db.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs
}

func (c *conn) Name() string {
	return c.name
}

type dbTx struct {
	tx *sql.Tx
}

func (t *dbTx) Commit() error {
	return t.tx.Commit()
}

func (t *dbTx) Rollback() error {
	return t.tx.Rollback()
}

func (t *dbTx) Exec(query string, args ...any) (sql.Result, error) {
	return t.tx.Exec(query, args...)
}

func (t *dbTx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.tx.Query(query, args...)
}

func (t *dbTx) QueryRow(query string, args ...any) sq.RowScanner {
	return t.tx.QueryRow(query, args...)
}
