package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver

	"github.com/slipway/slipway/yard/db/encryption"
)

// Open connects to Postgres, waits for it to accept connections, applies the
// schema, and starts the notifications bus. The server is usually started
// alongside the database, so the initial ping retries for up to a minute.
func Open(logger lager.Logger, connectionString string, strategy encryption.Strategy, maxConns int, name string) (DbConn, error) {
	sqlDB, err := sql.Open("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxConns)

	_, err = backoff.Retry(
		context.Background(),
		func() (any, error) {
			pingErr := sqlDB.Ping()
			if pingErr != nil {
				logger.Info("waiting-for-database", lager.Data{"error": pingErr.Error()})
			}
			return nil, pingErr
		},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(time.Minute),
	)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = migrate(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	bus := NewNotificationsBus(
		logger.Session("notifications-bus"),
		connectionString,
		sqlDB,
		BuildEnqueuedChannel,
		BuildCancelChannel,
	)

	return NewConn(name, sqlDB, bus, strategy), nil
}
