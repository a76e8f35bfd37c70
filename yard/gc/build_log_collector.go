package gc

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/lock"
	"github.com/slipway/slipway/yard/metric"
)

// buildLogCollector deletes the log entries of terminal builds that have
// outlived the log retention window. The build row itself stays; only the
// log volume is reclaimed.
type buildLogCollector struct {
	lifecycle db.LogLifecycle
	locks     lock.LockFactory
	window    time.Duration
}

func NewBuildLogCollector(lifecycle db.LogLifecycle, locks lock.LockFactory, window time.Duration) Collector {
	return &buildLogCollector{
		lifecycle: lifecycle,
		locks:     locks,
		window:    window,
	}
}

func (c *buildLogCollector) Name() string { return "build-log-collector" }

func (c *buildLogCollector) Run(ctx context.Context) error {
	logger := lagerctx.FromContext(ctx)

	buildIDs, err := c.lifecycle.BuildsWithExpiredLogs(c.window)
	if err != nil {
		return fmt.Errorf("enumerate builds with expired logs: %w", err)
	}

	var errs error
	for _, buildID := range buildIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := c.collectBuild(logger, buildID)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *buildLogCollector) collectBuild(logger lager.Logger, buildID int) error {
	held, acquired, err := c.locks.Acquire(logger, lock.NewBuildRetentionLockID(buildID))
	if err != nil {
		return fmt.Errorf("acquire retention lock for build %d: %w", buildID, err)
	}

	if !acquired {
		logger.Debug("retention-lock-busy", lager.Data{"build": buildID})
		return nil
	}

	defer releaseLock(logger, held)

	deleted, err := c.lifecycle.DeleteLogs(buildID)
	if err != nil {
		return fmt.Errorf("delete logs of build %d: %w", buildID, err)
	}

	metric.Metrics.LogEntriesDeleted.IncDelta(int(deleted))
	logger.Info("swept", lager.Data{"build": buildID, "entries": deleted})

	return nil
}
