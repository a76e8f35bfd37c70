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

// destroyBatchSize caps how many builds one sweep destroys, so an operator
// enabling retention on a years-old database does not stall the sweeper.
const destroyBatchSize = 500

// buildCollector destroys whole builds once they outlive the build
// retention window: artifact files go first, then the build row, whose
// cascades take the log entries, artifact rows and staged notifications. A
// zero window keeps builds forever.
type buildCollector struct {
	builds    db.BuildLifecycle
	artifacts db.ArtifactLifecycle
	locks     lock.LockFactory
	window    time.Duration
	root      string
}

func NewBuildCollector(
	builds db.BuildLifecycle,
	artifacts db.ArtifactLifecycle,
	locks lock.LockFactory,
	window time.Duration,
	root string,
) Collector {
	return &buildCollector{
		builds:    builds,
		artifacts: artifacts,
		locks:     locks,
		window:    window,
		root:      root,
	}
}

func (c *buildCollector) Name() string { return "build-collector" }

func (c *buildCollector) Run(ctx context.Context) error {
	if c.window <= 0 {
		return nil
	}

	logger := lagerctx.FromContext(ctx)

	buildIDs, err := c.builds.DestroyableBuilds(c.window, destroyBatchSize)
	if err != nil {
		return fmt.Errorf("enumerate destroyable builds: %w", err)
	}

	var errs error
	for _, buildID := range buildIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := c.destroy(logger, buildID)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *buildCollector) destroy(logger lager.Logger, buildID int) error {
	held, acquired, err := c.locks.Acquire(logger, lock.NewBuildRetentionLockID(buildID))
	if err != nil {
		return fmt.Errorf("acquire retention lock for build %d: %w", buildID, err)
	}

	if !acquired {
		logger.Debug("retention-lock-busy", lager.Data{"build": buildID})
		return nil
	}

	defer releaseLock(logger, held)

	artifacts, err := c.artifacts.ArtifactsForBuild(buildID)
	if err != nil {
		return fmt.Errorf("enumerate artifacts of build %d: %w", buildID, err)
	}

	for _, artifact := range artifacts {
		err := removeArtifactFile(logger, artifact, c.root)
		if err != nil {
			// Row deletion waits until every file is provably gone.
			return fmt.Errorf("remove file of artifact %d: %w", artifact.ID, err)
		}
	}

	err = c.builds.DestroyBuild(buildID)
	if err != nil {
		return fmt.Errorf("destroy build %d: %w", buildID, err)
	}

	metric.Metrics.BuildsDeleted.Inc()
	logger.Info("destroyed", lager.Data{"build": buildID, "artifacts": len(artifacts)})

	return nil
}
