package gc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/lock"
	"github.com/slipway/slipway/yard/metric"
)

// artifactCollector deletes expired artifacts, file first and row second, a
// build at a time under that build's retention lock. A crash between file
// and row re-presents the artifact next sweep, where the missing file is
// tolerated.
type artifactCollector struct {
	lifecycle db.ArtifactLifecycle
	locks     lock.LockFactory
	root      string
}

func NewArtifactCollector(lifecycle db.ArtifactLifecycle, locks lock.LockFactory, root string) Collector {
	return &artifactCollector{
		lifecycle: lifecycle,
		locks:     locks,
		root:      root,
	}
}

func (c *artifactCollector) Name() string { return "artifact-collector" }

func (c *artifactCollector) Run(ctx context.Context) error {
	logger := lagerctx.FromContext(ctx)

	expired, err := c.lifecycle.ExpiredArtifacts()
	if err != nil {
		return fmt.Errorf("enumerate expired artifacts: %w", err)
	}

	byBuild := make(map[int][]db.Artifact)
	var order []int
	for _, artifact := range expired {
		if _, seen := byBuild[artifact.BuildID]; !seen {
			order = append(order, artifact.BuildID)
		}
		byBuild[artifact.BuildID] = append(byBuild[artifact.BuildID], artifact)
	}

	var errs error
	for _, buildID := range order {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := c.collectBuild(logger, buildID, byBuild[buildID])
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *artifactCollector) collectBuild(logger lager.Logger, buildID int, artifacts []db.Artifact) error {
	held, acquired, err := c.locks.Acquire(logger, lock.NewBuildRetentionLockID(buildID))
	if err != nil {
		return fmt.Errorf("acquire retention lock for build %d: %w", buildID, err)
	}

	if !acquired {
		logger.Debug("retention-lock-busy", lager.Data{"build": buildID})
		return nil
	}

	defer releaseLock(logger, held)

	var errs error
	removed := 0
	for _, artifact := range artifacts {
		err := removeArtifactFile(logger, artifact, c.root)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("remove file of artifact %d: %w", artifact.ID, err))
			continue
		}

		err = c.lifecycle.RemoveArtifact(artifact.ID)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("remove row of artifact %d: %w", artifact.ID, err))
			continue
		}

		metric.Metrics.ArtifactsDeleted.Inc()
		removed++
	}

	if removed > 0 {
		logger.Info("swept", lager.Data{"build": buildID, "artifacts": removed})
	}

	return errs
}

// removeArtifactFile deletes the stored file, tolerating one that is
// already gone, and prunes directories its removal emptied.
func removeArtifactFile(logger lager.Logger, artifact db.Artifact, root string) error {
	err := os.Remove(artifact.StoragePath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("artifact-file-already-gone", lager.Data{"artifact": artifact.ID})
		return nil
	}
	if err != nil {
		return err
	}

	pruneEmptyDirs(artifact.StoragePath, root)
	return nil
}

// pruneEmptyDirs removes the now-empty directories between a deleted file
// and the storage root. The first non-empty directory stops the walk.
func pruneEmptyDirs(path, root string) {
	if root == "" {
		return
	}

	root = filepath.Clean(root)
	dir := filepath.Dir(filepath.Clean(path))
	for dir != root && strings.HasPrefix(dir, root+string(os.PathSeparator)) {
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}

func releaseLock(logger lager.Logger, held lock.Lock) {
	if err := held.Release(); err != nil {
		logger.Error("failed-to-release-retention-lock", err)
	}
}
