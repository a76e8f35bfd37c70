package dockerrt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/tracing"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/metric"
)

// Reaper removes stray build containers: anything carrying this server's
// build label whose build is terminal or unknown. Containers belonging to
// running builds are left alone.
type Reaper struct {
	logger       lager.Logger
	cli          CLI
	config       Config
	buildFactory db.BuildFactory
}

// NewReaper creates a Reaper that sweeps engine containers using the
// given CLI and build lookup.
func NewReaper(
	logger lager.Logger,
	cli CLI,
	config Config,
	buildFactory db.BuildFactory,
) *Reaper {
	return &Reaper{
		logger:       logger,
		cli:          cli,
		config:       config,
		buildFactory: buildFactory,
	}
}

// Run performs one sweep: list containers carrying the build label, look
// up each owning build, and force-remove containers whose build is
// finished or missing.
func (r *Reaper) Run(ctx context.Context) error {
	logger := r.logger.Session("run")

	ctx, span := tracing.StartSpan(ctx, "docker.reaper.run", tracing.Attrs{
		"label": buildLabelKey,
	})
	var spanErr error
	defer func() { tracing.End(span, spanErr) }()

	out, err := r.cli.Run(ctx,
		"ps", "--all",
		"--filter", "label="+buildLabelKey,
		"--format", "{{.Names}}\t{{.Label \""+buildLabelKey+"\"}}",
	)
	if err != nil {
		logger.Error("failed-to-list-containers", err)
		spanErr = err
		return fmt.Errorf("listing containers: %w", err)
	}

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}

		name, label, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}

		buildID, err := strconv.Atoi(label)
		if err != nil {
			logger.Info("skipping-unparseable-label", lager.Data{"container": name, "label": label})
			continue
		}

		build, found, err := r.buildFactory.GetBuild(buildID)
		if err != nil {
			logger.Error("failed-to-look-up-build", err, lager.Data{"build": buildID})
			spanErr = err
			return fmt.Errorf("looking up build %d: %w", buildID, err)
		}

		if found && !build.Status().Terminal() {
			continue
		}

		if _, err := r.cli.Run(ctx, "rm", "--force", name); err != nil && !isNotFound(err) {
			logger.Error("failed-to-remove-container", err, lager.Data{"container": name, "build": buildID})
			spanErr = err
			return fmt.Errorf("removing container %s: %w", name, err)
		}

		metric.Metrics.ContainersReaped.Inc()
		logger.Info("reaped", lager.Data{"container": name, "build": buildID})
	}

	return nil
}
