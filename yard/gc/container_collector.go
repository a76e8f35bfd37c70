package gc

import (
	"context"

	"github.com/slipway/slipway/yard/runtime/dockerrt"
)

// containerCollector folds the engine's stray-container reaper into the
// sweep cycle.
type containerCollector struct {
	reaper *dockerrt.Reaper
}

func NewContainerCollector(reaper *dockerrt.Reaper) Collector {
	return containerCollector{reaper: reaper}
}

func (containerCollector) Name() string { return "container-collector" }

func (c containerCollector) Run(ctx context.Context) error {
	return c.reaper.Run(ctx)
}
