package metric

import (
	"time"

	"code.cloudfoundry.org/lager/v3"
)

// PeriodicallyEmit drains gauge high-water marks and operational counter
// deltas on the given interval. Per-build events are emitted at their
// source and are not repeated here.
func PeriodicallyEmit(logger lager.Logger, monitor *Monitor, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		tick := logger.Session("tick")

		monitor.emit(tick, Event{Name: "builds queued", Value: monitor.BuildsQueued.Max()})
		monitor.emit(tick, Event{Name: "builds running", Value: monitor.BuildsRunning.Max()})

		monitor.emit(tick, Event{Name: "containers provisioned", Value: monitor.ContainersProvisioned.Delta()})
		monitor.emit(tick, Event{Name: "failed containers", Value: monitor.FailedContainers.Delta()})
		monitor.emit(tick, Event{Name: "containers reaped", Value: monitor.ContainersReaped.Delta()})

		monitor.emit(tick, Event{Name: "mirror fetches", Value: monitor.MirrorFetches.Delta()})
		monitor.emit(tick, Event{Name: "failed mirror fetches", Value: monitor.FailedMirrorFetches.Delta()})

		monitor.emit(tick, Event{Name: "log entries persisted", Value: monitor.LogEntriesPersisted.Delta()})
		monitor.emit(tick, Event{Name: "live log drops", Value: monitor.LiveLogDrops.Delta()})
		monitor.emit(tick, Event{Name: "log entries drained", Value: monitor.LogEntriesDrained.Delta()})

		monitor.emit(tick, Event{Name: "builds deleted", Value: monitor.BuildsDeleted.Delta()})
		monitor.emit(tick, Event{Name: "artifacts deleted", Value: monitor.ArtifactsDeleted.Delta()})
		monitor.emit(tick, Event{Name: "log entries deleted", Value: monitor.LogEntriesDeleted.Delta()})
	}
}
