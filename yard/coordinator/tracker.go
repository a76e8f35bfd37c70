package coordinator

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard/db"
)

// Tracker owns the cancel functions of the builds executing in this
// process. The worker pool registers each build before running it, and a
// cancel notification on the bus fires the matching function, so a cancel
// requested anywhere reaches the executor that owns the build. The
// executor watching the cancelled context finalises the build itself.
type Tracker struct {
	logger lager.Logger
	bus    db.NotificationsBus

	mu      sync.Mutex
	cancels map[int]context.CancelFunc
}

func NewTracker(logger lager.Logger, bus db.NotificationsBus) *Tracker {
	return &Tracker{
		logger:  logger,
		bus:     bus,
		cancels: map[int]context.CancelFunc{},
	}
}

// Track registers the cancel function of a build about to run.
func (t *Tracker) Track(buildID int, cancel context.CancelFunc) {
	t.mu.Lock()
	t.cancels[buildID] = cancel
	t.mu.Unlock()
}

// Untrack drops the registration once the build is done.
func (t *Tracker) Untrack(buildID int) {
	t.mu.Lock()
	delete(t.cancels, buildID)
	t.mu.Unlock()
}

// Cancel fires the build's cancel function and reports whether the build
// was tracked here. Builds that already finished, or that run in another
// process, are not.
func (t *Tracker) Cancel(buildID int) bool {
	t.mu.Lock()
	cancel, found := t.cancels[buildID]
	t.mu.Unlock()

	if found {
		cancel()
	}

	return found
}

// Run subscribes to cancel notifications and fires the matching cancel
// functions until signalled to stop.
func (t *Tracker) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := t.logger.Session("tracker")

	notifications, err := t.bus.Listen(db.BuildCancelChannel)
	if err != nil {
		return fmt.Errorf("listen for cancels: %w", err)
	}

	defer func() {
		err := t.bus.Unlisten(db.BuildCancelChannel, notifications)
		if err != nil {
			logger.Error("failed-to-unlisten", err)
		}
	}()

	logger.Info("started")
	close(ready)

	for {
		select {
		case payload, ok := <-notifications:
			if !ok {
				return nil
			}

			buildID, err := strconv.Atoi(payload)
			if err != nil {
				logger.Error("malformed-cancel-notification", err, lager.Data{"payload": payload})
				continue
			}

			if t.Cancel(buildID) {
				logger.Info("cancelled-build", lager.Data{"build": buildID})
			} else {
				logger.Debug("cancel-for-untracked-build", lager.Data{"build": buildID})
			}

		case <-signals:
			logger.Info("stopping")
			return nil
		}
	}
}
