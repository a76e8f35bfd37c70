package coordinator

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v5"

	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/report"
)

const (
	// DefaultReconcileInterval paces the periodic sweep.
	DefaultReconcileInterval = 30 * time.Second

	// DefaultInfraRetryDelay is how long an infrastructure failure sits
	// before its automatic retry is enqueued, so a flapping engine does not
	// burn the retry immediately.
	DefaultInfraRetryDelay = time.Minute
)

const abandonedMessage = "worker stopped responding; build abandoned"

// Reconciler sweeps up builds the normal pipeline lost track of: running
// builds whose dispatch token expired are failed as abandoned, and the
// automatic retries owed to abandoned and infrastructure-failed builds are
// enqueued. It also refreshes the queue-depth gauges, being the one
// component that already scans the builds table.
type Reconciler struct {
	logger     lager.Logger
	lifecycle  db.BuildLifecycle
	fin        finaliser
	clock      clock.Clock
	interval   time.Duration
	retryDelay time.Duration
}

func NewReconciler(
	logger lager.Logger,
	lifecycle db.BuildLifecycle,
	hub *logstream.Hub,
	reporter report.Reporter,
	clk clock.Clock,
	interval time.Duration,
	retryDelay time.Duration,
) *Reconciler {
	return &Reconciler{
		logger:    logger,
		lifecycle: lifecycle,
		fin: finaliser{
			hub:      hub,
			reporter: reporter,
			clock:    clk,
		},
		clock:      clk,
		interval:   interval,
		retryDelay: retryDelay,
	}
}

// Run sweeps once at startup and then on the interval. A failed sweep is
// retried with exponential backoff, capped at the interval.
func (r *Reconciler) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := r.logger.Session("reconciler")
	logger.Info("started", lager.Data{"interval": r.interval.String()})
	close(ready)

	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = r.interval

	for {
		count, err := r.Reconcile(logger)

		wait := r.interval
		if err != nil {
			logger.Error("failed-to-reconcile", err)
			wait = bo.NextBackOff()
		} else {
			bo.Reset()
			if count > 0 {
				logger.Info("reconciled", lager.Data{"builds": count})
			}
		}

		timer := r.clock.NewTimer(wait)
		select {
		case <-signals:
			timer.Stop()
			logger.Info("stopping")
			return nil
		case <-timer.C():
		}
	}
}

// Reconcile runs one sweep and reports how many builds it touched. The
// sweeps are status-guarded row updates, so running them concurrently with
// normal dispatch, or with another sweep, cannot double-finalise a build.
func (r *Reconciler) Reconcile(logger lager.Logger) (int, error) {
	abandoned, retries, err := r.lifecycle.FailAbandoned(logger)
	if err != nil {
		return 0, fmt.Errorf("fail abandoned builds: %w", err)
	}

	for _, build := range abandoned {
		buildLogger := logger.Session("abandoned", lager.Data{"build": build.ID()})
		metric.Metrics.BuildsAbandoned.Inc()
		r.fin.closeOut(buildLogger, build, abandonedMessage)
		buildLogger.Info("finalised")
	}

	for _, child := range retries {
		metric.Metrics.BuildsRetried.Inc()
		logger.Info("enqueued-abandon-retry", lager.Data{"build": child.ID(), "source": child.ParentID()})
	}

	infraRetries, err := r.lifecycle.RetryInfraFailed(logger, r.retryDelay)
	if err != nil {
		return 0, fmt.Errorf("retry infrastructure failures: %w", err)
	}

	for _, child := range infraRetries {
		metric.Metrics.BuildsRetried.Inc()
		logger.Info("enqueued-infra-retry", lager.Data{"build": child.ID(), "source": child.ParentID()})
	}

	queued, running, err := r.lifecycle.QueueDepths()
	if err != nil {
		return 0, fmt.Errorf("count queue depths: %w", err)
	}

	metric.Metrics.BuildsQueued.Set(int64(queued))
	metric.Metrics.BuildsRunning.Set(int64(running))

	return len(abandoned) + len(retries) + len(infraRetries), nil
}
