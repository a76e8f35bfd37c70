package syslog

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// DefaultDrainInterval paces the forwarding sweeps.
const DefaultDrainInterval = 30 * time.Second

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Sweeper

// Sweeper performs one forwarding pass over the builds that still owe the
// collector their logs. The Drainer is the production implementation.
type Sweeper interface {
	Run(ctx context.Context) error
}

// Runner drives the drainer through a sweep at startup and then on the
// interval. A failed sweep is logged and retried whole on the next tick;
// the drainer itself remembers nothing between passes.
type Runner struct {
	logger   lager.Logger
	sweeper  Sweeper
	clock    clock.Clock
	interval time.Duration
}

func NewRunner(logger lager.Logger, sweeper Sweeper, clk clock.Clock, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultDrainInterval
	}

	return &Runner{
		logger:   logger,
		sweeper:  sweeper,
		clock:    clk,
		interval: interval,
	}
}

func (r *Runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := r.logger.Session("syslog")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("started", lager.Data{"interval": r.interval.String()})
	close(ready)

	for {
		done := make(chan struct{})
		go func() {
			defer close(done)

			err := r.sweeper.Run(ctx)
			if err != nil && ctx.Err() == nil {
				logger.Error("failed-to-drain", err)
			}
		}()

		select {
		case <-signals:
			cancel()
			<-done
			logger.Info("stopping")
			return nil
		case <-done:
		}

		timer := r.clock.NewTimer(r.interval)
		select {
		case <-signals:
			timer.Stop()
			logger.Info("stopping")
			return nil
		case <-timer.C():
		}
	}
}
