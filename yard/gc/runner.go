package gc

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"
)

// DefaultSweepInterval paces the retention sweep.
const DefaultSweepInterval = 10 * time.Minute

// Runner drives every collector through a sweep at startup and then on the
// interval. A collector's failure is logged and never starves the others;
// the next sweep retries everything anyway.
type Runner struct {
	logger     lager.Logger
	collectors []Collector
	clock      clock.Clock
	interval   time.Duration
}

func NewRunner(logger lager.Logger, clk clock.Clock, interval time.Duration, collectors ...Collector) *Runner {
	return &Runner{
		logger:     logger,
		collectors: collectors,
		clock:      clk,
		interval:   interval,
	}
}

func (r *Runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := r.logger.Session("gc")

	ctx, cancel := context.WithCancel(lagerctx.NewContext(context.Background(), logger))
	defer cancel()

	logger.Info("started", lager.Data{
		"interval":   r.interval.String(),
		"collectors": len(r.collectors),
	})
	close(ready)

	for {
		done := make(chan struct{})
		go func() {
			defer close(done)
			r.sweep(ctx, logger)
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

func (r *Runner) sweep(ctx context.Context, logger lager.Logger) {
	for _, collector := range r.collectors {
		if ctx.Err() != nil {
			return
		}

		session := logger.Session(collector.Name())
		err := collector.Run(lagerctx.NewContext(ctx, session))
		if err != nil {
			session.Error("failed-to-collect", err)
		}
	}
}
