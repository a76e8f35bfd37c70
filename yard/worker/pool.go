// Package worker runs the bounded pool of build workers. Each worker loops
// dequeue → execute → acknowledge; the pool fans cancellation out to
// in-flight builds when the process is asked to stop.
package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/engine"
	"github.com/slipway/slipway/yard/queue"
)

const (
	// DefaultCount is the number of concurrent workers.
	DefaultCount = 2

	// DefaultDrainTimeout is how long a stopping pool waits for in-flight
	// builds to finish cancelling before giving up on them.
	DefaultDrainTimeout = time.Minute
)

// ErrDrainTimeout reports workers still busy at the drain deadline. Their
// builds keep their dispatch tokens and are reconciled as abandoned once the
// visibility timeout lapses.
var ErrDrainTimeout = errors.New("drain deadline exceeded")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Tracker

// Tracker registers the cancel half of every in-flight build's context, so
// cancellation requests arriving over the API or the notification bus can
// reach the executor that owns the build.
type Tracker interface {
	Track(buildID int, cancel context.CancelFunc)
	Untrack(buildID int)
}

// Pool is an ifrit.Runner. Workers start on Run, and a signal begins the
// drain: dequeues stop immediately, in-flight build contexts are cancelled,
// and Run returns once every worker has wound down or the drain deadline
// passes.
type Pool struct {
	logger  lager.Logger
	queue   queue.Queue
	engine  engine.Engine
	tracker Tracker
	clock   clock.Clock

	count        int
	drainTimeout time.Duration
}

func NewPool(
	logger lager.Logger,
	q queue.Queue,
	eng engine.Engine,
	tracker Tracker,
	clk clock.Clock,
	count int,
	drainTimeout time.Duration,
) *Pool {
	return &Pool{
		logger:  logger,
		queue:   q,
		engine:  eng,
		tracker: tracker,
		clock:   clk,

		count:        count,
		drainTimeout: drainTimeout,
	}
}

func (pool *Pool) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := pool.logger.Session("pool")

	ctx, cancel := context.WithCancel(lagerctx.NewContext(context.Background(), logger))
	defer cancel()

	var workers sync.WaitGroup
	for i := 1; i <= pool.count; i++ {
		name := fmt.Sprintf("worker-%d", i)

		workers.Add(1)
		go func() {
			defer workers.Done()
			pool.work(ctx, name)
		}()
	}

	logger.Info("started", lager.Data{"workers": pool.count})
	close(ready)

	drained := make(chan struct{})
	go func() {
		workers.Wait()
		close(drained)
	}()

	<-signals
	logger.Info("draining")
	cancel()

	timer := pool.clock.NewTimer(pool.drainTimeout)
	defer timer.Stop()

	select {
	case <-drained:
		logger.Info("drained")
		return nil
	case <-timer.C():
		logger.Error("drain-deadline-exceeded", ErrDrainTimeout, lager.Data{
			"timeout": pool.drainTimeout.String(),
		})
		return ErrDrainTimeout
	}
}

func (pool *Pool) work(ctx context.Context, name string) {
	logger := lagerctx.FromContext(ctx).Session("worker", lager.Data{"name": name})
	ctx = lagerctx.NewContext(ctx, logger)

	for {
		build, token, err := pool.queue.DequeueBlocking(ctx, name)
		if err != nil {
			// Only context cancellation unblocks a dequeue
			// empty-handed; anything else is fatal to the worker.
			if ctx.Err() == nil {
				logger.Error("failed-to-dequeue", err)
			}
			return
		}

		pool.handle(ctx, logger, build, token)
	}
}

func (pool *Pool) handle(ctx context.Context, logger lager.Logger, build db.Build, token string) {
	logger = logger.Session("handle", lager.Data{"build": build.ID()})

	// A drain can land between the claim and here. Hand the claim back so
	// the next server start picks the build up without waiting out the
	// visibility timeout.
	if ctx.Err() != nil {
		pool.queue.Nack(logger, build.ID(), token, 0)
		return
	}

	// Cancelled after enqueue, observed at claim time: the row is already
	// terminal, so acknowledge and never redeliver.
	if build.Status() != yard.StatusQueued {
		logger.Info("skipping-finished-build", lager.Data{"status": string(build.Status())})
		pool.queue.Ack(logger, build.ID(), token)
		return
	}

	buildCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool.tracker.Track(build.ID(), cancel)
	defer pool.tracker.Untrack(build.ID())

	pool.engine.NewBuild(build).Run(lagerctx.NewContext(buildCtx, logger))

	pool.queue.Ack(logger, build.ID(), token)
}
