// Package queue is the worker-facing face of the durable build queue. The
// builds table is the queue and enqueueing is the factory's insert plus its
// NOTIFY; this package adds blocking dequeues, woken by that NOTIFY with a
// poll tick as the fallback for missed notifications and visibility-timeout
// expiry.
package queue

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"

	"github.com/slipway/slipway/yard/db"
)

// DefaultPollInterval is how often a blocked dequeuer re-claims without a
// wakeup. It bounds how long an expired dispatch token sits unnoticed.
const DefaultPollInterval = 3 * time.Second

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Queue

// Queue hands queued builds to workers, at least once each. Ack and Nack
// never fail the caller: an unacknowledged claim is redelivered after the
// visibility timeout, so every error here is survivable and only logged.
type Queue interface {
	// DequeueBlocking claims the oldest visible queued build, blocking
	// until one exists. It returns the claimed build with its dispatch
	// token, or ctx's error.
	DequeueBlocking(ctx context.Context, workerName string) (db.Build, string, error)

	Ack(logger lager.Logger, buildID int, token string)
	Nack(logger lager.Logger, buildID int, token string, requeueAfter time.Duration)
}

type queue struct {
	builds       db.BuildQueue
	bus          db.NotificationsBus
	clock        clock.Clock
	pollInterval time.Duration
}

func NewQueue(builds db.BuildQueue, bus db.NotificationsBus, clk clock.Clock, pollInterval time.Duration) Queue {
	return &queue{
		builds:       builds,
		bus:          bus,
		clock:        clk,
		pollInterval: pollInterval,
	}
}

func (q *queue) DequeueBlocking(ctx context.Context, workerName string) (db.Build, string, error) {
	logger := lagerctx.FromContext(ctx).Session("dequeue", lager.Data{"worker": workerName})

	wakeups, err := q.bus.Listen(db.BuildEnqueuedChannel)
	if err != nil {
		return nil, "", fmt.Errorf("listen for enqueued builds: %w", err)
	}
	defer q.bus.Unlisten(db.BuildEnqueuedChannel, wakeups)

	ticker := q.clock.NewTicker(q.pollInterval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		build, token, claimed, err := q.builds.Claim(logger, workerName)
		if err != nil {
			// The store will come back; claiming again on the next
			// tick costs nothing.
			logger.Error("failed-to-claim", err)
		} else if claimed {
			return build, token, nil
		}

		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-wakeups:
		case <-ticker.C():
		}
	}
}

// Ack releases the claim once the build has been fully handled. Losing the
// token to a visibility expiry is harmless: whoever claims the redelivery
// finds the build no longer queued and walks away.
func (q *queue) Ack(logger lager.Logger, buildID int, token string) {
	acked, err := q.builds.Ack(buildID, token)
	if err != nil {
		logger.Error("failed-to-ack", err, lager.Data{"build": buildID})
		return
	}

	if !acked {
		logger.Debug("ack-lost-claim", lager.Data{"build": buildID})
	}
}

// Nack hands a claimed-but-unstarted build back to the queue, visible again
// after requeueAfter.
func (q *queue) Nack(logger lager.Logger, buildID int, token string, requeueAfter time.Duration) {
	nacked, err := q.builds.Nack(buildID, token, requeueAfter)
	if err != nil {
		logger.Error("failed-to-nack", err, lager.Data{"build": buildID})
		return
	}

	if !nacked {
		logger.Debug("nack-lost-claim", lager.Data{"build": buildID})
	}
}
