// Package logstream carries build output from the executor to durable
// storage and to live subscribers. Every line is persisted, in order, with
// a dense per-build sequence number before any subscriber sees it; the
// store is authoritative and slow subscribers can never hold up a build.
package logstream

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v5"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/metric"
)

// Pipeline is the single log writer for one running build. Appends are
// queued without bound so producers never block; a writer goroutine
// persists each entry (which assigns its sequence number) and only then
// publishes it to the hub.
type Pipeline struct {
	logger   lager.Logger
	build    db.Build
	hub      *Hub
	retryFor time.Duration

	mu     sync.Mutex
	queue  []entry
	closed bool

	wake chan struct{}
	done chan struct{}
}

type entry struct {
	kind    yard.EventKind
	step    string
	channel yard.StreamChannel
	message string
	at      time.Time
}

// NewPipeline starts the writer goroutine for the build. The caller must
// Close it when the build finishes.
func NewPipeline(logger lager.Logger, build db.Build, hub *Hub, config Config) *Pipeline {
	p := &Pipeline{
		logger:   logger.Session("log-pipeline", lager.Data{"build": build.ID()}),
		build:    build,
		hub:      hub,
		retryFor: config.PersistRetryFor,

		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	go p.persistLoop()

	return p
}

// Append queues one entry. It never blocks. Appends after Close are
// dropped.
func (p *Pipeline) Append(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.queue = append(p.queue, entry{
		kind:    kind,
		step:    step,
		channel: channel,
		message: message,
		at:      at,
	})
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Close drains the queue to the store, completes the build's topic on the
// hub, and returns once both are done. Finalisation of the build row should
// happen after Close so the persisted log is complete by the time the build
// reads as terminal.
func (p *Pipeline) Close() {
	p.mu.Lock()
	already := p.closed
	p.closed = true
	p.mu.Unlock()

	if !already {
		select {
		case p.wake <- struct{}{}:
		default:
		}
	}

	<-p.done

	p.hub.Complete(p.build.ID())
}

func (p *Pipeline) persistLoop() {
	defer close(p.done)

	for {
		p.mu.Lock()
		batch := p.queue
		p.queue = nil
		closed := p.closed
		p.mu.Unlock()

		for _, e := range batch {
			p.persist(e)
		}

		if closed {
			p.mu.Lock()
			drained := len(p.queue) == 0
			p.mu.Unlock()
			if drained {
				return
			}
			continue
		}

		if len(batch) == 0 {
			<-p.wake
		}
	}
}

// persist writes one entry, retrying for a bounded window when the store
// misbehaves. A surrendered entry is never published: the store stays
// authoritative for what subscribers may see.
func (p *Pipeline) persist(e entry) {
	event, err := backoff.Retry(
		context.Background(),
		func() (yard.LogEvent, error) {
			return p.build.SaveEvent(e.kind, e.step, e.channel, e.message, e.at)
		},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(p.retryFor),
	)
	if err != nil {
		p.logger.Error("failed-to-persist-log-entry", err, lager.Data{
			"kind": string(e.kind),
			"step": e.step,
		})
		return
	}

	metric.Metrics.LogEntriesPersisted.Inc()
	metric.RecordLogPipelineLag(context.Background(), time.Since(e.at))

	p.hub.Publish(event)
}
