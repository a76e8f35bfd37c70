package logstream

import (
	"errors"
	"fmt"
	"sync"

	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/metric"
)

// Subscription is one consumer of a build's log stream. It delivers the
// persisted entries after the requested sequence, then live entries,
// each exactly once and in sequence order. The events channel closes when
// the build's stream ends, the subscriber closes, or the replay fails;
// Err distinguishes the last case.
//
// A subscriber that falls more than the high-water mark behind has its
// oldest undelivered live entries dropped and receives one synthetic
// warning per capping episode. The store is not affected.
type Subscription struct {
	logger   lager.Logger
	hub      *Hub
	build    db.Build
	afterSeq int

	events chan yard.LogEvent
	done   chan struct{}
	wake   chan struct{}

	closeOnce sync.Once

	mu        sync.Mutex
	pending   []yard.LogEvent
	completed bool
	capping   bool
	warn      bool
	err       error
}

func newSubscription(logger lager.Logger, hub *Hub, build db.Build, afterSeq int) *Subscription {
	return &Subscription{
		logger:   logger,
		hub:      hub,
		build:    build,
		afterSeq: afterSeq,

		events: make(chan yard.LogEvent, hub.config.LiveBuffer),
		done:   make(chan struct{}),
		wake:   make(chan struct{}, 1),
	}
}

// Events is the delivery channel. It closes when the stream ends.
func (s *Subscription) Events() <-chan yard.LogEvent {
	return s.events
}

// Err reports why the stream ended, if it ended abnormally. Only valid
// after the events channel has closed.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close detaches the subscriber. The events channel closes shortly after.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Subscription) run() {
	defer close(s.events)
	defer s.hub.unsubscribe(s.build.ID(), s)

	lastSeq, ok := s.replay(s.afterSeq)
	if !ok {
		return
	}

	s.follow(lastSeq)
}

// replay streams the persisted entries after the given sequence into the
// delivery channel at the consumer's pace. It reports the last delivered
// sequence and whether the stream should continue.
func (s *Subscription) replay(after int) (int, bool) {
	source, err := s.build.Events(after)
	if err != nil {
		s.fail(fmt.Errorf("open log replay: %w", err))
		return 0, false
	}
	defer source.Close()

	last := after
	for {
		event, err := source.Next()
		if err != nil {
			if errors.Is(err, db.ErrEndOfBuildEventStream) {
				return last, true
			}
			s.fail(fmt.Errorf("replay log entries: %w", err))
			return 0, false
		}

		select {
		case s.events <- event:
			last = event.Sequence
		case <-s.done:
			return 0, false
		}
	}
}

func (s *Subscription) follow(lastSeq int) {
	for {
		event, have, finished := s.next(lastSeq)

		if have {
			select {
			case s.events <- event:
				if event.Sequence > lastSeq {
					lastSeq = event.Sequence
				}
			case <-s.done:
				return
			}
			continue
		}

		if finished {
			return
		}

		timer := s.hub.clock.NewTimer(s.hub.config.StatusPollInterval)
		select {
		case <-s.wake:
			timer.Stop()
		case <-timer.C():
			timer.Stop()
			done, ok := s.checkBuild(lastSeq)
			if done || !ok {
				return
			}
		case <-s.done:
			timer.Stop()
			return
		}
	}
}

// next pops the next deliverable entry from the backlog. Entries at or
// below lastSeq were already delivered during replay and are skipped. A
// pending capping warning takes precedence so it lands before the
// survivors of the gap it describes.
func (s *Subscription) next(lastSeq int) (yard.LogEvent, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.warn {
		s.warn = false
		return yard.LogEvent{
			BuildID: s.build.ID(),
			Kind:    yard.EventWarning,
			Message: yard.CapWarningMessage,
			Time:    s.hub.clock.Now().Unix(),
		}, true, false
	}

	for len(s.pending) > 0 {
		event := s.pending[0]
		s.pending = s.pending[1:]
		if event.Sequence <= lastSeq {
			continue
		}
		return event, true, false
	}

	s.capping = false
	return yard.LogEvent{}, false, s.completed
}

// checkBuild handles completions this process never saw announced, e.g. a
// build finalised before the subscriber attached. When the build row reads
// terminal, the persisted log is complete, so one final catch-up from the
// store ends the stream.
func (s *Subscription) checkBuild(lastSeq int) (bool, bool) {
	found, err := s.build.Reload()
	if err != nil {
		s.fail(fmt.Errorf("reload build: %w", err))
		return false, false
	}

	if !found {
		return true, true
	}

	if !s.build.Status().Terminal() {
		return false, true
	}

	_, ok := s.replay(lastSeq)
	return true, ok
}

// publish appends one live entry to the backlog. It never blocks and never
// touches the delivery channel directly, so a slow consumer cannot stall
// the hub.
func (s *Subscription) publish(event yard.LogEvent) {
	s.mu.Lock()
	s.pending = append(s.pending, event)
	if len(s.pending) > s.hub.config.HighWaterMark {
		s.pending = s.pending[1:]
		metric.Metrics.LiveLogDrops.Inc()
		if !s.capping {
			s.capping = true
			s.warn = true
		}
	}
	s.mu.Unlock()

	s.notify()
}

func (s *Subscription) complete() {
	s.mu.Lock()
	s.completed = true
	s.mu.Unlock()

	s.notify()
}

func (s *Subscription) fail(err error) {
	s.logger.Error("log-stream-failed", err)

	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Subscription) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
