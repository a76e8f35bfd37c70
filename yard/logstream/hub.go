package logstream

import (
	"sync"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
)

// Hub fans persisted log entries out to live subscribers, one topic per
// build. Topics exist only while someone is subscribed; publishers write
// through regardless and subscribers of historical builds are served from
// the store alone.
type Hub struct {
	logger lager.Logger
	config Config
	clock  clock.Clock

	mu     sync.Mutex
	topics map[int]*topic
}

type topic struct {
	subs      map[*Subscription]struct{}
	completed bool
}

func NewHub(logger lager.Logger, config Config, clk clock.Clock) *Hub {
	return &Hub{
		logger: logger,
		config: config,
		clock:  clk,

		topics: map[int]*topic{},
	}
}

// Publish delivers one persisted entry to the build's subscribers. Entries
// must be published in sequence order; the pipeline's writer goroutine is
// the only live publisher for a running build.
func (h *Hub) Publish(event yard.LogEvent) {
	h.mu.Lock()
	t, ok := h.topics[event.BuildID]
	if !ok {
		h.mu.Unlock()
		return
	}

	subs := make([]*Subscription, 0, len(t.subs))
	for sub := range t.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.publish(event)
	}
}

// Complete marks the build's log stream finished. Attached subscribers
// drain what they have and close; later subscribers find the completion
// through the build row instead.
func (h *Hub) Complete(buildID int) {
	h.mu.Lock()
	t, ok := h.topics[buildID]
	if !ok {
		h.mu.Unlock()
		return
	}

	t.completed = true

	subs := make([]*Subscription, 0, len(t.subs))
	for sub := range t.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.complete()
	}
}

// Subscribe replays the build's persisted entries after the given sequence
// and then follows the live stream. The returned subscription must be
// closed by the caller.
func (h *Hub) Subscribe(build db.Build, afterSeq int) *Subscription {
	sub := newSubscription(
		h.logger.Session("subscription", lager.Data{"build": build.ID()}),
		h,
		build,
		afterSeq,
	)

	h.mu.Lock()
	t, ok := h.topics[build.ID()]
	if !ok {
		t = &topic{subs: map[*Subscription]struct{}{}}
		h.topics[build.ID()] = t
	}
	t.subs[sub] = struct{}{}
	completed := t.completed
	h.mu.Unlock()

	if completed {
		sub.complete()
	}

	go sub.run()

	return sub
}

func (h *Hub) unsubscribe(buildID int, sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.topics[buildID]
	if !ok {
		return
	}

	delete(t.subs, sub)
	if len(t.subs) == 0 {
		delete(h.topics, buildID)
	}
}
