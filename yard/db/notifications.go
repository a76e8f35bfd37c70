package db

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jackc/pgx/v5"
)

const (
	// BuildEnqueuedChannel carries the id of a freshly enqueued build so
	// blocked dequeuers wake without waiting for their poll tick.
	BuildEnqueuedChannel = "build_enqueued"

	// BuildCancelChannel carries the id of a running build whose
	// cancellation was requested.
	BuildCancelChannel = "build_cancel"
)

//counterfeiter:generate . NotificationsBus

// NotificationsBus fans Postgres NOTIFY payloads out to in-process
// listeners. The set of LISTENed channels is fixed at construction; Go-side
// sinks come and go freely.
type NotificationsBus interface {
	Notify(channel, payload string) error
	Listen(channel string) (chan string, error)
	Unlisten(channel string, sink chan string) error
	Close() error
}

type notificationsBus struct {
	logger           lager.Logger
	connectionString string
	notifyDB         *sql.DB
	channels         []string

	mu    sync.Mutex
	sinks map[string][]chan string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotificationsBus(logger lager.Logger, connectionString string, notifyDB *sql.DB, channels ...string) NotificationsBus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &notificationsBus{
		logger:           logger,
		connectionString: connectionString,
		notifyDB:         notifyDB,
		channels:         channels,
		sinks:            make(map[string][]chan string),
		ctx:              ctx,
		cancel:           cancel,
		done:             make(chan struct{}),
	}

	go bus.run()

	return bus
}

func (bus *notificationsBus) Notify(channel, payload string) error {
	_, err := bus.notifyDB.Exec("SELECT pg_notify($1, $2)", channel, payload)
	if err != nil {
		return fmt.Errorf("notify %s: %w", channel, err)
	}

	return nil
}

func (bus *notificationsBus) Listen(channel string) (chan string, error) {
	if !slices.Contains(bus.channels, channel) {
		return nil, fmt.Errorf("unknown notification channel: %s", channel)
	}

	sink := make(chan string, 16)

	bus.mu.Lock()
	bus.sinks[channel] = append(bus.sinks[channel], sink)
	bus.mu.Unlock()

	return sink, nil
}

func (bus *notificationsBus) Unlisten(channel string, sink chan string) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	sinks := bus.sinks[channel]
	for i, s := range sinks {
		if s == sink {
			bus.sinks[channel] = append(sinks[:i], sinks[i+1:]...)
			close(sink)
			return nil
		}
	}

	return fmt.Errorf("sink is not listening on channel: %s", channel)
}

func (bus *notificationsBus) Close() error {
	bus.cancel()
	<-bus.done
	return nil
}

func (bus *notificationsBus) run() {
	defer close(bus.done)

	for {
		err := bus.listen(bus.ctx)
		if bus.ctx.Err() != nil {
			return
		}

		bus.logger.Error("listener-disconnected", err)

		select {
		case <-bus.ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

// listen holds a dedicated connection; LISTEN state is per session so all
// channels are re-subscribed after every reconnect.
func (bus *notificationsBus) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, bus.connectionString)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	defer conn.Close(context.Background())

	for _, channel := range bus.channels {
		_, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize())
		if err != nil {
			return fmt.Errorf("listen on %s: %w", channel, err)
		}
	}

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		bus.dispatch(notification.Channel, notification.Payload)
	}
}

// dispatch never blocks. A sink with a full buffer misses the wakeup and
// catches up on its next poll tick.
func (bus *notificationsBus) dispatch(channel, payload string) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	for _, sink := range bus.sinks[channel] {
		select {
		case sink <- payload:
		default:
		}
	}
}
