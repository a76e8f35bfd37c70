package metric

import (
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	flags "github.com/jessevdk/go-flags"
)

// Metrics is the process-wide monitor. Hot paths increment its counters
// and gauges directly; PeriodicallyEmit drains them on an interval.
var Metrics = NewMonitor()

type Monitor struct {
	emitter          Emitter
	emitterFactories []EmitterFactory

	eventHost       string
	eventAttributes map[string]string
	emissions       chan eventEmission

	BuildsQueued  Gauge
	BuildsRunning Gauge

	BuildsStarted   Counter
	BuildsFinished  Counter
	BuildsSucceeded Counter
	BuildsFailed    Counter
	BuildsCancelled Counter
	BuildsTimedOut  Counter
	BuildsAbandoned Counter
	BuildsRetried   Counter

	ContainersProvisioned Counter
	FailedContainers      Counter
	ContainersReaped      Counter

	MirrorFetches       Counter
	FailedMirrorFetches Counter

	LogEntriesPersisted Counter
	LiveLogDrops        Counter
	LogEntriesDrained   Counter

	StatusReports       Counter
	FailedStatusReports Counter

	BuildsDeleted     Counter
	ArtifactsDeleted  Counter
	LogEntriesDeleted Counter
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

type eventEmission struct {
	event  Event
	logger lager.Logger
}

func (m *Monitor) RegisterEmitter(factory EmitterFactory) {
	m.emitterFactories = append(m.emitterFactories, factory)
}

func (m *Monitor) WireEmitters(group *flags.Group) {
	for _, factory := range m.emitterFactories {
		_, err := group.AddGroup(fmt.Sprintf("Metric Emitter (%s)", factory.Description()), "", factory)
		if err != nil {
			panic("could not add metric emitter flag group: " + err.Error())
		}
	}
}

// Initialize selects the configured emitter, if any, and starts the
// emission loop. With no emitter configured, events are dropped at the
// source and the in-process counters still work.
func (m *Monitor) Initialize(logger lager.Logger, host string, attributes map[string]string, bufferSize uint32) error {
	logger.Debug("metric-initialize", lager.Data{
		"host":        host,
		"attributes":  attributes,
		"buffer-size": bufferSize,
	})

	var configured []EmitterFactory
	for _, factory := range m.emitterFactories {
		if factory.IsConfigured() {
			configured = append(configured, factory)
		}
	}

	if len(configured) == 0 {
		return nil
	}

	if len(configured) > 1 {
		descriptions := make([]string, len(configured))
		for i, factory := range configured {
			descriptions[i] = factory.Description()
		}

		return fmt.Errorf("multiple metric emitters configured: %s", strings.Join(descriptions, ", "))
	}

	emitter, err := configured[0].NewEmitter(attributes)
	if err != nil {
		return err
	}

	m.emitter = emitter
	m.eventHost = host
	m.eventAttributes = attributes
	m.emissions = make(chan eventEmission, int(bufferSize))

	go m.emitLoop()

	return nil
}

func (m *Monitor) emit(logger lager.Logger, event Event) {
	if m.emitter == nil {
		return
	}

	event.Host = m.eventHost
	event.Time = time.Now()
	if event.State == "" {
		event.State = EventStateOK
	}

	mergedAttributes := map[string]string{}
	for k, v := range m.eventAttributes {
		mergedAttributes[k] = v
	}
	for k, v := range event.Attributes {
		mergedAttributes[k] = v
	}
	event.Attributes = mergedAttributes

	select {
	case m.emissions <- eventEmission{logger: logger, event: event}:
	default:
		logger.Error("event-buffer-full", nil, lager.Data{"event": event.Name})
	}
}

func (m *Monitor) emitLoop() {
	for emission := range m.emissions {
		emission.logger.Debug("emit", lager.Data{"event": emission.event.Name})

		m.emitter.Emit(emission.logger.Session("metric-emitter"), emission.event)
	}
}
