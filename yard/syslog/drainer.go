package syslog

import (
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/metric"
)

// DefaultBatchLimit bounds how many builds one sweep will forward. A burst
// of finished builds drains over several sweeps instead of holding one
// connection open indefinitely.
const DefaultBatchLimit = 100

// Config holds the collector endpoint. The command layer only constructs a
// Drainer when an address is configured.
type Config struct {
	Hostname   string
	Transport  string
	Address    string
	CACert     string
	BatchLimit int
}

// Drainer forwards the log entries of finished builds to the collector and
// marks each build drained once all of its entries went out. One bad build
// is skipped and retried on a later sweep; it never blocks the rest.
type Drainer struct {
	logger lager.Logger
	config Config
	drain  db.SyslogDrain
}

func NewDrainer(logger lager.Logger, config Config, drain db.SyslogDrain) *Drainer {
	if config.BatchLimit <= 0 {
		config.BatchLimit = DefaultBatchLimit
	}

	return &Drainer{
		logger: logger,
		config: config,
		drain:  drain,
	}
}

// Run performs one sweep: list terminal builds not yet drained, stream each
// build's entries to the collector oldest first, and mark them drained. The
// connection is dialed per sweep so a collector restart heals on the next
// interval without any state here.
func (d *Drainer) Run(ctx context.Context) error {
	logger := d.logger.Session("run")

	builds, err := d.drain.UndrainedBuilds(d.config.BatchLimit)
	if err != nil {
		logger.Error("failed-to-list-undrained-builds", err)
		return fmt.Errorf("listing undrained builds: %w", err)
	}

	if len(builds) == 0 {
		return nil
	}

	collector, err := Dial(d.config.Transport, d.config.Address, d.config.CACert)
	if err != nil {
		logger.Error("failed-to-dial-collector", err)
		return fmt.Errorf("dialing syslog collector: %w", err)
	}

	defer collector.Close()

	for _, build := range builds {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		sent, err := d.drainBuild(collector, build)
		if err != nil {
			logger.Error("failed-to-drain-build", err, lager.Data{"build": build.ID()})
			continue
		}

		metric.Metrics.LogEntriesDrained.IncDelta(sent)
		logger.Debug("drained", lager.Data{"build": build.ID(), "entries": sent})
	}

	return nil
}

func (d *Drainer) drainBuild(collector *Syslog, build db.Build) (int, error) {
	source, err := build.Events(0)
	if err != nil {
		return 0, fmt.Errorf("open log entries: %w", err)
	}

	defer source.Close()

	tag := fmt.Sprintf("%s/%d", build.ProjectName(), build.ID())

	sent := 0
	for {
		event, err := source.Next()
		if errors.Is(err, db.ErrEndOfBuildEventStream) {
			break
		}
		if err != nil {
			return sent, fmt.Errorf("read log entry: %w", err)
		}

		err = collector.Write(d.config.Hostname, tag, event)
		if err != nil {
			return sent, fmt.Errorf("forward log entry %d: %w", event.Sequence, err)
		}

		sent++
	}

	err = d.drain.MarkDrained(build.ID())
	if err != nil {
		return sent, fmt.Errorf("mark build drained: %w", err)
	}

	return sent, nil
}
