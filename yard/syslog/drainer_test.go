package syslog_test

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/syslog"
)

var _ = Describe("Drainer", func() {
	var (
		ctx       context.Context
		logger    *lagertest.TestLogger
		fakeDrain *dbfakes.FakeSyslogDrain
		drainer   *syslog.Drainer

		listener net.Listener
		lines    chan string
	)

	entry := func(buildID, seq int, kind yard.EventKind, message string) yard.LogEvent {
		return yard.LogEvent{
			BuildID:  buildID,
			Sequence: seq,
			Kind:     kind,
			Message:  message,
			Time:     1700000000,
		}
	}

	sourceFor := func(events ...yard.LogEvent) *dbfakes.FakeEventSource {
		source := new(dbfakes.FakeEventSource)
		served := 0
		source.NextStub = func() (yard.LogEvent, error) {
			if served >= len(events) {
				return yard.LogEvent{}, db.ErrEndOfBuildEventStream
			}
			event := events[served]
			served++
			return event, nil
		}
		return source
	}

	buildWith := func(id int, project string, source *dbfakes.FakeEventSource) *dbfakes.FakeBuild {
		build := new(dbfakes.FakeBuild)
		build.IDReturns(id)
		build.ProjectNameReturns(project)
		build.EventsReturns(source, nil)
		return build
	}

	collect := func(n int) []string {
		collected := make([]string, 0, n)
		for i := 0; i < n; i++ {
			var line string
			Eventually(lines).Should(Receive(&line))
			collected = append(collected, line)
		}
		return collected
	}

	BeforeEach(func() {
		ctx = context.Background()
		logger = lagertest.NewTestLogger("syslog-test")
		fakeDrain = new(dbfakes.FakeSyslogDrain)

		var err error
		listener, err = net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())

		lines = make(chan string, 100)
		sink := lines
		go func(l net.Listener) {
			for {
				conn, err := l.Accept()
				if err != nil {
					return
				}
				go func(c net.Conn) {
					defer c.Close()
					scanner := bufio.NewScanner(c)
					for scanner.Scan() {
						sink <- scanner.Text()
					}
				}(conn)
			}
		}(listener)

		drainer = syslog.NewDrainer(logger, syslog.Config{
			Hostname:  "ci-host",
			Transport: "tcp",
			Address:   listener.Addr().String(),
		}, fakeDrain)

		metric.Metrics.LogEntriesDrained.Delta()
	})

	AfterEach(func() {
		listener.Close()
	})

	It("forwards every entry of each finished build, oldest build first", func() {
		widgets := buildWith(40, "slipway/widgets", sourceFor(
			entry(40, 1, yard.EventInfo, "build queued"),
			entry(40, 2, yard.EventOutput, "compiling"),
		))
		api := buildWith(41, "slipway/api", sourceFor(
			entry(41, 1, yard.EventInfo, "build queued"),
		))
		fakeDrain.UndrainedBuildsReturns([]db.Build{widgets, api}, nil)

		Expect(drainer.Run(ctx)).To(Succeed())

		forwarded := collect(3)
		Expect(forwarded[0]).To(ContainSubstring("slipway/widgets/40"))
		Expect(forwarded[0]).To(ContainSubstring("build queued"))
		Expect(forwarded[1]).To(ContainSubstring("compiling"))
		Expect(forwarded[2]).To(ContainSubstring("slipway/api/41"))

		Expect(widgets.EventsCallCount()).To(Equal(1))
		Expect(widgets.EventsArgsForCall(0)).To(Equal(0))

		Expect(fakeDrain.MarkDrainedCallCount()).To(Equal(2))
		Expect(fakeDrain.MarkDrainedArgsForCall(0)).To(Equal(40))
		Expect(fakeDrain.MarkDrainedArgsForCall(1)).To(Equal(41))

		Expect(metric.Metrics.LogEntriesDrained.Delta()).To(Equal(float64(3)))
	})

	It("emits RFC 5424 messages carrying the entry's hostname, timestamp and sequence", func() {
		build := buildWith(40, "slipway/widgets", sourceFor(
			entry(40, 3, yard.EventOutput, "hello"),
		))
		fakeDrain.UndrainedBuildsReturns([]db.Build{build}, nil)

		Expect(drainer.Run(ctx)).To(Succeed())

		forwarded := collect(1)
		Expect(forwarded[0]).To(Equal("<14>1 2023-11-14T22:13:20Z ci-host slipway/widgets/40 - 3 - hello"))
	})

	It("maps entry kinds to syslog severities", func() {
		build := buildWith(40, "slipway/widgets", sourceFor(
			entry(40, 1, yard.EventOutput, "plain output"),
			entry(40, 2, yard.EventWarning, "be careful"),
			entry(40, 3, yard.EventError, "it broke"),
			entry(40, 4, yard.EventStepFailed, "compile failed"),
		))
		fakeDrain.UndrainedBuildsReturns([]db.Build{build}, nil)

		Expect(drainer.Run(ctx)).To(Succeed())

		forwarded := collect(4)
		Expect(forwarded[0]).To(HavePrefix("<14>"))
		Expect(forwarded[1]).To(HavePrefix("<12>"))
		Expect(forwarded[2]).To(HavePrefix("<11>"))
		Expect(forwarded[3]).To(HavePrefix("<11>"))
	})

	It("passes the batch limit through to the build listing", func() {
		fakeDrain.UndrainedBuildsReturns(nil, nil)

		Expect(drainer.Run(ctx)).To(Succeed())

		Expect(fakeDrain.UndrainedBuildsCallCount()).To(Equal(1))
		Expect(fakeDrain.UndrainedBuildsArgsForCall(0)).To(Equal(syslog.DefaultBatchLimit))
	})

	Context("with nothing to drain", func() {
		It("succeeds without marking anything", func() {
			fakeDrain.UndrainedBuildsReturns(nil, nil)

			Expect(drainer.Run(ctx)).To(Succeed())
			Expect(fakeDrain.MarkDrainedCallCount()).To(Equal(0))
		})
	})

	Context("when one build's entries cannot be opened", func() {
		It("skips it and still drains the rest", func() {
			broken := new(dbfakes.FakeBuild)
			broken.IDReturns(40)
			broken.ProjectNameReturns("slipway/widgets")
			broken.EventsReturns(nil, errors.New("connection refused"))

			healthy := buildWith(41, "slipway/api", sourceFor(
				entry(41, 1, yard.EventInfo, "build queued"),
			))
			fakeDrain.UndrainedBuildsReturns([]db.Build{broken, healthy}, nil)

			Expect(drainer.Run(ctx)).To(Succeed())
			Expect(logger.Buffer()).To(gbytes.Say("failed-to-drain-build"))

			Expect(fakeDrain.MarkDrainedCallCount()).To(Equal(1))
			Expect(fakeDrain.MarkDrainedArgsForCall(0)).To(Equal(41))
		})
	})

	Context("when reading entries fails midway", func() {
		It("leaves the build undrained so the next sweep re-sends it", func() {
			source := new(dbfakes.FakeEventSource)
			source.NextReturnsOnCall(0, entry(40, 1, yard.EventOutput, "partial"), nil)
			source.NextReturnsOnCall(1, yard.LogEvent{}, errors.New("connection reset by peer"))

			build := buildWith(40, "slipway/widgets", source)
			fakeDrain.UndrainedBuildsReturns([]db.Build{build}, nil)

			Expect(drainer.Run(ctx)).To(Succeed())

			Expect(fakeDrain.MarkDrainedCallCount()).To(Equal(0))
			Expect(metric.Metrics.LogEntriesDrained.Delta()).To(BeZero())
		})
	})

	Context("when the collector cannot be dialed", func() {
		It("returns the error and leaves every build undrained", func() {
			build := buildWith(40, "slipway/widgets", sourceFor())
			fakeDrain.UndrainedBuildsReturns([]db.Build{build}, nil)

			listener.Close()

			err := drainer.Run(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("dialing syslog collector"))
			Expect(fakeDrain.MarkDrainedCallCount()).To(Equal(0))
		})
	})

	Context("when listing undrained builds fails", func() {
		It("returns the error", func() {
			fakeDrain.UndrainedBuildsReturns(nil, errors.New("relation does not exist"))

			err := drainer.Run(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("listing undrained builds"))
		})
	})

	Context("when the sweep is cancelled", func() {
		It("stops between builds", func() {
			cancelled, cancel := context.WithCancel(context.Background())
			cancel()

			build := buildWith(40, "slipway/widgets", sourceFor())
			fakeDrain.UndrainedBuildsReturns([]db.Build{build}, nil)

			Expect(drainer.Run(cancelled)).To(MatchError(context.Canceled))
			Expect(fakeDrain.MarkDrainedCallCount()).To(Equal(0))
		})
	})

	Describe("Dial", func() {
		It("rejects transports it does not speak", func() {
			_, err := syslog.Dial("smtp", "collector.example.com:514", "")
			Expect(err).To(MatchError(fmt.Sprintf("unsupported syslog transport %q", "smtp")))
		})
	})
})
