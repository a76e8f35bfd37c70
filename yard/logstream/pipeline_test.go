package logstream_test

import (
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/metric"
)

var _ = Describe("Pipeline", func() {
	var (
		logger    *lagertest.TestLogger
		fakeClock *fakeclock.FakeClock
		fakeBuild *dbfakes.FakeBuild
		config    logstream.Config
		hub       *logstream.Hub

		now time.Time
	)

	emptySource := func() *dbfakes.FakeEventSource {
		source := new(dbfakes.FakeEventSource)
		source.NextReturns(yard.LogEvent{}, db.ErrEndOfBuildEventStream)
		return source
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("pipeline-test")
		now = time.Now()
		fakeClock = fakeclock.NewFakeClock(now)

		fakeBuild = new(dbfakes.FakeBuild)
		fakeBuild.IDReturns(42)
		fakeBuild.EventsStub = func(int) (db.EventSource, error) {
			return emptySource(), nil
		}

		seq := 0
		fakeBuild.SaveEventStub = func(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) (yard.LogEvent, error) {
			seq++
			return yard.LogEvent{
				BuildID:  42,
				Sequence: seq,
				Kind:     kind,
				StepName: step,
				Channel:  channel,
				Message:  message,
				Time:     at.Unix(),
			}, nil
		}

		config = logstream.NewConfig()
		config.PersistRetryFor = 50 * time.Millisecond

		hub = logstream.NewHub(logger, config, fakeClock)

		metric.Metrics.LogEntriesPersisted.Delta()
		metric.Metrics.LiveLogDrops.Delta()
	})

	It("persists each entry in order and publishes it with its sequence", func() {
		sub := hub.Subscribe(fakeBuild, 0)
		defer sub.Close()

		pipeline := logstream.NewPipeline(logger, fakeBuild, hub, config)
		pipeline.Append(yard.EventStepStarted, "compile", "", "compile", now)
		pipeline.Append(yard.EventOutput, "compile", yard.ChannelStdout, "go build ./...", now)

		By("writing to the store with what was appended")
		var first yard.LogEvent
		Eventually(sub.Events()).Should(Receive(&first))
		Expect(first.Sequence).To(Equal(1))
		Expect(first.Kind).To(Equal(yard.EventStepStarted))
		Expect(first.StepName).To(Equal("compile"))

		kind, step, channel, message, at := fakeBuild.SaveEventArgsForCall(1)
		Expect(kind).To(Equal(yard.EventOutput))
		Expect(step).To(Equal("compile"))
		Expect(channel).To(Equal(yard.ChannelStdout))
		Expect(message).To(Equal("go build ./..."))
		Expect(at).To(BeTemporally("==", now))

		var second yard.LogEvent
		Eventually(sub.Events()).Should(Receive(&second))
		Expect(second.Sequence).To(Equal(2))

		By("completing the stream on Close")
		pipeline.Close()
		Eventually(sub.Events()).Should(BeClosed())

		Expect(metric.Metrics.LogEntriesPersisted.Delta()).To(Equal(float64(2)))
	})

	It("retries a failed persist and publishes only once it lands", func() {
		attempts := 0
		seq := 0
		fakeBuild.SaveEventStub = func(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) (yard.LogEvent, error) {
			attempts++
			if attempts == 1 {
				return yard.LogEvent{}, errors.New("connection reset by peer")
			}
			seq++
			return yard.LogEvent{BuildID: 42, Sequence: seq, Kind: kind, Message: message}, nil
		}

		config.PersistRetryFor = 5 * time.Second

		sub := hub.Subscribe(fakeBuild, 0)
		defer sub.Close()

		pipeline := logstream.NewPipeline(logger, fakeBuild, hub, config)
		defer pipeline.Close()

		pipeline.Append(yard.EventOutput, "", yard.ChannelStdout, "flaky line", now)

		var event yard.LogEvent
		Eventually(sub.Events()).WithTimeout(3 * time.Second).Should(Receive(&event))
		Expect(event.Sequence).To(Equal(1))
		Expect(event.Message).To(Equal("flaky line"))
		Expect(fakeBuild.SaveEventCallCount()).To(BeNumerically(">=", 2))
	})

	It("surrenders an entry the store keeps rejecting and carries on", func() {
		seq := 0
		fakeBuild.SaveEventStub = func(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) (yard.LogEvent, error) {
			if message == "poison" {
				return yard.LogEvent{}, errors.New("value too long for column")
			}
			seq++
			return yard.LogEvent{BuildID: 42, Sequence: seq, Kind: kind, Message: message}, nil
		}

		sub := hub.Subscribe(fakeBuild, 0)
		defer sub.Close()

		pipeline := logstream.NewPipeline(logger, fakeBuild, hub, config)
		pipeline.Append(yard.EventOutput, "", yard.ChannelStdout, "poison", now)
		pipeline.Append(yard.EventOutput, "", yard.ChannelStdout, "healthy", now)

		By("delivering the healthy line and never the surrendered one")
		var event yard.LogEvent
		Eventually(sub.Events()).Should(Receive(&event))
		Expect(event.Message).To(Equal("healthy"))

		Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-persist-log-entry"))
		Expect(metric.Metrics.LogEntriesPersisted.Delta()).To(Equal(float64(1)))

		pipeline.Close()
		Eventually(sub.Events()).Should(BeClosed())
	})

	It("drains everything appended before Close returns", func() {
		sub := hub.Subscribe(fakeBuild, 0)
		defer sub.Close()

		pipeline := logstream.NewPipeline(logger, fakeBuild, hub, config)
		for i := 1; i <= 100; i++ {
			pipeline.Append(yard.EventOutput, "", yard.ChannelStdout, fmt.Sprintf("line %d", i), now)
		}

		pipeline.Close()
		Expect(fakeBuild.SaveEventCallCount()).To(Equal(100))

		By("letting the subscriber read the full stream before it ends")
		count := 0
		for event := range sub.Events() {
			count++
			Expect(event.Sequence).To(Equal(count))
		}
		Expect(count).To(Equal(100))
	})

	It("drops appends after Close", func() {
		pipeline := logstream.NewPipeline(logger, fakeBuild, hub, config)
		pipeline.Close()

		pipeline.Append(yard.EventOutput, "", yard.ChannelStdout, "too late", now)

		Consistently(fakeBuild.SaveEventCallCount).Should(Equal(0))
	})
})
