package coordinator_test

import (
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/coordinator"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/report/reportfakes"
)

var _ = Describe("Reconciler", func() {
	var (
		logger    *lagertest.TestLogger
		now       time.Time
		fakeClock *fakeclock.FakeClock

		fakeLifecycle *dbfakes.FakeBuildLifecycle
		fakeReporter  *reportfakes.FakeReporter
		hub           *logstream.Hub

		abandonedBuild *dbfakes.FakeBuild
		retryBuild     *dbfakes.FakeBuild

		reconciler *coordinator.Reconciler
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("reconciler-test")
		now = time.Now()
		fakeClock = fakeclock.NewFakeClock(now)

		fakeLifecycle = new(dbfakes.FakeBuildLifecycle)
		fakeReporter = new(reportfakes.FakeReporter)
		hub = logstream.NewHub(logger, logstream.NewConfig(), fakeClock)

		abandonedBuild = new(dbfakes.FakeBuild)
		abandonedBuild.IDReturns(40)
		abandonedBuild.ProjectNameReturns("slipway/widgets")
		abandonedBuild.BranchReturns("main")
		abandonedBuild.StatusReturns(yard.StatusFailed)
		abandonedBuild.ErrorKindReturns(yard.ErrorKindAbandoned)
		abandonedBuild.ErrorMessageReturns("worker stopped responding; build abandoned")

		seq := 0
		abandonedBuild.SaveEventStub = func(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) (yard.LogEvent, error) {
			seq++
			return yard.LogEvent{
				BuildID:  40,
				Sequence: seq,
				Kind:     kind,
				StepName: step,
				Channel:  channel,
				Message:  message,
				Time:     at.Unix(),
			}, nil
		}

		retryBuild = new(dbfakes.FakeBuild)
		retryBuild.IDReturns(41)
		retryBuild.ParentIDReturns(40)
		retryBuild.StatusReturns(yard.StatusQueued)

		reconciler = coordinator.NewReconciler(
			logger,
			fakeLifecycle,
			hub,
			fakeReporter,
			fakeClock,
			coordinator.DefaultReconcileInterval,
			coordinator.DefaultInfraRetryDelay,
		)

		metric.Metrics.BuildsAbandoned.Delta()
		metric.Metrics.BuildsRetried.Delta()
		metric.Metrics.BuildsFinished.Delta()
		metric.Metrics.BuildsFailed.Delta()
	})

	Describe("Reconcile", func() {
		Context("when a worker stopped heartbeating mid-build", func() {
			BeforeEach(func() {
				fakeLifecycle.FailAbandonedReturns(
					[]db.Build{abandonedBuild},
					[]db.Build{retryBuild},
					nil,
				)
			})

			It("finalises the abandoned build and counts its retry", func() {
				count, err := reconciler.Reconcile(logger)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(2))

				By("writing the terminal log entry")
				Expect(abandonedBuild.SaveEventCallCount()).To(Equal(1))
				kind, step, _, message, at := abandonedBuild.SaveEventArgsForCall(0)
				Expect(kind).To(Equal(yard.EventError))
				Expect(step).To(BeEmpty())
				Expect(message).To(Equal("worker stopped responding; build abandoned"))
				Expect(at).To(Equal(now))

				By("reporting the terminal state")
				Expect(fakeReporter.BuildFinishedCallCount()).To(Equal(1))
				_, reported := fakeReporter.BuildFinishedArgsForCall(0)
				Expect(reported).To(Equal(abandonedBuild))

				By("counting the abandonment, the finish, and the retry")
				Expect(metric.Metrics.BuildsAbandoned.Delta()).To(Equal(float64(1)))
				Expect(metric.Metrics.BuildsFailed.Delta()).To(Equal(float64(1)))
				Expect(metric.Metrics.BuildsRetried.Delta()).To(Equal(float64(1)))

				By("leaving the fresh retry build untouched")
				Expect(retryBuild.SaveEventCallCount()).To(BeZero())

				Expect(logger.Buffer()).To(gbytes.Say("enqueued-abandon-retry"))
			})

			It("ends the abandoned build's live log stream", func() {
				source := new(dbfakes.FakeEventSource)
				source.NextReturns(yard.LogEvent{}, db.ErrEndOfBuildEventStream)
				abandonedBuild.EventsReturns(source, nil)

				sub := hub.Subscribe(abandonedBuild, 0)
				defer sub.Close()

				_, err := reconciler.Reconcile(logger)
				Expect(err).NotTo(HaveOccurred())

				var event yard.LogEvent
				Eventually(sub.Events()).Should(Receive(&event))
				Expect(event.Kind).To(Equal(yard.EventError))
				Expect(event.Message).To(Equal("worker stopped responding; build abandoned"))
				Eventually(sub.Events()).Should(BeClosed())
			})
		})

		It("enqueues the retries owed to infrastructure failures", func() {
			infraRetry := new(dbfakes.FakeBuild)
			infraRetry.IDReturns(42)
			infraRetry.ParentIDReturns(39)
			fakeLifecycle.RetryInfraFailedReturns([]db.Build{infraRetry}, nil)

			count, err := reconciler.Reconcile(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))

			_, delay := fakeLifecycle.RetryInfraFailedArgsForCall(0)
			Expect(delay).To(Equal(coordinator.DefaultInfraRetryDelay))

			Expect(metric.Metrics.BuildsRetried.Delta()).To(Equal(float64(1)))
			Expect(logger.Buffer()).To(gbytes.Say("enqueued-infra-retry"))
		})

		It("refreshes the queue depth gauges", func() {
			fakeLifecycle.QueueDepthsReturns(3, 2, nil)

			_, err := reconciler.Reconcile(logger)
			Expect(err).NotTo(HaveOccurred())

			// The first Max drains the high-water mark left by other specs.
			metric.Metrics.BuildsQueued.Max()
			metric.Metrics.BuildsRunning.Max()
			Expect(metric.Metrics.BuildsQueued.Max()).To(Equal(float64(3)))
			Expect(metric.Metrics.BuildsRunning.Max()).To(Equal(float64(2)))
		})

		It("reports nothing to do on a quiet sweep", func() {
			count, err := reconciler.Reconcile(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			Expect(fakeReporter.BuildFinishedCallCount()).To(BeZero())
			Expect(metric.Metrics.BuildsRetried.Delta()).To(BeZero())
		})

		It("surfaces abandoned-scan failures", func() {
			fakeLifecycle.FailAbandonedReturns(nil, nil, errors.New("scan broke"))

			_, err := reconciler.Reconcile(logger)
			Expect(err).To(MatchError(ContainSubstring("fail abandoned builds")))
		})

		It("surfaces infrastructure-retry failures", func() {
			fakeLifecycle.RetryInfraFailedReturns(nil, errors.New("scan broke"))

			_, err := reconciler.Reconcile(logger)
			Expect(err).To(MatchError(ContainSubstring("retry infrastructure failures")))
		})

		It("surfaces queue-depth failures", func() {
			fakeLifecycle.QueueDepthsReturns(0, 0, errors.New("scan broke"))

			_, err := reconciler.Reconcile(logger)
			Expect(err).To(MatchError(ContainSubstring("count queue depths")))
		})
	})

	Describe("Run", func() {
		var (
			signals chan os.Signal
			exited  chan error
			stopped bool
		)

		BeforeEach(func() {
			stopped = false
		})

		JustBeforeEach(func() {
			signals = make(chan os.Signal, 1)
			ready := make(chan struct{})
			exited = make(chan error, 1)

			go func() {
				defer GinkgoRecover()
				exited <- reconciler.Run(signals, ready)
			}()

			Eventually(ready).Should(BeClosed())
		})

		drain := func() error {
			signals <- os.Interrupt
			var err error
			Eventually(exited).Should(Receive(&err))
			stopped = true
			return err
		}

		AfterEach(func() {
			if !stopped {
				Expect(drain()).To(Succeed())
			}
		})

		It("sweeps at startup and then on the interval", func() {
			Eventually(fakeLifecycle.FailAbandonedCallCount).Should(Equal(1))
			Consistently(fakeLifecycle.FailAbandonedCallCount).Should(Equal(1))

			fakeClock.WaitForWatcherAndIncrement(coordinator.DefaultReconcileInterval)
			Eventually(fakeLifecycle.FailAbandonedCallCount).Should(Equal(2))
		})

		Context("when a sweep fails", func() {
			BeforeEach(func() {
				fakeLifecycle.FailAbandonedReturnsOnCall(0, nil, nil, errors.New("scan broke"))
			})

			It("logs the failure and keeps sweeping", func() {
				Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-reconcile"))

				fakeClock.WaitForWatcherAndIncrement(coordinator.DefaultReconcileInterval)
				Eventually(fakeLifecycle.FailAbandonedCallCount).Should(Equal(2))
			})
		})

		It("stops on signal", func() {
			Expect(drain()).To(Succeed())
			Expect(logger.Buffer()).To(gbytes.Say("stopping"))
		})
	})
})
