package gc_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3/lagerctx"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/db/lock"
	"github.com/slipway/slipway/yard/db/lock/lockfakes"
	"github.com/slipway/slipway/yard/gc"
	"github.com/slipway/slipway/yard/metric"
)

var _ = Describe("BuildLogCollector", func() {
	const window = 168 * time.Hour

	var (
		logger *lagertest.TestLogger
		ctx    context.Context

		fakeLifecycle   *dbfakes.FakeLogLifecycle
		fakeLockFactory *lockfakes.FakeLockFactory
		fakeLock        *lockfakes.FakeLock

		collector gc.Collector
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("gc-test")
		ctx = lagerctx.NewContext(context.Background(), logger)

		fakeLifecycle = new(dbfakes.FakeLogLifecycle)

		fakeLock = new(lockfakes.FakeLock)
		fakeLockFactory = new(lockfakes.FakeLockFactory)
		fakeLockFactory.AcquireReturns(fakeLock, true, nil)

		collector = gc.NewBuildLogCollector(fakeLifecycle, fakeLockFactory, window)

		metric.Metrics.LogEntriesDeleted.Delta()
	})

	It("is named for the log session it runs under", func() {
		Expect(collector.Name()).To(Equal("build-log-collector"))
	})

	Context("when two builds have outlived the log window", func() {
		BeforeEach(func() {
			fakeLifecycle.BuildsWithExpiredLogsReturns([]int{40, 41}, nil)
			fakeLifecycle.DeleteLogsReturnsOnCall(0, 12, nil)
			fakeLifecycle.DeleteLogsReturnsOnCall(1, 3, nil)
		})

		It("deletes each build's log entries under its retention lock", func() {
			Expect(collector.Run(ctx)).To(Succeed())

			Expect(fakeLifecycle.BuildsWithExpiredLogsCallCount()).To(Equal(1))
			Expect(fakeLifecycle.BuildsWithExpiredLogsArgsForCall(0)).To(Equal(window))

			Expect(fakeLifecycle.DeleteLogsCallCount()).To(Equal(2))
			Expect(fakeLifecycle.DeleteLogsArgsForCall(0)).To(Equal(40))
			Expect(fakeLifecycle.DeleteLogsArgsForCall(1)).To(Equal(41))

			_, lockID := fakeLockFactory.AcquireArgsForCall(0)
			Expect(lockID).To(Equal(lock.NewBuildRetentionLockID(40)))
			Expect(fakeLock.ReleaseCallCount()).To(Equal(2))

			Expect(metric.Metrics.LogEntriesDeleted.Delta()).To(Equal(float64(15)))
			Expect(logger.Buffer()).To(gbytes.Say("swept"))
		})

		Context("when another sweeper holds the first build's lock", func() {
			BeforeEach(func() {
				fakeLockFactory.AcquireReturnsOnCall(0, nil, false, nil)
			})

			It("skips it and sweeps the second", func() {
				Expect(collector.Run(ctx)).To(Succeed())

				Expect(fakeLifecycle.DeleteLogsCallCount()).To(Equal(1))
				Expect(fakeLifecycle.DeleteLogsArgsForCall(0)).To(Equal(41))
				Expect(logger.Buffer()).To(gbytes.Say("retention-lock-busy"))
			})
		})

		Context("when deleting the first build's logs fails", func() {
			BeforeEach(func() {
				fakeLifecycle.DeleteLogsReturnsOnCall(0, 0, errors.New("conn reset"))
			})

			It("reports the failure and sweeps the second anyway", func() {
				err := collector.Run(ctx)
				Expect(err).To(MatchError(ContainSubstring("delete logs of build 40")))

				Expect(fakeLifecycle.DeleteLogsCallCount()).To(Equal(2))
				Expect(metric.Metrics.LogEntriesDeleted.Delta()).To(Equal(float64(3)))
				Expect(fakeLock.ReleaseCallCount()).To(Equal(2))
			})
		})

		Context("when the sweep is cancelled between builds", func() {
			var cancel context.CancelFunc

			BeforeEach(func() {
				ctx, cancel = context.WithCancel(ctx)

				fakeLifecycle.DeleteLogsStub = func(int) (int64, error) {
					cancel()
					return 12, nil
				}
			})

			It("stops without touching the remaining builds", func() {
				Expect(collector.Run(ctx)).To(MatchError(context.Canceled))
				Expect(fakeLifecycle.DeleteLogsCallCount()).To(Equal(1))
			})
		})
	})

	Context("when no logs have expired", func() {
		It("does nothing", func() {
			Expect(collector.Run(ctx)).To(Succeed())
			Expect(fakeLockFactory.AcquireCallCount()).To(BeZero())
		})
	})

	Context("when expired builds cannot be enumerated", func() {
		BeforeEach(func() {
			fakeLifecycle.BuildsWithExpiredLogsReturns(nil, errors.New("conn reset"))
		})

		It("returns the error", func() {
			err := collector.Run(ctx)
			Expect(err).To(MatchError(ContainSubstring("enumerate builds with expired logs")))
		})
	})
})
