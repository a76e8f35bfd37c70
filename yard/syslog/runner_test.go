package syslog_test

import (
	"context"
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard/syslog"
	"github.com/slipway/slipway/yard/syslog/syslogfakes"
)

var _ = Describe("Runner", func() {
	var (
		logger    *lagertest.TestLogger
		fakeClock *fakeclock.FakeClock
		sweeper   *syslogfakes.FakeSweeper

		runner *syslog.Runner

		signals chan os.Signal
		exited  chan error
		stopped bool
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("syslog-test")
		fakeClock = fakeclock.NewFakeClock(time.Now())
		sweeper = new(syslogfakes.FakeSweeper)

		runner = syslog.NewRunner(logger, sweeper, fakeClock, syslog.DefaultDrainInterval)

		stopped = false
	})

	JustBeforeEach(func() {
		signals = make(chan os.Signal, 1)
		ready := make(chan struct{})
		exited = make(chan error, 1)

		go func() {
			defer GinkgoRecover()
			exited <- runner.Run(signals, ready)
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
		Eventually(sweeper.RunCallCount).Should(Equal(1))
		Consistently(sweeper.RunCallCount).Should(Equal(1))

		fakeClock.WaitForWatcherAndIncrement(syslog.DefaultDrainInterval)
		Eventually(sweeper.RunCallCount).Should(Equal(2))
	})

	Context("when a sweep fails", func() {
		BeforeEach(func() {
			sweeper.RunReturnsOnCall(0, errors.New("collector hung up"))
		})

		It("logs the failure and retries on the next tick", func() {
			Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-drain"))

			fakeClock.WaitForWatcherAndIncrement(syslog.DefaultDrainInterval)
			Eventually(sweeper.RunCallCount).Should(Equal(2))
		})
	})

	Context("when a signal arrives mid-sweep", func() {
		var sweeping chan struct{}

		BeforeEach(func() {
			sweeping = make(chan struct{})

			sweeper.RunStub = func(ctx context.Context) error {
				close(sweeping)
				<-ctx.Done()
				return ctx.Err()
			}
		})

		It("cancels the sweep and waits for it to wind down", func() {
			Eventually(sweeping).Should(BeClosed())

			Expect(drain()).To(Succeed())
			Expect(logger.Buffer()).To(gbytes.Say("stopping"))
			Expect(logger.Buffer()).NotTo(gbytes.Say("failed-to-drain"))
		})
	})

	It("stops on signal between sweeps", func() {
		Eventually(sweeper.RunCallCount).Should(Equal(1))

		Expect(drain()).To(Succeed())
		Expect(logger.Buffer()).To(gbytes.Say("stopping"))
	})
})
