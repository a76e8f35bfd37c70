package queue_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagerctx"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/queue"
)

var _ = Describe("Queue", func() {
	var (
		logger    *lagertest.TestLogger
		fakeClock *fakeclock.FakeClock

		fakeBuilds *dbfakes.FakeBuildQueue
		fakeBus    *dbfakes.FakeNotificationsBus
		wakeups    chan string

		q queue.Queue
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("queue-test")
		fakeClock = fakeclock.NewFakeClock(time.Now())

		fakeBuilds = new(dbfakes.FakeBuildQueue)

		wakeups = make(chan string, 16)
		fakeBus = new(dbfakes.FakeNotificationsBus)
		fakeBus.ListenReturns(wakeups, nil)

		q = queue.NewQueue(fakeBuilds, fakeBus, fakeClock, queue.DefaultPollInterval)
	})

	Describe("DequeueBlocking", func() {
		var (
			ctx    context.Context
			cancel context.CancelFunc

			fakeBuild *dbfakes.FakeBuild
		)

		BeforeEach(func() {
			ctx, cancel = context.WithCancel(lagerctx.NewContext(context.Background(), logger))
			DeferCleanup(func() { cancel() })

			fakeBuild = new(dbfakes.FakeBuild)
			fakeBuild.IDReturns(41)
		})

		dequeue := func() (chan db.Build, chan string, chan error) {
			builds := make(chan db.Build, 1)
			tokens := make(chan string, 1)
			errs := make(chan error, 1)

			go func() {
				defer GinkgoRecover()
				build, token, err := q.DequeueBlocking(ctx, "worker-1")
				builds <- build
				tokens <- token
				errs <- err
			}()

			return builds, tokens, errs
		}

		It("returns immediately when a build is already claimable", func() {
			fakeBuilds.ClaimReturns(fakeBuild, "token-1", true, nil)

			build, token, err := q.DequeueBlocking(ctx, "worker-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(build.ID()).To(Equal(41))
			Expect(token).To(Equal("token-1"))

			_, workerName := fakeBuilds.ClaimArgsForCall(0)
			Expect(workerName).To(Equal("worker-1"))

			By("releasing the notification sink")
			Expect(fakeBus.UnlistenCallCount()).To(Equal(1))
			channel, sink := fakeBus.UnlistenArgsForCall(0)
			Expect(channel).To(Equal(db.BuildEnqueuedChannel))
			Expect(sink).To(Equal(wakeups))
		})

		It("wakes on an enqueue notification", func() {
			fakeBuilds.ClaimReturns(fakeBuild, "token-1", true, nil)
			fakeBuilds.ClaimReturnsOnCall(0, nil, "", false, nil)

			builds, tokens, errs := dequeue()

			Eventually(fakeBuilds.ClaimCallCount).Should(Equal(1))
			Consistently(builds).ShouldNot(Receive())

			wakeups <- "41"

			Eventually(builds).Should(Receive())
			Expect(<-tokens).To(Equal("token-1"))
			Expect(<-errs).To(BeNil())
			Expect(fakeBuilds.ClaimCallCount()).To(Equal(2))
		})

		It("falls back to the poll tick when no notification arrives", func() {
			fakeBuilds.ClaimReturns(fakeBuild, "token-1", true, nil)
			fakeBuilds.ClaimReturnsOnCall(0, nil, "", false, nil)

			builds, tokens, errs := dequeue()

			Eventually(fakeBuilds.ClaimCallCount).Should(Equal(1))

			fakeClock.WaitForWatcherAndIncrement(queue.DefaultPollInterval)

			Eventually(builds).Should(Receive())
			Expect(<-tokens).To(Equal("token-1"))
			Expect(<-errs).To(BeNil())
		})

		It("keeps claiming after a claim error", func() {
			fakeBuilds.ClaimReturns(fakeBuild, "token-1", true, nil)
			fakeBuilds.ClaimReturnsOnCall(0, nil, "", false, errors.New("connection reset"))

			builds, _, errs := dequeue()

			Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-claim"))

			wakeups <- "41"

			Eventually(builds).Should(Receive())
			Expect(<-errs).To(BeNil())
		})

		It("returns the context error when cancelled while blocked", func() {
			fakeBuilds.ClaimReturns(nil, "", false, nil)

			_, _, errs := dequeue()

			Eventually(fakeBuilds.ClaimCallCount).Should(Equal(1))

			cancel()

			Eventually(errs).Should(Receive(MatchError(context.Canceled)))
			Expect(fakeBus.UnlistenCallCount()).To(Equal(1))
		})

		It("does not claim at all when the context is already cancelled", func() {
			cancel()

			_, _, err := q.DequeueBlocking(ctx, "worker-1")
			Expect(err).To(MatchError(context.Canceled))
			Expect(fakeBuilds.ClaimCallCount()).To(BeZero())
		})

		It("fails when the notification channel cannot be listened on", func() {
			fakeBus.ListenReturns(nil, errors.New("unknown notification channel: build_enqueued"))

			_, _, err := q.DequeueBlocking(ctx, "worker-1")
			Expect(err).To(MatchError(ContainSubstring("listen for enqueued builds")))
		})
	})

	Describe("Ack", func() {
		It("releases the dispatch token", func() {
			fakeBuilds.AckReturns(true, nil)

			q.Ack(logger, 41, "token-1")

			Expect(fakeBuilds.AckCallCount()).To(Equal(1))
			buildID, token := fakeBuilds.AckArgsForCall(0)
			Expect(buildID).To(Equal(41))
			Expect(token).To(Equal("token-1"))
		})

		It("notes a claim lost to visibility expiry", func() {
			fakeBuilds.AckReturns(false, nil)

			q.Ack(logger, 41, "token-1")

			Expect(logger.Buffer()).To(gbytes.Say("ack-lost-claim"))
		})

		It("logs and carries on when the store is unreachable", func() {
			fakeBuilds.AckReturns(false, errors.New("connection reset"))

			q.Ack(logger, 41, "token-1")

			Expect(logger.Buffer()).To(gbytes.Say("failed-to-ack"))
		})
	})

	Describe("Nack", func() {
		It("returns the build to the queue with a delay", func() {
			fakeBuilds.NackReturns(true, nil)

			q.Nack(logger, 41, "token-1", 30*time.Second)

			Expect(fakeBuilds.NackCallCount()).To(Equal(1))
			buildID, token, requeueAfter := fakeBuilds.NackArgsForCall(0)
			Expect(buildID).To(Equal(41))
			Expect(token).To(Equal("token-1"))
			Expect(requeueAfter).To(Equal(30 * time.Second))
		})

		It("logs and carries on when the store is unreachable", func() {
			fakeBuilds.NackReturns(false, errors.New("connection reset"))

			q.Nack(logger, 41, "token-1", 0)

			Expect(logger.Buffer()).To(gbytes.Say("failed-to-nack"))
		})
	})
})
