package yard_test

import (
	"github.com/slipway/slipway/yard"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildStatus", func() {
	Describe("Terminal", func() {
		It("reports success, failed, cancelled and timed_out as terminal", func() {
			Expect(yard.StatusSuccess.Terminal()).To(BeTrue())
			Expect(yard.StatusFailed.Terminal()).To(BeTrue())
			Expect(yard.StatusCancelled.Terminal()).To(BeTrue())
			Expect(yard.StatusTimedOut.Terminal()).To(BeTrue())
		})

		It("reports queued and running as non-terminal", func() {
			Expect(yard.StatusQueued.Terminal()).To(BeFalse())
			Expect(yard.StatusRunning.Terminal()).To(BeFalse())
		})
	})

	Describe("ValidTransition", func() {
		It("permits the documented transitions", func() {
			Expect(yard.ValidTransition(yard.StatusQueued, yard.StatusRunning)).To(BeTrue())
			Expect(yard.ValidTransition(yard.StatusQueued, yard.StatusCancelled)).To(BeTrue())
			Expect(yard.ValidTransition(yard.StatusRunning, yard.StatusSuccess)).To(BeTrue())
			Expect(yard.ValidTransition(yard.StatusRunning, yard.StatusFailed)).To(BeTrue())
			Expect(yard.ValidTransition(yard.StatusRunning, yard.StatusCancelled)).To(BeTrue())
			Expect(yard.ValidTransition(yard.StatusRunning, yard.StatusTimedOut)).To(BeTrue())
		})

		It("rejects skipping the running state", func() {
			Expect(yard.ValidTransition(yard.StatusQueued, yard.StatusSuccess)).To(BeFalse())
			Expect(yard.ValidTransition(yard.StatusQueued, yard.StatusFailed)).To(BeFalse())
			Expect(yard.ValidTransition(yard.StatusQueued, yard.StatusTimedOut)).To(BeFalse())
		})

		It("rejects every transition out of a terminal state", func() {
			for _, from := range []yard.BuildStatus{
				yard.StatusSuccess,
				yard.StatusFailed,
				yard.StatusCancelled,
				yard.StatusTimedOut,
			} {
				for _, to := range yard.BuildStatuses {
					Expect(yard.ValidTransition(from, to)).To(BeFalse(),
						"expected %s -> %s to be rejected", from, to)
				}
			}
		})

		It("rejects self transitions", func() {
			for _, status := range yard.BuildStatuses {
				Expect(yard.ValidTransition(status, status)).To(BeFalse())
			}
		})
	})
})

var _ = Describe("TriggerKind", func() {
	It("recognises the four trigger kinds", func() {
		Expect(yard.KnownTrigger(yard.TriggerPush)).To(BeTrue())
		Expect(yard.KnownTrigger(yard.TriggerPullRequest)).To(BeTrue())
		Expect(yard.KnownTrigger(yard.TriggerManual)).To(BeTrue())
		Expect(yard.KnownTrigger(yard.TriggerRetry)).To(BeTrue())
	})

	It("rejects anything else", func() {
		Expect(yard.KnownTrigger("cron")).To(BeFalse())
		Expect(yard.KnownTrigger("")).To(BeFalse())
	})
})
