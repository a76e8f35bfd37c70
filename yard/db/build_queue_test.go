package db_test

import (
	"time"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildQueue", func() {
	var (
		project db.Project
		queue   db.BuildQueue
	)

	enqueue := func(commit string) db.Build {
		build, err := buildFactory.CreateBuild(project, yard.Trigger{
			Commit: commit,
			Branch: "main",
			Kind:   yard.TriggerPush,
		})
		Expect(err).ToNot(HaveOccurred())
		return build
	}

	BeforeEach(func() {
		var err error
		project, err = projectFactory.UpsertProject(yard.Project{
			Name:     "acme/anvil",
			CloneURL: "https://git.example.com/acme/anvil.git",
		})
		Expect(err).ToNot(HaveOccurred())

		queue = db.NewBuildQueue(dbConn, time.Minute)
	})

	It("claims in enqueue order", func() {
		first := enqueue("commit-1")
		second := enqueue("commit-2")

		claimed, _, found, err := queue.Claim(logger, "worker-0")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(claimed.ID()).To(Equal(first.ID()))

		claimed, _, found, err = queue.Claim(logger, "worker-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(claimed.ID()).To(Equal(second.ID()))
	})

	It("reports an empty queue without error", func() {
		_, _, found, err := queue.Claim(logger, "worker-0")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("hides a claimed build until the visibility timeout lapses", func() {
		enqueue("commit-1")

		_, _, found, err := queue.Claim(logger, "worker-0")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())

		_, _, found, err = queue.Claim(logger, "worker-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("redelivers an unacked claim after expiry", func() {
		build := enqueue("commit-1")

		impatient := db.NewBuildQueue(dbConn, 0)

		_, firstToken, found, err := impatient.Claim(logger, "worker-0")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())

		time.Sleep(10 * time.Millisecond)

		reclaimed, secondToken, found, err := impatient.Claim(logger, "worker-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(reclaimed.ID()).To(Equal(build.ID()))
		Expect(secondToken).ToNot(Equal(firstToken))
		Expect(reclaimed.DispatchCount()).To(Equal(2))

		// the stale token can no longer acknowledge anything
		acked, err := impatient.Ack(build.ID(), firstToken)
		Expect(err).ToNot(HaveOccurred())
		Expect(acked).To(BeFalse())
	})

	Describe("Ack", func() {
		It("releases the token", func() {
			build := enqueue("commit-1")

			_, token, found, err := queue.Claim(logger, "worker-0")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())

			acked, err := queue.Ack(build.ID(), token)
			Expect(err).ToNot(HaveOccurred())
			Expect(acked).To(BeTrue())

			ackedAgain, err := queue.Ack(build.ID(), token)
			Expect(err).ToNot(HaveOccurred())
			Expect(ackedAgain).To(BeFalse())
		})
	})

	Describe("Nack", func() {
		It("returns the build to the queue after the delay", func() {
			build := enqueue("commit-1")

			claimed, token, found, err := queue.Claim(logger, "worker-0")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())

			nacked, err := queue.Nack(claimed.ID(), token, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(nacked).To(BeTrue())

			time.Sleep(10 * time.Millisecond)

			reclaimed, _, found, err := queue.Claim(logger, "worker-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(reclaimed.ID()).To(Equal(build.ID()))
		})

		It("keeps a delayed build invisible until its time", func() {
			build := enqueue("commit-1")

			_, token, found, err := queue.Claim(logger, "worker-0")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())

			nacked, err := queue.Nack(build.ID(), token, time.Hour)
			Expect(err).ToNot(HaveOccurred())
			Expect(nacked).To(BeTrue())

			_, _, found, err = queue.Claim(logger, "worker-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("refuses to nack a running build", func() {
			build := enqueue("commit-1")

			claimed, token, found, err := queue.Claim(logger, "worker-0")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())

			started, err := claimed.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			nacked, err := queue.Nack(build.ID(), token, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(nacked).To(BeFalse())
		})
	})

	It("never claims cancelled builds", func() {
		build := enqueue("commit-1")

		cancelled, err := build.CancelQueued()
		Expect(err).ToNot(HaveOccurred())
		Expect(cancelled).To(BeTrue())

		_, _, found, err := queue.Claim(logger, "worker-0")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeFalse())
	})
})
