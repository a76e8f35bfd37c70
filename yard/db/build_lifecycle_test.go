package db_test

import (
	"time"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildLifecycle", func() {
	var project db.Project

	BeforeEach(func() {
		var err error
		project, err = projectFactory.UpsertProject(yard.Project{
			Name:     "acme/anvil",
			CloneURL: "https://git.example.com/acme/anvil.git",
		})
		Expect(err).ToNot(HaveOccurred())
	})

	// claim with zero visibility and start, leaving a running build whose
	// dispatch token is already expired, i.e. a dead worker.
	abandon := func() db.Build {
		build, err := buildFactory.CreateBuild(project, yard.Trigger{
			Commit: "deadbeef",
			Branch: "main",
			Kind:   yard.TriggerPush,
		})
		Expect(err).ToNot(HaveOccurred())

		queue := db.NewBuildQueue(dbConn, 0)
		claimed, _, found, err := queue.Claim(logger, "worker-0")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(claimed.ID()).To(Equal(build.ID()))

		started, err := claimed.Start()
		Expect(err).ToNot(HaveOccurred())
		Expect(started).To(BeTrue())

		time.Sleep(10 * time.Millisecond)
		return claimed
	}

	Describe("FailAbandoned", func() {
		It("finalises the build and enqueues one retry", func() {
			source := abandon()

			abandoned, retries, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())

			Expect(abandoned).To(HaveLen(1))
			Expect(abandoned[0].ID()).To(Equal(source.ID()))
			Expect(abandoned[0].Status()).To(Equal(yard.StatusFailed))
			Expect(abandoned[0].ErrorKind()).To(Equal(yard.ErrorKindAbandoned))

			Expect(retries).To(HaveLen(1))
			Expect(retries[0].ParentID()).To(Equal(source.ID()))
			Expect(retries[0].Status()).To(Equal(yard.StatusQueued))
			Expect(retries[0].TriggerKind()).To(Equal(yard.TriggerRetry))
			Expect(retries[0].AbandonRetry()).To(BeTrue())
		})

		It("does nothing when no build is abandoned", func() {
			abandoned, retries, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(abandoned).To(BeEmpty())
			Expect(retries).To(BeEmpty())
		})

		It("leaves healthy running builds alone", func() {
			build, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "deadbeef",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			queue := db.NewBuildQueue(dbConn, time.Hour)
			claimed, _, found, err := queue.Claim(logger, "worker-0")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())

			started, err := claimed.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			abandoned, _, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(abandoned).To(BeEmpty())

			reloaded, err := build.Reload()
			Expect(err).ToNot(HaveOccurred())
			Expect(reloaded).To(BeTrue())
			Expect(build.Status()).To(Equal(yard.StatusRunning))
		})

		It("never retries an abandoned retry", func() {
			abandon()

			_, retries, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(retries).To(HaveLen(1))

			// the retry child meets the same fate
			queue := db.NewBuildQueue(dbConn, 0)
			claimed, _, found, err := queue.Claim(logger, "worker-0")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(claimed.ID()).To(Equal(retries[0].ID()))

			started, err := claimed.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			time.Sleep(10 * time.Millisecond)

			abandoned, retriesAgain, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(abandoned).To(HaveLen(1))
			Expect(abandoned[0].ID()).To(Equal(retries[0].ID()))
			Expect(retriesAgain).To(BeEmpty())
		})

		It("is idempotent across sweeps", func() {
			abandon()

			_, retries, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(retries).To(HaveLen(1))

			abandoned, retries, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(abandoned).To(BeEmpty())
			Expect(retries).To(BeEmpty())
		})
	})

	Describe("RetryInfraFailed", func() {
		failInfra := func() db.Build {
			build, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "deadbeef",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			started, err := build.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			err = build.Finish(yard.StatusFailed, yard.ErrorKindInfrastructure, "image pull failed")
			Expect(err).ToNot(HaveOccurred())

			return build
		}

		It("enqueues exactly one retry per infrastructure failure", func() {
			source := failInfra()

			time.Sleep(10 * time.Millisecond)

			retries, err := buildLifecycle.RetryInfraFailed(logger, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(retries).To(HaveLen(1))
			Expect(retries[0].ParentID()).To(Equal(source.ID()))
			Expect(retries[0].InfraRetry()).To(BeTrue())

			retriesAgain, err := buildLifecycle.RetryInfraFailed(logger, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(retriesAgain).To(BeEmpty())
		})

		It("waits out the delay before retrying", func() {
			failInfra()

			retries, err := buildLifecycle.RetryInfraFailed(logger, time.Hour)
			Expect(err).ToNot(HaveOccurred())
			Expect(retries).To(BeEmpty())
		})

		It("ignores build failures and other kinds", func() {
			build, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "deadbeef",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			started, err := build.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			err = build.Finish(yard.StatusFailed, yard.ErrorKindBuild, "tests failed")
			Expect(err).ToNot(HaveOccurred())

			time.Sleep(10 * time.Millisecond)

			retries, err := buildLifecycle.RetryInfraFailed(logger, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(retries).To(BeEmpty())
		})
	})

	// create, start and finish a build, leaving a terminal row.
	finish := func(commit string, status yard.BuildStatus) db.Build {
		build, err := buildFactory.CreateBuild(project, yard.Trigger{
			Commit: commit,
			Branch: "main",
			Kind:   yard.TriggerPush,
		})
		Expect(err).ToNot(HaveOccurred())

		started, err := build.Start()
		Expect(err).ToNot(HaveOccurred())
		Expect(started).To(BeTrue())

		Expect(build.Finish(status, "", "")).To(Succeed())
		return build
	}

	Describe("DestroyableBuilds", func() {
		It("lists terminal builds past the window, oldest first", func() {
			first := finish("deadbeef", yard.StatusSuccess)
			second := finish("cafed00d", yard.StatusFailed)

			_, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "0ddba11",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			running, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "5ca1ab1e",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			started, err := running.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			time.Sleep(10 * time.Millisecond)

			ids, err := buildLifecycle.DestroyableBuilds(0, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids).To(Equal([]int{first.ID(), second.ID()}))
		})

		It("leaves builds inside the window alone", func() {
			finish("deadbeef", yard.StatusSuccess)

			time.Sleep(10 * time.Millisecond)

			ids, err := buildLifecycle.DestroyableBuilds(time.Hour, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})

		It("caps the batch", func() {
			finish("deadbeef", yard.StatusSuccess)
			finish("cafed00d", yard.StatusSuccess)
			finish("0ddba11", yard.StatusSuccess)

			time.Sleep(10 * time.Millisecond)

			ids, err := buildLifecycle.DestroyableBuilds(0, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids).To(HaveLen(2))
		})

		It("holds a retry parent back until its child is gone", func() {
			abandon()

			_, retries, err := buildLifecycle.FailAbandoned(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(retries).To(HaveLen(1))
			child := retries[0]

			queue := db.NewBuildQueue(dbConn, 0)
			claimed, _, found, err := queue.Claim(logger, "worker-0")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(claimed.ID()).To(Equal(child.ID()))

			started, err := claimed.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())
			Expect(claimed.Finish(yard.StatusSuccess, "", "")).To(Succeed())

			time.Sleep(10 * time.Millisecond)

			By("skipping the parent while the child references it")
			ids, err := buildLifecycle.DestroyableBuilds(0, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids).To(Equal([]int{child.ID()}))

			By("offering the parent once the child is destroyed")
			Expect(buildLifecycle.DestroyBuild(child.ID())).To(Succeed())

			ids, err = buildLifecycle.DestroyableBuilds(0, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids).To(Equal([]int{child.ParentID()}))
		})
	})

	Describe("DestroyBuild", func() {
		It("takes the build's logs, artifacts and staged notifications with it", func() {
			build, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "deadbeef",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			started, err := build.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			_, err = build.SaveEvent(yard.EventOutput, "compile", yard.ChannelStdout, "ok", time.Now())
			Expect(err).ToNot(HaveOccurred())

			_, err = build.SaveArtifact("out.tgz", "/var/lib/slipway/artifacts/1/out.tgz", 14, time.Now().Add(time.Hour))
			Expect(err).ToNot(HaveOccurred())

			outbox := db.NewNotificationOutbox(dbConn)
			Expect(build.Finish(yard.StatusFailed, yard.ErrorKindBuild, "tests failed")).To(Succeed())
			Expect(outbox.EnqueueNotification(build.ID(), "owner@example.com", "build failed", "so it goes")).To(Succeed())

			Expect(buildLifecycle.DestroyBuild(build.ID())).To(Succeed())

			_, found, err := buildFactory.GetBuild(build.ID())
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeFalse())

			var entries int
			err = dbConn.QueryRow(`SELECT COUNT(*) FROM log_entries WHERE build_id = $1`, build.ID()).Scan(&entries)
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(BeZero())

			artifacts, err := db.NewArtifactLifecycle(dbConn).ArtifactsForBuild(build.ID())
			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(BeEmpty())

			pending, err := outbox.PendingNotifications(10)
			Expect(err).ToNot(HaveOccurred())
			Expect(pending).To(BeEmpty())
		})
	})

	Describe("QueueDepths", func() {
		It("counts queued and running builds, and nothing else", func() {
			_, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "deadbeef",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			running, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "cafed00d",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			started, err := running.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			finished, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "0ddba11",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			started, err = finished.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())

			err = finished.Finish(yard.StatusSuccess, "", "")
			Expect(err).ToNot(HaveOccurred())

			queued, runningCount, err := buildLifecycle.QueueDepths()
			Expect(err).ToNot(HaveOccurred())
			Expect(queued).To(Equal(1))
			Expect(runningCount).To(Equal(1))
		})

		It("reports an idle system as all zeroes", func() {
			queued, running, err := buildLifecycle.QueueDepths()
			Expect(err).ToNot(HaveOccurred())
			Expect(queued).To(BeZero())
			Expect(running).To(BeZero())
		})
	})
})
