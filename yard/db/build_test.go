package db_test

import (
	"time"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Build", func() {
	var (
		project db.Project
		build   db.Build
	)

	BeforeEach(func() {
		var err error
		project, err = projectFactory.UpsertProject(yard.Project{
			Name:     "acme/anvil",
			CloneURL: "https://git.example.com/acme/anvil.git",
		})
		Expect(err).ToNot(HaveOccurred())

		build, err = buildFactory.CreateBuild(project, yard.Trigger{
			RepoFullName: "acme/anvil",
			Commit:       "deadbeef",
			Branch:       "main",
			Message:      "fix the anvil",
			Author:       "coyote",
			Kind:         yard.TriggerPush,
		})
		Expect(err).ToNot(HaveOccurred())
	})

	It("is born queued with a queued marker entry", func() {
		Expect(build.Status()).To(Equal(yard.StatusQueued))
		Expect(build.Commit()).To(Equal("deadbeef"))
		Expect(build.Branch()).To(Equal("main"))
		Expect(build.ProjectName()).To(Equal("acme/anvil"))
		Expect(build.QueuedAt()).ToNot(BeZero())
		Expect(build.StartedAt()).To(BeZero())

		source, err := build.Events(0)
		Expect(err).ToNot(HaveOccurred())
		defer source.Close()

		event, err := source.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(event.Sequence).To(Equal(1))
		Expect(event.Kind).To(Equal(yard.EventInfo))
		Expect(event.Message).To(Equal("build queued"))

		_, err = source.Next()
		Expect(err).To(Equal(db.ErrEndOfBuildEventStream))
	})

	It("notifies dequeuers on creation", func() {
		sink, err := dbConn.Bus().Listen(db.BuildEnqueuedChannel)
		Expect(err).ToNot(HaveOccurred())
		defer dbConn.Bus().Unlisten(db.BuildEnqueuedChannel, sink)

		_, err = buildFactory.CreateBuild(project, yard.Trigger{
			Commit: "cafed00d",
			Branch: "main",
			Kind:   yard.TriggerPush,
		})
		Expect(err).ToNot(HaveOccurred())

		Eventually(sink).Should(Receive())
	})

	Describe("Start", func() {
		It("moves a queued build to running exactly once", func() {
			started, err := build.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(BeTrue())
			Expect(build.Status()).To(Equal(yard.StatusRunning))
			Expect(build.StartedAt()).ToNot(BeZero())

			startedAgain, err := build.Start()
			Expect(err).ToNot(HaveOccurred())
			Expect(startedAgain).To(BeFalse())
		})
	})

	Describe("Finish", func() {
		It("rejects finishing a queued build", func() {
			err := build.Finish(yard.StatusSuccess, "", "")
			Expect(err).To(BeAssignableToTypeOf(db.InvalidTransitionError{}))
		})

		It("rejects illegal target statuses", func() {
			err := build.Finish(yard.StatusQueued, "", "")
			Expect(err).To(BeAssignableToTypeOf(db.InvalidTransitionError{}))
		})

		It("records outcome, error, and duration", func() {
			_, err := build.Start()
			Expect(err).ToNot(HaveOccurred())

			err = build.Finish(yard.StatusFailed, yard.ErrorKindBuild, `phase "test" exited with status 2`)
			Expect(err).ToNot(HaveOccurred())

			Expect(build.Status()).To(Equal(yard.StatusFailed))
			Expect(build.ErrorKind()).To(Equal(yard.ErrorKindBuild))
			Expect(build.ErrorMessage()).To(ContainSubstring("exited with status 2"))
			Expect(build.FinishedAt()).ToNot(BeZero())
		})

		It("refuses a second terminal transition", func() {
			_, err := build.Start()
			Expect(err).ToNot(HaveOccurred())

			Expect(build.Finish(yard.StatusSuccess, "", "")).To(Succeed())

			err = build.Finish(yard.StatusFailed, yard.ErrorKindBuild, "too late")
			Expect(err).To(BeAssignableToTypeOf(db.InvalidTransitionError{}))
			Expect(build.Status()).To(Equal(yard.StatusSuccess))
		})
	})

	Describe("CancelQueued", func() {
		It("finalises a queued build directly", func() {
			cancelled, err := build.CancelQueued()
			Expect(err).ToNot(HaveOccurred())
			Expect(cancelled).To(BeTrue())
			Expect(build.Status()).To(Equal(yard.StatusCancelled))
			Expect(build.ErrorKind()).To(Equal(yard.ErrorKindCancelled))
		})

		It("reports false once the build is running", func() {
			_, err := build.Start()
			Expect(err).ToNot(HaveOccurred())

			cancelled, err := build.CancelQueued()
			Expect(err).ToNot(HaveOccurred())
			Expect(cancelled).To(BeFalse())
		})
	})

	Describe("RequestCancel", func() {
		It("sets the flag and notifies the cancel channel", func() {
			sink, err := dbConn.Bus().Listen(db.BuildCancelChannel)
			Expect(err).ToNot(HaveOccurred())
			defer dbConn.Bus().Unlisten(db.BuildCancelChannel, sink)

			_, err = build.Start()
			Expect(err).ToNot(HaveOccurred())

			Expect(build.RequestCancel()).To(Succeed())

			reloaded, err := build.Reload()
			Expect(err).ToNot(HaveOccurred())
			Expect(reloaded).To(BeTrue())
			Expect(build.CancelRequested()).To(BeTrue())

			Eventually(sink).Should(Receive())
		})
	})

	Describe("SaveEvent", func() {
		It("assigns dense increasing sequence numbers", func() {
			now := time.Now()

			first, err := build.SaveEvent(yard.EventStepStarted, "build", "", "build", now)
			Expect(err).ToNot(HaveOccurred())
			Expect(first.Sequence).To(Equal(2))

			second, err := build.SaveEvent(yard.EventOutput, "build", yard.ChannelStdout, "compiling", now)
			Expect(err).ToNot(HaveOccurred())
			Expect(second.Sequence).To(Equal(3))

			third, err := build.SaveEvent(yard.EventStepCompleted, "build", "", "build", now)
			Expect(err).ToNot(HaveOccurred())
			Expect(third.Sequence).To(Equal(4))
		})

		It("replays from an arbitrary sequence", func() {
			now := time.Now()
			for _, line := range []string{"one", "two", "three"} {
				_, err := build.SaveEvent(yard.EventOutput, "build", yard.ChannelStdout, line, now)
				Expect(err).ToNot(HaveOccurred())
			}

			source, err := build.Events(2)
			Expect(err).ToNot(HaveOccurred())
			defer source.Close()

			event, err := source.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(event.Sequence).To(Equal(3))
			Expect(event.Message).To(Equal("two"))

			event, err = source.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(event.Sequence).To(Equal(4))
			Expect(event.Message).To(Equal("three"))

			_, err = source.Next()
			Expect(err).To(Equal(db.ErrEndOfBuildEventStream))
		})
	})

	Describe("UpdateProgress", func() {
		It("tracks step counters", func() {
			Expect(build.UpdateProgress(3, 1, 0)).To(Succeed())

			reloaded, err := build.Reload()
			Expect(err).ToNot(HaveOccurred())
			Expect(reloaded).To(BeTrue())

			Expect(build.StepsTotal()).To(Equal(3))
			Expect(build.StepsCompleted()).To(Equal(1))
			Expect(build.StepsFailed()).To(BeZero())
		})
	})

	Describe("artifacts", func() {
		It("saves and lists artifact rows", func() {
			expires := time.Now().Add(30 * 24 * time.Hour)

			artifact, err := build.SaveArtifact("anvil.tgz", "/srv/artifacts/1/anvil.tgz", 2048, expires)
			Expect(err).ToNot(HaveOccurred())
			Expect(artifact.ID).ToNot(BeZero())
			Expect(artifact.SizeBytes).To(Equal(int64(2048)))

			artifacts, err := build.Artifacts()
			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(HaveLen(1))
			Expect(artifacts[0].Name).To(Equal("anvil.tgz"))
		})
	})

	Describe("CreateRetry", func() {
		It("enqueues a child carrying the source's commit", func() {
			retry, err := buildFactory.CreateRetry(build)
			Expect(err).ToNot(HaveOccurred())

			Expect(retry.ID()).ToNot(Equal(build.ID()))
			Expect(retry.ParentID()).To(Equal(build.ID()))
			Expect(retry.Commit()).To(Equal("deadbeef"))
			Expect(retry.Branch()).To(Equal("main"))
			Expect(retry.TriggerKind()).To(Equal(yard.TriggerRetry))
			Expect(retry.Status()).To(Equal(yard.StatusQueued))
		})
	})

	Describe("ToWire", func() {
		It("converts timestamps and identity", func() {
			_, err := build.Start()
			Expect(err).ToNot(HaveOccurred())

			wire := build.ToWire()
			Expect(wire.ID).To(Equal(build.ID()))
			Expect(wire.ProjectName).To(Equal("acme/anvil"))
			Expect(wire.Status).To(Equal(yard.StatusRunning))
			Expect(wire.QueuedAt).ToNot(BeZero())
			Expect(wire.StartedAt).ToNot(BeZero())
			Expect(wire.FinishedAt).To(BeZero())
		})
	})
})
