package coordinator_test

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

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/coordinator"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/report/reportfakes"
)

var _ = Describe("Coordinator", func() {
	var (
		logger    *lagertest.TestLogger
		now       time.Time
		fakeClock *fakeclock.FakeClock

		fakeProject  *dbfakes.FakeProject
		fakeProjects *dbfakes.FakeProjectFactory
		fakeBuild    *dbfakes.FakeBuild
		fakeBuilds   *dbfakes.FakeBuildFactory
		fakeReporter *reportfakes.FakeReporter

		projectConfig yard.Project
		trigger       yard.Trigger

		hub   *logstream.Hub
		coord *coordinator.Coordinator

		ctx context.Context
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("coordinator-test")
		now = time.Now()
		fakeClock = fakeclock.NewFakeClock(now)
		ctx = lagerctx.NewContext(context.Background(), logger)

		projectConfig = yard.Project{
			ID:            7,
			Name:          "slipway/widgets",
			CloneURL:      "https://git.example.com/slipway/widgets.git",
			DefaultBranch: "main",
		}

		fakeProject = new(dbfakes.FakeProject)
		fakeProject.IDReturns(7)
		fakeProject.ConfigStub = func() yard.Project { return projectConfig }

		fakeProjects = new(dbfakes.FakeProjectFactory)
		fakeProjects.GetProjectByNameReturns(fakeProject, true, nil)

		fakeBuild = new(dbfakes.FakeBuild)
		fakeBuild.IDReturns(40)
		fakeBuild.ProjectNameReturns("slipway/widgets")
		fakeBuild.BranchReturns("main")
		fakeBuild.TriggerKindReturns(yard.TriggerPush)
		fakeBuild.StatusReturns(yard.StatusQueued)

		seq := 0
		fakeBuild.SaveEventStub = func(kind yard.EventKind, step string, channel yard.StreamChannel, message string, at time.Time) (yard.LogEvent, error) {
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

		fakeBuilds = new(dbfakes.FakeBuildFactory)
		fakeBuilds.CreateBuildReturns(fakeBuild, nil)
		fakeBuilds.GetBuildReturns(fakeBuild, true, nil)

		fakeReporter = new(reportfakes.FakeReporter)

		hub = logstream.NewHub(logger, logstream.NewConfig(), fakeClock)

		coord = coordinator.NewCoordinator(fakeProjects, fakeBuilds, hub, fakeReporter, fakeClock)

		trigger = yard.Trigger{
			RepoFullName: "slipway/widgets",
			Commit:       "abc123",
			Branch:       "main",
			Kind:         yard.TriggerPush,
			Author:       "dev@example.com",
			Message:      "fix the widget",
		}

		metric.Metrics.BuildsFinished.Delta()
		metric.Metrics.BuildsCancelled.Delta()
		metric.Metrics.BuildsRetried.Delta()
	})

	Describe("Enqueue", func() {
		It("creates a queued build for a push", func() {
			build, err := coord.Enqueue(ctx, trigger)
			Expect(err).NotTo(HaveOccurred())
			Expect(build.ID()).To(Equal(40))

			Expect(fakeProjects.GetProjectByNameArgsForCall(0)).To(Equal("slipway/widgets"))

			project, created := fakeBuilds.CreateBuildArgsForCall(0)
			Expect(project).To(Equal(fakeProject))
			Expect(created).To(Equal(trigger))
		})

		It("rejects unknown trigger kinds", func() {
			trigger.Kind = "cron"

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
			Expect(err.Error()).To(ContainSubstring("unknown trigger kind"))
			Expect(fakeBuilds.CreateBuildCallCount()).To(BeZero())
		})

		It("rejects the retry kind, which only the retry operation may use", func() {
			trigger.Kind = yard.TriggerRetry

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
			Expect(fakeBuilds.CreateBuildCallCount()).To(BeZero())
		})

		It("rejects a trigger with no commit", func() {
			trigger.Commit = ""

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
			Expect(err.Error()).To(ContainSubstring("no commit"))
		})

		It("rejects a push with no branch", func() {
			trigger.Branch = ""

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
			Expect(err.Error()).To(ContainSubstring("no branch"))
		})

		It("rejects a pull request trigger with no number", func() {
			projectConfig.BuildPullRequests = true
			trigger.Kind = yard.TriggerPullRequest
			trigger.PRNumber = 0

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
			Expect(err.Error()).To(ContainSubstring("pull request"))
		})

		It("rejects triggers for repositories with no project", func() {
			fakeProjects.GetProjectByNameReturns(nil, false, nil)

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
			Expect(err.Error()).To(ContainSubstring(`no project configured for repository "slipway/widgets"`))
		})

		It("propagates project lookup errors", func() {
			fakeProjects.GetProjectByNameReturns(nil, false, errors.New("connection refused"))

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(MatchError(ContainSubstring("look up project")))
			Expect(err).NotTo(BeAssignableToTypeOf(yard.ValidationError{}))
		})

		Describe("the branch filter", func() {
			BeforeEach(func() {
				projectConfig.BranchFilter = "release/*"
			})

			It("declines pushes outside the filter", func() {
				trigger.Branch = "feature/shiny"

				_, err := coord.Enqueue(ctx, trigger)
				Expect(err).To(MatchError(coordinator.ErrBranchFiltered))
				Expect(fakeBuilds.CreateBuildCallCount()).To(BeZero())
			})

			It("builds pushes that match", func() {
				trigger.Branch = "release/1.2"

				_, err := coord.Enqueue(ctx, trigger)
				Expect(err).NotTo(HaveOccurred())
			})

			It("does not apply to manual triggers", func() {
				trigger.Kind = yard.TriggerManual
				trigger.Branch = "feature/shiny"

				_, err := coord.Enqueue(ctx, trigger)
				Expect(err).NotTo(HaveOccurred())
			})

			It("treats an unparseable filter as a validation error", func() {
				projectConfig.BranchFilter = "["

				_, err := coord.Enqueue(ctx, trigger)
				Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("branch filter"))
			})
		})

		Describe("pull request triggers", func() {
			BeforeEach(func() {
				trigger.Kind = yard.TriggerPullRequest
				trigger.Branch = "feature/shiny"
				trigger.PRNumber = 12
			})

			It("declines them when the project opts out", func() {
				projectConfig.BuildPullRequests = false

				_, err := coord.Enqueue(ctx, trigger)
				Expect(err).To(MatchError(coordinator.ErrPullRequestsDisabled))
				Expect(fakeBuilds.CreateBuildCallCount()).To(BeZero())
			})

			It("builds them when the project opts in, regardless of the branch filter", func() {
				projectConfig.BuildPullRequests = true
				projectConfig.BranchFilter = "main"

				_, err := coord.Enqueue(ctx, trigger)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		It("defaults a manual trigger with no branch to the project's default branch", func() {
			trigger.Kind = yard.TriggerManual
			trigger.Branch = ""

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).NotTo(HaveOccurred())

			_, created := fakeBuilds.CreateBuildArgsForCall(0)
			Expect(created.Branch).To(Equal("main"))
		})

		It("maps a project deleted mid-flight to a validation error", func() {
			fakeBuilds.CreateBuildReturns(nil, db.ErrProjectDisappeared)

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
			Expect(err.Error()).To(ContainSubstring("deleted"))
		})

		It("propagates build creation errors", func() {
			fakeBuilds.CreateBuildReturns(nil, errors.New("deadlock detected"))

			_, err := coord.Enqueue(ctx, trigger)
			Expect(err).To(MatchError(ContainSubstring("create build")))
		})
	})

	Describe("Cancel", func() {
		Context("when the build is still queued", func() {
			BeforeEach(func() {
				fakeBuild.CancelQueuedStub = func() (bool, error) {
					fakeBuild.StatusReturns(yard.StatusCancelled)
					fakeBuild.ErrorKindReturns(yard.ErrorKindCancelled)
					fakeBuild.ErrorMessageReturns("build cancelled")
					return true, nil
				}
			})

			It("cancels it in place and finalises its log stream", func() {
				source := new(dbfakes.FakeEventSource)
				source.NextReturns(yard.LogEvent{}, db.ErrEndOfBuildEventStream)
				fakeBuild.EventsReturns(source, nil)

				sub, err := coord.SubscribeLogs(ctx, 40, 0)
				Expect(err).NotTo(HaveOccurred())
				defer sub.Close()

				Expect(coord.Cancel(ctx, 40)).To(Succeed())

				By("flipping the row before any worker claims it")
				Expect(fakeBuild.CancelQueuedCallCount()).To(Equal(1))
				Expect(fakeBuild.RequestCancelCallCount()).To(BeZero())

				By("writing the terminal log entry")
				kind, step, _, message, at := fakeBuild.SaveEventArgsForCall(0)
				Expect(kind).To(Equal(yard.EventError))
				Expect(step).To(BeEmpty())
				Expect(message).To(Equal("build cancelled"))
				Expect(at).To(Equal(now))

				By("delivering it to live subscribers and ending the stream")
				var event yard.LogEvent
				Eventually(sub.Events()).Should(Receive(&event))
				Expect(event.Kind).To(Equal(yard.EventError))
				Expect(event.Message).To(Equal("build cancelled"))
				Eventually(sub.Events()).Should(BeClosed())

				By("reporting the terminal state")
				Expect(fakeReporter.BuildFinishedCallCount()).To(Equal(1))
				_, reported := fakeReporter.BuildFinishedArgsForCall(0)
				Expect(reported).To(Equal(fakeBuild))

				Expect(metric.Metrics.BuildsFinished.Delta()).To(Equal(float64(1)))
				Expect(metric.Metrics.BuildsCancelled.Delta()).To(Equal(float64(1)))
			})

			It("still completes the stream when the final entry cannot be written", func() {
				fakeBuild.SaveEventReturns(yard.LogEvent{}, errors.New("disk full"))

				Expect(coord.Cancel(ctx, 40)).To(Succeed())

				Expect(logger.Buffer()).To(gbytes.Say("failed-to-save-final-log-entry"))
				Expect(fakeReporter.BuildFinishedCallCount()).To(Equal(1))
			})

			It("takes the running path when a worker claims the build mid-cancel", func() {
				fakeBuild.CancelQueuedReturns(false, nil)
				fakeBuild.ReloadStub = func() (bool, error) {
					fakeBuild.StatusReturns(yard.StatusRunning)
					return true, nil
				}

				Expect(coord.Cancel(ctx, 40)).To(Succeed())

				Expect(fakeBuild.RequestCancelCallCount()).To(Equal(1))
				Expect(fakeBuild.SaveEventCallCount()).To(BeZero())
			})
		})

		Context("when the build is running", func() {
			BeforeEach(func() {
				fakeBuild.StatusReturns(yard.StatusRunning)
			})

			It("flags the build and leaves finalisation to its executor", func() {
				Expect(coord.Cancel(ctx, 40)).To(Succeed())

				Expect(fakeBuild.RequestCancelCallCount()).To(Equal(1))
				Expect(fakeBuild.CancelQueuedCallCount()).To(BeZero())
				Expect(fakeBuild.SaveEventCallCount()).To(BeZero())
				Expect(fakeReporter.BuildFinishedCallCount()).To(BeZero())
			})

			It("surfaces request-cancel failures", func() {
				fakeBuild.RequestCancelReturns(errors.New("bus is down"))

				err := coord.Cancel(ctx, 40)
				Expect(err).To(MatchError(ContainSubstring("request cancel")))
			})
		})

		It("is a no-op on a finished build", func() {
			fakeBuild.StatusReturns(yard.StatusSuccess)

			err := coord.Cancel(ctx, 40)
			Expect(err).To(MatchError(coordinator.ErrAlreadyTerminal))
			Expect(fakeBuild.CancelQueuedCallCount()).To(BeZero())
			Expect(fakeBuild.RequestCancelCallCount()).To(BeZero())
		})

		It("returns ErrBuildNotFound for unknown builds", func() {
			fakeBuilds.GetBuildReturns(nil, false, nil)

			err := coord.Cancel(ctx, 40)
			Expect(err).To(MatchError(coordinator.ErrBuildNotFound))
		})

		It("propagates lookup errors", func() {
			fakeBuilds.GetBuildReturns(nil, false, errors.New("connection refused"))

			err := coord.Cancel(ctx, 40)
			Expect(err).To(MatchError(ContainSubstring("look up build")))
		})
	})

	Describe("Retry", func() {
		var child *dbfakes.FakeBuild

		BeforeEach(func() {
			fakeBuild.StatusReturns(yard.StatusFailed)

			child = new(dbfakes.FakeBuild)
			child.IDReturns(41)
			child.ParentIDReturns(40)
			fakeBuilds.CreateRetryReturns(child, nil)
		})

		It("enqueues a retry of a failed build", func() {
			build, err := coord.Retry(ctx, 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(build.ID()).To(Equal(41))

			Expect(fakeBuilds.CreateRetryArgsForCall(0)).To(Equal(fakeBuild))
			Expect(metric.Metrics.BuildsRetried.Delta()).To(Equal(float64(1)))
		})

		It("retries timed out and cancelled builds too", func() {
			for _, status := range []yard.BuildStatus{yard.StatusTimedOut, yard.StatusCancelled} {
				fakeBuild.StatusReturns(status)

				_, err := coord.Retry(ctx, 40)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("refuses to retry a build still in flight", func() {
			fakeBuild.StatusReturns(yard.StatusRunning)

			_, err := coord.Retry(ctx, 40)
			Expect(err).To(MatchError(coordinator.ErrNotRetryable))
			Expect(fakeBuilds.CreateRetryCallCount()).To(BeZero())
		})

		It("refuses to retry a successful build", func() {
			fakeBuild.StatusReturns(yard.StatusSuccess)

			_, err := coord.Retry(ctx, 40)
			Expect(err).To(MatchError(coordinator.ErrNotRetryable))
		})

		It("returns ErrBuildNotFound for unknown builds", func() {
			fakeBuilds.GetBuildReturns(nil, false, nil)

			_, err := coord.Retry(ctx, 40)
			Expect(err).To(MatchError(coordinator.ErrBuildNotFound))
		})

		It("propagates factory errors", func() {
			fakeBuilds.CreateRetryReturns(nil, errors.New("deadlock detected"))

			_, err := coord.Retry(ctx, 40)
			Expect(err).To(MatchError(ContainSubstring("create retry")))
		})
	})

	Describe("Status", func() {
		It("returns the build's snapshot", func() {
			snapshot := yard.BuildSnapshot{
				BuildID:        40,
				Status:         yard.StatusRunning,
				StepsTotal:     3,
				StepsCompleted: 1,
			}
			fakeBuild.SnapshotReturns(snapshot)

			got, err := coord.Status(ctx, 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(snapshot))
		})

		It("returns ErrBuildNotFound for unknown builds", func() {
			fakeBuilds.GetBuildReturns(nil, false, nil)

			_, err := coord.Status(ctx, 40)
			Expect(err).To(MatchError(coordinator.ErrBuildNotFound))
		})
	})

	Describe("SubscribeLogs", func() {
		It("replays persisted entries, then follows the live stream to completion", func() {
			source := new(dbfakes.FakeEventSource)
			source.NextReturns(yard.LogEvent{}, db.ErrEndOfBuildEventStream)
			source.NextReturnsOnCall(0, yard.LogEvent{
				BuildID:  40,
				Sequence: 1,
				Kind:     yard.EventInfo,
				Message:  "build queued",
			}, nil)
			fakeBuild.EventsReturns(source, nil)

			sub, err := coord.SubscribeLogs(ctx, 40, 0)
			Expect(err).NotTo(HaveOccurred())
			defer sub.Close()

			var event yard.LogEvent
			Eventually(sub.Events()).Should(Receive(&event))
			Expect(event.Message).To(Equal("build queued"))

			hub.Publish(yard.LogEvent{
				BuildID:  40,
				Sequence: 2,
				Kind:     yard.EventOutput,
				StepName: "compile",
				Channel:  yard.ChannelStdout,
				Message:  "make: ok",
			})

			Eventually(sub.Events()).Should(Receive(&event))
			Expect(event.Sequence).To(Equal(2))
			Expect(event.Message).To(Equal("make: ok"))

			hub.Complete(40)
			Eventually(sub.Events()).Should(BeClosed())
			Expect(sub.Err()).NotTo(HaveOccurred())
		})

		It("passes the resume offset through to the replay", func() {
			source := new(dbfakes.FakeEventSource)
			source.NextReturns(yard.LogEvent{}, db.ErrEndOfBuildEventStream)
			fakeBuild.EventsReturns(source, nil)

			sub, err := coord.SubscribeLogs(ctx, 40, 7)
			Expect(err).NotTo(HaveOccurred())
			defer sub.Close()

			Eventually(fakeBuild.EventsCallCount).Should(Equal(1))
			Expect(fakeBuild.EventsArgsForCall(0)).To(Equal(7))
		})

		It("returns ErrBuildNotFound for unknown builds", func() {
			fakeBuilds.GetBuildReturns(nil, false, nil)

			_, err := coord.SubscribeLogs(ctx, 40, 0)
			Expect(err).To(MatchError(coordinator.ErrBuildNotFound))
		})
	})
})
