package report_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagerctx"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/report"
	"github.com/slipway/slipway/yard/report/notify"
	"github.com/slipway/slipway/yard/report/reportfakes"
)

var _ = Describe("StatusReporter", func() {
	var (
		logger    *lagertest.TestLogger
		fakeClock *fakeclock.FakeClock

		fakePoster   *reportfakes.FakePoster
		fakeProject  *dbfakes.FakeProject
		fakeProjects *dbfakes.FakeProjectFactory
		fakeOutbox   *dbfakes.FakeNotificationOutbox
		fakeBuild    *dbfakes.FakeBuild

		notifyConfig notify.Config
		reporter     report.Reporter

		ctx context.Context
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("reporter-test")
		fakeClock = fakeclock.NewFakeClock(time.Now())
		ctx = lagerctx.NewContext(context.Background(), logger)

		fakePoster = new(reportfakes.FakePoster)
		fakePoster.PostReturns(http.StatusCreated, nil)

		fakeProject = new(dbfakes.FakeProject)
		fakeProject.NotifyOnFailureReturns(true)
		fakeProject.OwnerReturns("owner@example.com")

		fakeProjects = new(dbfakes.FakeProjectFactory)
		fakeProjects.GetProjectReturns(fakeProject, true, nil)

		fakeOutbox = new(dbfakes.FakeNotificationOutbox)

		fakeBuild = new(dbfakes.FakeBuild)
		fakeBuild.IDReturns(40)
		fakeBuild.ProjectIDReturns(7)
		fakeBuild.ProjectNameReturns("slipway/widgets")
		fakeBuild.CommitReturns("abc123")
		fakeBuild.BranchReturns("main")
		fakeBuild.AuthorReturns("dev@example.com")
		fakeBuild.StatusReturns(yard.StatusRunning)

		notifyConfig = notify.Config{SubjectPrefix: "[slipway]"}

		reporter = report.NewReporter(
			fakePoster,
			fakeProjects,
			fakeOutbox,
			"https://ci.example.com/builds/{build_id}",
			notifyConfig,
			fakeClock,
		)

		metric.Metrics.StatusReports.Delta()
		metric.Metrics.FailedStatusReports.Delta()
	})

	Describe("BuildStarted", func() {
		It("posts a pending status against the commit", func() {
			reporter.BuildStarted(ctx, fakeBuild)

			Expect(fakePoster.PostCallCount()).To(Equal(1))
			_, status := fakePoster.PostArgsForCall(0)
			Expect(status).To(Equal(report.CommitStatus{
				Repo:        "slipway/widgets",
				SHA:         "abc123",
				State:       report.CommitStatePending,
				TargetURL:   "https://ci.example.com/builds/40",
				Description: "build #40 running",
			}))

			Expect(metric.Metrics.StatusReports.Delta()).To(Equal(float64(1)))
			Expect(metric.Metrics.FailedStatusReports.Delta()).To(BeZero())
		})

		It("does not stage a notification", func() {
			reporter.BuildStarted(ctx, fakeBuild)
			Expect(fakeOutbox.EnqueueNotificationCallCount()).To(BeZero())
		})

		Context("when the poster rejects the status", func() {
			BeforeEach(func() {
				fakePoster.PostReturns(http.StatusBadGateway, errors.New("nope"))
			})

			It("logs the failure and leaves the build alone", func() {
				reporter.BuildStarted(ctx, fakeBuild)

				Expect(logger.Buffer()).To(gbytes.Say("failed-to-post-status"))
				Expect(fakeBuild.StartCallCount()).To(BeZero())
				Expect(fakeBuild.FinishCallCount()).To(BeZero())

				Expect(metric.Metrics.FailedStatusReports.Delta()).To(Equal(float64(1)))
				Expect(metric.Metrics.StatusReports.Delta()).To(BeZero())
			})
		})

		Context("when status posting is disabled", func() {
			BeforeEach(func() {
				reporter = report.NewReporter(
					nil,
					fakeProjects,
					fakeOutbox,
					"https://ci.example.com/builds/{build_id}",
					notifyConfig,
					fakeClock,
				)
			})

			It("posts nothing", func() {
				reporter.BuildStarted(ctx, fakeBuild)

				Expect(fakePoster.PostCallCount()).To(BeZero())
				Expect(metric.Metrics.StatusReports.Delta()).To(BeZero())
			})
		})
	})

	Describe("BuildFinished", func() {
		Context("when the build succeeded", func() {
			BeforeEach(func() {
				fakeBuild.StatusReturns(yard.StatusSuccess)
				fakeBuild.DurationReturns(90 * time.Second)
			})

			It("posts a success status with the measured duration", func() {
				reporter.BuildFinished(ctx, fakeBuild)

				Expect(fakePoster.PostCallCount()).To(Equal(1))
				_, status := fakePoster.PostArgsForCall(0)
				Expect(status.State).To(Equal(report.CommitStateSuccess))
				Expect(status.Description).To(Equal("build passed in 1m30s"))
				Expect(status.TargetURL).To(Equal("https://ci.example.com/builds/40"))
			})

			It("never consults the project or the outbox", func() {
				reporter.BuildFinished(ctx, fakeBuild)

				Expect(fakeProjects.GetProjectCallCount()).To(BeZero())
				Expect(fakeOutbox.EnqueueNotificationCallCount()).To(BeZero())
			})
		})

		Context("when the build failed", func() {
			BeforeEach(func() {
				fakeBuild.StatusReturns(yard.StatusFailed)
				fakeBuild.ErrorKindReturns(yard.ErrorKindBuild)
				fakeBuild.ErrorMessageReturns("step \"test\" failed: exit status 1")
			})

			It("posts a failure status described by the terminal error", func() {
				reporter.BuildFinished(ctx, fakeBuild)

				_, status := fakePoster.PostArgsForCall(0)
				Expect(status.State).To(Equal(report.CommitStateFailure))
				Expect(status.Description).To(Equal("step \"test\" failed: exit status 1"))
			})

			It("stages a notification addressed to the project owner", func() {
				reporter.BuildFinished(ctx, fakeBuild)

				Expect(fakeProjects.GetProjectArgsForCall(0)).To(Equal(7))

				Expect(fakeOutbox.EnqueueNotificationCallCount()).To(Equal(1))
				buildID, recipient, subject, body := fakeOutbox.EnqueueNotificationArgsForCall(0)
				Expect(buildID).To(Equal(40))
				Expect(recipient).To(Equal("owner@example.com"))
				Expect(subject).To(Equal("[slipway] slipway/widgets build #40 failed"))
				Expect(body).To(ContainSubstring("Build #40 of slipway/widgets failed."))
				Expect(body).To(ContainSubstring("Branch: main"))
				Expect(body).To(ContainSubstring("Commit: abc123"))
				Expect(body).To(ContainSubstring("Author: dev@example.com"))
				Expect(body).To(ContainSubstring("step \"test\" failed: exit status 1"))
				Expect(body).To(ContainSubstring("Logs: https://ci.example.com/builds/40"))

				Expect(logger.Buffer()).To(gbytes.Say("staged-failure-notification"))
			})

			It("still stages the notification when the status post fails", func() {
				fakePoster.PostReturns(0, errors.New("connection refused"))

				reporter.BuildFinished(ctx, fakeBuild)

				Expect(fakeOutbox.EnqueueNotificationCallCount()).To(Equal(1))
				Expect(metric.Metrics.FailedStatusReports.Delta()).To(Equal(float64(1)))
			})

			Context("when the project has no owner", func() {
				BeforeEach(func() {
					fakeProject.OwnerReturns("")
					notifyConfig.DefaultRecipient = "oncall@example.com"

					reporter = report.NewReporter(
						fakePoster,
						fakeProjects,
						fakeOutbox,
						"https://ci.example.com/builds/{build_id}",
						notifyConfig,
						fakeClock,
					)
				})

				It("falls back to the default recipient", func() {
					reporter.BuildFinished(ctx, fakeBuild)

					Expect(fakeOutbox.EnqueueNotificationCallCount()).To(Equal(1))
					_, recipient, _, _ := fakeOutbox.EnqueueNotificationArgsForCall(0)
					Expect(recipient).To(Equal("oncall@example.com"))
				})
			})

			Context("when there is no recipient at all", func() {
				BeforeEach(func() {
					fakeProject.OwnerReturns("")
				})

				It("drops the notification", func() {
					reporter.BuildFinished(ctx, fakeBuild)

					Expect(fakeOutbox.EnqueueNotificationCallCount()).To(BeZero())
					Expect(logger.Buffer()).To(gbytes.Say("skipping-notification-no-recipient"))
				})
			})

			Context("when the project opted out of notifications", func() {
				BeforeEach(func() {
					fakeProject.NotifyOnFailureReturns(false)
				})

				It("stages nothing", func() {
					reporter.BuildFinished(ctx, fakeBuild)
					Expect(fakeOutbox.EnqueueNotificationCallCount()).To(BeZero())
				})
			})

			Context("when the project was deleted mid-flight", func() {
				BeforeEach(func() {
					fakeProjects.GetProjectReturns(nil, false, nil)
				})

				It("stages nothing", func() {
					reporter.BuildFinished(ctx, fakeBuild)
					Expect(fakeOutbox.EnqueueNotificationCallCount()).To(BeZero())
				})
			})

			Context("when the project lookup fails", func() {
				BeforeEach(func() {
					fakeProjects.GetProjectReturns(nil, false, errors.New("nope"))
				})

				It("logs and stages nothing", func() {
					reporter.BuildFinished(ctx, fakeBuild)

					Expect(fakeOutbox.EnqueueNotificationCallCount()).To(BeZero())
					Expect(logger.Buffer()).To(gbytes.Say("failed-to-look-up-project-for-notification"))
				})
			})

			Context("when the outbox insert fails", func() {
				BeforeEach(func() {
					fakeOutbox.EnqueueNotificationReturns(errors.New("nope"))
				})

				It("logs and carries on", func() {
					reporter.BuildFinished(ctx, fakeBuild)
					Expect(logger.Buffer()).To(gbytes.Say("failed-to-enqueue-notification"))
				})
			})
		})

		Context("when the build timed out", func() {
			BeforeEach(func() {
				fakeBuild.StatusReturns(yard.StatusTimedOut)
				fakeBuild.ErrorKindReturns(yard.ErrorKindTimeout)
				fakeBuild.ErrorMessageReturns("build exceeded timeout of 15m0s")
			})

			It("posts a failure status and stages a timed-out notification", func() {
				reporter.BuildFinished(ctx, fakeBuild)

				_, status := fakePoster.PostArgsForCall(0)
				Expect(status.State).To(Equal(report.CommitStateFailure))

				Expect(fakeOutbox.EnqueueNotificationCallCount()).To(Equal(1))
				_, _, subject, _ := fakeOutbox.EnqueueNotificationArgsForCall(0)
				Expect(subject).To(Equal("[slipway] slipway/widgets build #40 timed out"))
			})
		})

		Context("when the build was cancelled", func() {
			BeforeEach(func() {
				fakeBuild.StatusReturns(yard.StatusCancelled)
				fakeBuild.ErrorKindReturns(yard.ErrorKindCancelled)
				fakeBuild.ErrorMessageReturns("build cancelled")
			})

			It("posts a failure status but stays quiet", func() {
				reporter.BuildFinished(ctx, fakeBuild)

				_, status := fakePoster.PostArgsForCall(0)
				Expect(status.State).To(Equal(report.CommitStateFailure))
				Expect(status.Description).To(Equal("build cancelled"))

				Expect(fakeOutbox.EnqueueNotificationCallCount()).To(BeZero())
			})
		})

		Context("when the terminal error message is enormous", func() {
			BeforeEach(func() {
				fakeBuild.StatusReturns(yard.StatusFailed)
				fakeBuild.ErrorMessageReturns(strings.Repeat("x", 200))
			})

			It("truncates the status description but not the notification body", func() {
				reporter.BuildFinished(ctx, fakeBuild)

				_, status := fakePoster.PostArgsForCall(0)
				Expect(status.Description).To(HaveLen(140))
				Expect(status.Description).To(HaveSuffix("..."))

				_, _, _, body := fakeOutbox.EnqueueNotificationArgsForCall(0)
				Expect(body).To(ContainSubstring(strings.Repeat("x", 200)))
			})
		})
	})
})
