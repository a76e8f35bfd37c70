package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/report/notify"
)

// descriptionLimit matches the tightest provider cap on status
// descriptions.
const descriptionLimit = 140

type statusReporter struct {
	poster    Poster
	projects  db.ProjectFactory
	outbox    db.NotificationOutbox
	targetURL string
	notify    notify.Config
	clock     clock.Clock
}

// NewReporter returns the production Reporter: commit statuses through
// poster, failure notifications into the outbox. A nil poster disables
// status posting; notifications still flow. Reporting is fire-and-forget
// either way, so neither path ever touches the build row.
func NewReporter(
	poster Poster,
	projects db.ProjectFactory,
	outbox db.NotificationOutbox,
	targetURL string,
	notifyConfig notify.Config,
	clk clock.Clock,
) Reporter {
	return &statusReporter{
		poster:    poster,
		projects:  projects,
		outbox:    outbox,
		targetURL: targetURL,
		notify:    notifyConfig,
		clock:     clk,
	}
}

func (r *statusReporter) BuildStarted(ctx context.Context, build db.Build) {
	logger := lagerctx.FromContext(ctx).Session("report-started", lager.Data{
		"build": build.ID(),
	})

	r.post(ctx, logger, build, CommitStatePending, fmt.Sprintf("build #%d running", build.ID()))
}

func (r *statusReporter) BuildFinished(ctx context.Context, build db.Build) {
	logger := lagerctx.FromContext(ctx).Session("report-finished", lager.Data{
		"build":  build.ID(),
		"status": build.Status(),
	})

	state := CommitStateFailure
	if build.Status() == yard.StatusSuccess {
		state = CommitStateSuccess
	}

	r.post(ctx, logger, build, state, finishedDescription(build))
	r.notifyOwner(logger, build)
}

func (r *statusReporter) post(ctx context.Context, logger lager.Logger, build db.Build, state CommitState, description string) {
	if r.poster == nil {
		return
	}

	status := CommitStatus{
		Repo:        build.ProjectName(),
		SHA:         build.Commit(),
		State:       state,
		TargetURL:   r.link(build),
		Description: truncate(description, descriptionLimit),
	}

	start := r.clock.Now()
	code, err := r.poster.Post(ctx, status)
	elapsed := r.clock.Since(start)

	if err != nil {
		logger.Error("failed-to-post-status", err, lager.Data{"state": state})
	} else {
		logger.Debug("posted", lager.Data{"state": state, "code": code})
	}

	metric.StatusReport{
		Build:      build,
		StatusCode: code,
		Duration:   elapsed,
		Failed:     err != nil,
	}.Emit(logger, metric.Metrics)
}

// notifyOwner stages an email row for failed and timed-out builds when the
// project asked for one. Cancelled builds are somebody's deliberate act and
// stay quiet.
func (r *statusReporter) notifyOwner(logger lager.Logger, build db.Build) {
	switch build.Status() {
	case yard.StatusFailed, yard.StatusTimedOut:
	default:
		return
	}

	project, found, err := r.projects.GetProject(build.ProjectID())
	if err != nil {
		logger.Error("failed-to-look-up-project-for-notification", err)
		return
	}

	if !found || !project.NotifyOnFailure() {
		return
	}

	recipient := project.Owner()
	if recipient == "" {
		recipient = r.notify.DefaultRecipient
	}

	if recipient == "" {
		logger.Debug("skipping-notification-no-recipient")
		return
	}

	subject := fmt.Sprintf("%s %s build #%d %s",
		r.notify.SubjectPrefix, build.ProjectName(), build.ID(), statusPhrase(build.Status()))

	err = r.outbox.EnqueueNotification(build.ID(), recipient, subject, r.notificationBody(build))
	if err != nil {
		logger.Error("failed-to-enqueue-notification", err)
		return
	}

	logger.Info("staged-failure-notification", lager.Data{"recipient": recipient})
}

func (r *statusReporter) notificationBody(build db.Build) string {
	var body strings.Builder

	fmt.Fprintf(&body, "Build #%d of %s %s.\n\n", build.ID(), build.ProjectName(), statusPhrase(build.Status()))
	fmt.Fprintf(&body, "Branch: %s\n", build.Branch())
	fmt.Fprintf(&body, "Commit: %s\n", build.Commit())

	if author := build.Author(); author != "" {
		fmt.Fprintf(&body, "Author: %s\n", author)
	}

	if message := build.ErrorMessage(); message != "" {
		fmt.Fprintf(&body, "\n%s\n", message)
	}

	if link := r.link(build); link != "" {
		fmt.Fprintf(&body, "\nLogs: %s\n", link)
	}

	return body.String()
}

func (r *statusReporter) link(build db.Build) string {
	return strings.ReplaceAll(r.targetURL, "{build_id}", strconv.Itoa(build.ID()))
}

func finishedDescription(build db.Build) string {
	if build.Status() == yard.StatusSuccess {
		return fmt.Sprintf("build passed in %s", build.Duration())
	}

	if message := build.ErrorMessage(); message != "" {
		return message
	}

	return "build " + statusPhrase(build.Status())
}

func statusPhrase(status yard.BuildStatus) string {
	if status == yard.StatusTimedOut {
		return "timed out"
	}
	return string(status)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "..."
}
