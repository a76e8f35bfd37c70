// Package coordinator fronts the build lifecycle. Triggers come in and
// queued builds come out; cancels, retries, status snapshots and log
// streams are served against existing builds; a reconciler sweeps up
// builds whose worker disappeared.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/report"
)

const cancelledMessage = "build cancelled"

var (
	// ErrBuildNotFound is returned for operations on build IDs that do not
	// exist.
	ErrBuildNotFound = errors.New("build not found")

	// ErrAlreadyTerminal is returned by Cancel when the build has already
	// finished. Cancelling twice is a no-op, not a failure.
	ErrAlreadyTerminal = errors.New("build already finished")

	// ErrNotRetryable is returned by Retry when the source build is still
	// in flight or succeeded.
	ErrNotRetryable = errors.New("only finished, non-successful builds can be retried")

	// ErrBranchFiltered declines a push whose branch falls outside the
	// project's branch filter. No build is created.
	ErrBranchFiltered = errors.New("branch does not match the project's branch filter")

	// ErrPullRequestsDisabled declines a pull request trigger for a project
	// that does not build them.
	ErrPullRequestsDisabled = errors.New("project does not build pull requests")
)

// Coordinator is the front door for builds. It owns admission (validation
// and enqueueing) and the operations on builds that do not need a worker:
// cancel, retry, status, log streaming.
type Coordinator struct {
	projects db.ProjectFactory
	builds   db.BuildFactory
	hub      *logstream.Hub
	fin      finaliser
}

func NewCoordinator(
	projects db.ProjectFactory,
	builds db.BuildFactory,
	hub *logstream.Hub,
	reporter report.Reporter,
	clk clock.Clock,
) *Coordinator {
	return &Coordinator{
		projects: projects,
		builds:   builds,
		hub:      hub,
		fin: finaliser{
			hub:      hub,
			reporter: reporter,
			clock:    clk,
		},
	}
}

// finaliser closes out builds that reach a terminal state without an
// executor attached: queued builds that are cancelled and running builds
// whose worker disappeared. The executor does the equivalent itself for
// builds it owns.
type finaliser struct {
	hub      *logstream.Hub
	reporter report.Reporter
	clock    clock.Clock
}

// closeOut writes the terminal log entry, ends the live stream, and emits
// the finish metrics and commit status. The build row is already terminal
// when this runs.
func (f finaliser) closeOut(logger lager.Logger, build db.Build, message string) {
	event, err := build.SaveEvent(yard.EventError, "", "", message, f.clock.Now())
	if err != nil {
		logger.Error("failed-to-save-final-log-entry", err)
	} else {
		f.hub.Publish(event)
	}
	f.hub.Complete(build.ID())

	metric.BuildFinished{Build: build}.Emit(logger, metric.Metrics)
	f.reporter.BuildFinished(lagerctx.NewContext(context.Background(), logger), build)
}

// Enqueue validates the trigger against the project it names and creates a
// queued build. The insert itself wakes the workers; the queued marker row
// it writes is the first entry every log subscriber replays. Triggers the
// project declines to build are reported as ErrBranchFiltered or
// ErrPullRequestsDisabled so callers can tell "no" from "broken".
func (c *Coordinator) Enqueue(ctx context.Context, trigger yard.Trigger) (db.Build, error) {
	logger := lagerctx.FromContext(ctx).Session("enqueue", lager.Data{
		"repo":    trigger.RepoFullName,
		"commit":  trigger.Commit,
		"trigger": trigger.Kind,
	})

	if !yard.KnownTrigger(trigger.Kind) {
		return nil, yard.ValidationError{Reason: fmt.Sprintf("unknown trigger kind %q", trigger.Kind)}
	}
	if trigger.Kind == yard.TriggerRetry {
		return nil, yard.ValidationError{Reason: "trigger kind \"retry\" is reserved for the retry operation"}
	}
	if trigger.Commit == "" {
		return nil, yard.ValidationError{Reason: "trigger has no commit"}
	}
	if trigger.Kind == yard.TriggerPullRequest && trigger.PRNumber <= 0 {
		return nil, yard.ValidationError{Reason: "pull request trigger has no pull request number"}
	}

	project, found, err := c.projects.GetProjectByName(trigger.RepoFullName)
	if err != nil {
		return nil, fmt.Errorf("look up project: %w", err)
	}
	if !found {
		return nil, yard.ValidationError{Reason: fmt.Sprintf("no project configured for repository %q", trigger.RepoFullName)}
	}

	config := project.Config()

	if trigger.Branch == "" {
		if trigger.Kind != yard.TriggerManual {
			return nil, yard.ValidationError{Reason: "trigger has no branch"}
		}
		trigger.Branch = config.DefaultBranch
	}

	switch trigger.Kind {
	case yard.TriggerPush:
		matched, err := config.BranchMatches(trigger.Branch)
		if err != nil {
			return nil, yard.ValidationError{Reason: err.Error()}
		}
		if !matched {
			return nil, ErrBranchFiltered
		}

	case yard.TriggerPullRequest:
		if !config.BuildPullRequests {
			return nil, ErrPullRequestsDisabled
		}
	}

	build, err := c.builds.CreateBuild(project, trigger)
	if errors.Is(err, db.ErrProjectDisappeared) {
		return nil, yard.ValidationError{Reason: fmt.Sprintf("project %q was deleted", trigger.RepoFullName)}
	}
	if err != nil {
		return nil, fmt.Errorf("create build: %w", err)
	}

	logger.Info("enqueued", lager.Data{"build": build.ID(), "branch": trigger.Branch})

	return build, nil
}

// Cancel stops a build wherever it is. Queued builds are finalised right
// here, since no executor will ever own them; running builds are flagged
// and poked through the notifications bus, and their executor finalises.
// Cancelling a finished build returns ErrAlreadyTerminal.
func (c *Coordinator) Cancel(ctx context.Context, buildID int) error {
	logger := lagerctx.FromContext(ctx).Session("cancel", lager.Data{"build": buildID})

	build, found, err := c.builds.GetBuild(buildID)
	if err != nil {
		return fmt.Errorf("look up build: %w", err)
	}
	if !found {
		return ErrBuildNotFound
	}

	for {
		switch {
		case build.Status().Terminal():
			return ErrAlreadyTerminal

		case build.Status() == yard.StatusQueued:
			cancelled, err := build.CancelQueued()
			if err != nil {
				return fmt.Errorf("cancel queued build: %w", err)
			}
			if cancelled {
				c.fin.closeOut(logger, build, cancelledMessage)
				logger.Info("cancelled-queued-build")
				return nil
			}

			// Lost the race with a worker claiming the build. Reload and
			// take the running path instead.
			if _, err := build.Reload(); err != nil {
				return fmt.Errorf("reload build: %w", err)
			}

		default:
			if err := build.RequestCancel(); err != nil {
				return fmt.Errorf("request cancel: %w", err)
			}
			logger.Info("cancel-requested")
			return nil
		}
	}
}

// Retry clones a finished, non-successful build into a fresh queued build
// with the same commit and trigger metadata.
func (c *Coordinator) Retry(ctx context.Context, buildID int) (db.Build, error) {
	logger := lagerctx.FromContext(ctx).Session("retry", lager.Data{"build": buildID})

	build, found, err := c.builds.GetBuild(buildID)
	if err != nil {
		return nil, fmt.Errorf("look up build: %w", err)
	}
	if !found {
		return nil, ErrBuildNotFound
	}

	if !build.Status().Terminal() || build.Status() == yard.StatusSuccess {
		return nil, ErrNotRetryable
	}

	child, err := c.builds.CreateRetry(build)
	if err != nil {
		return nil, fmt.Errorf("create retry: %w", err)
	}

	metric.Metrics.BuildsRetried.Inc()
	logger.Info("enqueued-retry", lager.Data{"retry": child.ID()})

	return child, nil
}

// Status returns a point-in-time snapshot of the build.
func (c *Coordinator) Status(ctx context.Context, buildID int) (yard.BuildSnapshot, error) {
	build, found, err := c.builds.GetBuild(buildID)
	if err != nil {
		return yard.BuildSnapshot{}, fmt.Errorf("look up build: %w", err)
	}
	if !found {
		return yard.BuildSnapshot{}, ErrBuildNotFound
	}

	return build.Snapshot(), nil
}

// SubscribeLogs replays the build's persisted log entries after the given
// sequence and then follows the live stream. The caller must close the
// subscription.
func (c *Coordinator) SubscribeLogs(ctx context.Context, buildID int, afterSeq int) (*logstream.Subscription, error) {
	build, found, err := c.builds.GetBuild(buildID)
	if err != nil {
		return nil, fmt.Errorf("look up build: %w", err)
	}
	if !found {
		return nil, ErrBuildNotFound
	}

	return c.hub.Subscribe(build, afterSeq), nil
}
