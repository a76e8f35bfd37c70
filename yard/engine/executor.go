package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/slipway/slipway/tracing"
	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/creds"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/report"
	"github.com/slipway/slipway/yard/repos"
	"github.com/slipway/slipway/yard/runtime"
)

// workspacePath is the container-side mount point of the working tree. The
// runtime anchors workdir translation here; the executor only needs it to
// place the cache mounts.
const workspacePath = "/workspace"

// teardownTimeout bounds container stop/remove after a build terminates.
// Teardown runs on its own context because the build's is often already
// cancelled or past its deadline by the time teardown starts.
const teardownTimeout = time.Minute

// executor owns one dispatched build. It is not reusable.
type executor struct {
	build db.Build

	runtime      runtime.Engine
	materialiser repos.Materialiser
	vault        creds.Vault
	projects     db.ProjectFactory
	hub          *logstream.Hub
	streamConfig logstream.Config
	reporter     report.Reporter
	clock        clock.Clock
	config       Config

	// Set as the recipe acquires them; released by teardown.
	tree      repos.Tree
	container runtime.Container
	bundle    *creds.SecretBundle
}

// Run drives the build to a terminal status. Cancelling ctx requests
// cooperative cancellation; the per-build deadline is applied inside, once
// the project's configured maximum duration is known.
func (ex *executor) Run(ctx context.Context) {
	logger := lagerctx.FromContext(ctx).Session("build", lager.Data{
		"build":   ex.build.ID(),
		"project": ex.build.ProjectName(),
	})
	ctx = lagerctx.NewContext(ctx, logger)

	ctx, span := tracing.StartSpan(ctx, "build.run", tracing.Attrs{
		"build":   strconv.Itoa(ex.build.ID()),
		"project": ex.build.ProjectName(),
	})
	var spanErr error
	defer func() { tracing.End(span, spanErr) }()

	started, err := ex.build.Start()
	if err != nil {
		// Leave the row alone; the dispatch token will expire and the
		// reconciler will pick the build up.
		logger.Error("failed-to-start-build", err)
		spanErr = err
		return
	}
	if !started {
		logger.Info("build-no-longer-queued")
		return
	}

	metric.BuildStarted{Build: ex.build}.Emit(logger, metric.Metrics)
	ex.reporter.BuildStarted(ctx, ex.build)

	pipeline := logstream.NewPipeline(logger, ex.build, ex.hub, ex.streamConfig)
	delegate := newDelegate(pipeline, ex.clock)

	runErr := ex.run(ctx, logger, delegate)
	spanErr = runErr

	ex.teardown(logger)

	status, errorKind, message := classifyOutcome(runErr)
	message = delegate.redact(message)

	// A phase exiting non-zero already closed the log with its own
	// step_failed entry; everything else gets a terminal error entry so
	// the tail explains the status.
	var phaseFailed yard.BuildFailedError
	if runErr != nil && !errors.As(runErr, &phaseFailed) {
		delegate.Errorf("%s", message)
	}

	delegate.Close()
	pipeline.Close()

	if err := ex.build.Finish(status, errorKind, message); err != nil {
		// Lost the race to finalise, e.g. the reconciler abandoned the
		// build while it was running. Whoever won has already reported.
		logger.Error("failed-to-finish-build", err, lager.Data{"status": string(status)})
		return
	}

	logger.Info("finished", lager.Data{
		"status":   string(status),
		"duration": ex.build.Duration().String(),
	})

	metric.BuildFinished{Build: ex.build}.Emit(logger, metric.Metrics)
	metric.RecordBuildDuration(ctx, ex.build.Duration(), ex.build.ProjectName(), string(status), string(ex.build.TriggerKind()))

	// The build context is often cancelled or expired by now; reporting
	// happens regardless, on a fresh context.
	ex.reporter.BuildFinished(lagerctx.NewContext(context.Background(), logger), ex.build)
}

// run is the execution recipe. The first error is the build's outcome;
// teardown and finalisation stay with the caller.
func (ex *executor) run(ctx context.Context, logger lager.Logger, delegate *delegate) error {
	if ex.build.CancelRequested() {
		logger.Info("cancel-already-requested")
		return context.Canceled
	}

	project, found, err := ex.projects.GetProject(ex.build.ProjectID())
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	if !found {
		return fmt.Errorf("project %d is gone", ex.build.ProjectID())
	}

	config := project.Config()
	if err := config.ApplyProfile(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, ex.deadline(config.MaxDuration))
	defer cancel()

	delegate.Info("fetching %s@%s", config.Name, ex.build.Commit())

	tree, err := ex.materialiser.Materialise(ctx, repos.RemoteRepo{
		ID:       config.ID,
		Name:     config.Name,
		CloneURL: config.CloneURL,
	}, ex.build.Commit())
	if err != nil {
		return err
	}
	ex.tree = tree

	image, phases, artifactsDir, err := ex.effectiveConfig(logger, config, tree.Path())
	if err != nil {
		return err
	}

	artifactsHost, err := artifactsHostDir(tree.Path(), artifactsDir)
	if err != nil {
		return err
	}

	if err := ex.build.UpdateProgress(len(phases), 0, 0); err != nil {
		logger.Error("failed-to-update-progress", err)
	}

	bundle, err := ex.vault.Materialise(project)
	if err != nil {
		return fmt.Errorf("materialise secrets: %w", err)
	}
	ex.bundle = bundle
	delegate.RedactWith(bundle.RedactionValues())

	for _, name := range config.RequiredSecrets {
		if _, found := bundle.Lookup(name); !found {
			return yard.MissingSecretError{Name: name}
		}
	}

	delegate.Info("provisioning container from %s", image)

	container, err := ex.runtime.Provision(ctx, runtime.ContainerSpec{
		Name:            containerName(ex.build.ID()),
		Image:           image,
		BuildID:         ex.build.ID(),
		WorkingTree:     tree.Path(),
		Mounts:          cacheMounts(config.Name),
		Env:             ex.buildEnv(bundle, config.Profile),
		AllowHostEngine: config.AllowDocker,
	})
	if err != nil {
		return fmt.Errorf("provision container: %w", err)
	}
	ex.container = container

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return err
		}

		phaseStart := ex.clock.Now()
		delegate.StartPhase(logger, phase)

		process, err := container.Exec(ctx, runtime.ExecSpec{
			Path:  "/bin/sh",
			Args:  []string{"-c", phase.Run},
			Dir:   phase.Workdir,
			Stdin: runtime.StdinNone,
		}, runtime.ProcessIO{
			Stdout: delegate.Stdout(),
			Stderr: delegate.Stderr(),
		})
		if err != nil {
			return fmt.Errorf("exec phase %q: %w", phase.Name, err)
		}

		result, err := process.Wait(ctx)
		metric.RecordPhaseDuration(ctx, ex.build.ProjectName(), phase.Name, ex.clock.Since(phaseStart))
		if err != nil {
			return fmt.Errorf("phase %q: %w", phase.Name, err)
		}

		if result.ExitStatus != 0 {
			delegate.FailPhase(logger, phase.Name, result.ExitStatus)
			if err := ex.build.UpdateProgress(len(phases), i, 1); err != nil {
				logger.Error("failed-to-update-progress", err)
			}
			return yard.BuildFailedError{Phase: phase.Name, ExitStatus: result.ExitStatus}
		}

		delegate.FinishPhase(logger, phase.Name, ex.clock.Since(phaseStart))
		if err := ex.build.UpdateProgress(len(phases), i+1, 0); err != nil {
			logger.Error("failed-to-update-progress", err)
		}
	}

	return ex.harvestArtifacts(logger, delegate, artifactsHost)
}

// effectiveConfig settles what actually runs: project settings already
// filled from the profile, overridden by the working tree's manifest when
// one exists, with the server default image as the last resort.
func (ex *executor) effectiveConfig(logger lager.Logger, config yard.Project, treePath string) (string, []yard.Phase, string, error) {
	image := config.Image
	phases := config.Phases
	artifactsDir := yard.DefaultArtifactsDir

	manifest, found, err := loadManifest(treePath)
	if err != nil {
		return "", nil, "", err
	}

	if found {
		logger.Debug("using-build-manifest", lager.Data{"path": yard.BuildConfigFilename})
		if manifest.Image != "" {
			image = manifest.Image
		}
		if len(manifest.Phases) > 0 {
			phases = manifest.EffectivePhases()
		}
		if manifest.Artifacts != "" {
			artifactsDir = manifest.Artifacts
		}
	}

	if image == "" {
		image = ex.config.DefaultImage
	}

	if len(phases) == 0 {
		return "", nil, "", yard.ValidationError{Reason: "no build phases configured"}
	}

	for _, phase := range phases {
		if err := phase.Validate(); err != nil {
			return "", nil, "", yard.ValidationError{Reason: err.Error()}
		}
	}

	return image, phases, artifactsDir, nil
}

// loadManifest reads the optional build manifest at the root of the working
// tree. A missing file is not an error; an unreadable tree is the
// infrastructure's fault and an unparsable manifest is the user's.
func loadManifest(treePath string) (yard.BuildConfig, bool, error) {
	data, err := os.ReadFile(filepath.Join(treePath, yard.BuildConfigFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return yard.BuildConfig{}, false, nil
	}
	if err != nil {
		return yard.BuildConfig{}, false, fmt.Errorf("read build manifest: %w", err)
	}

	manifest, err := yard.ParseBuildConfig(data)
	if err != nil {
		return yard.BuildConfig{}, false, yard.ValidationError{Reason: err.Error()}
	}

	return manifest, true, nil
}

func (ex *executor) buildEnv(bundle *creds.SecretBundle, profile string) []string {
	env := append([]string{}, bundle.Env()...)
	env = append(env,
		fmt.Sprintf("BUILD_ID=%d", ex.build.ID()),
		"BUILD_COMMIT="+ex.build.Commit(),
		"BUILD_BRANCH="+ex.build.Branch(),
		"BUILD_PROFILE="+profile,
	)
	if ex.build.PRNumber() != 0 {
		env = append(env, fmt.Sprintf("BUILD_PR_NUMBER=%d", ex.build.PRNumber()))
	}
	return env
}

// deadline is the effective hard deadline for this build: the project's
// configured maximum, defaulted when absent and capped by the server.
func (ex *executor) deadline(projectMax time.Duration) time.Duration {
	deadline := projectMax
	if deadline <= 0 {
		deadline = ex.config.DefaultTimeout
	}
	if deadline <= 0 {
		deadline = DefaultBuildTimeout
	}
	if ex.config.MaxTimeout > 0 && deadline > ex.config.MaxTimeout {
		deadline = ex.config.MaxTimeout
	}
	return deadline
}

// harvestArtifacts copies every regular file under the working tree's
// artifacts directory into the artifact store and records a row per file.
// No artifacts directory means no artifacts; a copy failure fails the
// build, because a recorded-but-missing artifact would be worse.
func (ex *executor) harvestArtifacts(logger lager.Logger, delegate *delegate, hostDir string) error {
	if ex.config.ArtifactsRoot == "" {
		return nil
	}

	if _, err := os.Stat(hostDir); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("stat artifacts directory: %w", err)
	}

	destRoot := filepath.Join(ex.config.ArtifactsRoot, strconv.Itoa(ex.build.ID()))
	expiresAt := ex.clock.Now().Add(ex.config.ArtifactRetention)

	count := 0
	err := filepath.WalkDir(hostDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(hostDir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		dest := filepath.Join(destRoot, filepath.FromSlash(name))
		size, err := copyFile(dest, p)
		if err != nil {
			return err
		}

		if _, err := ex.build.SaveArtifact(name, dest, size, expiresAt); err != nil {
			return fmt.Errorf("record artifact %q: %w", name, err)
		}

		delegate.Info("saved artifact %s (%d bytes)", name, size)
		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("harvest artifacts: %w", err)
	}

	if count > 0 {
		logger.Info("artifacts-harvested", lager.Data{"count": count})
	}
	return nil
}

func copyFile(dest, src string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, err
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return 0, err
	}

	return size, out.Close()
}

// teardown releases everything the recipe acquired. It runs on a fresh
// context and never influences the recorded outcome: the first terminal
// classification wins, and leftovers are the reaper's to collect.
func (ex *executor) teardown(logger lager.Logger) {
	logger = logger.Session("teardown")

	ctx, cancel := context.WithTimeout(lagerctx.NewContext(context.Background(), logger), teardownTimeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "build.teardown", nil)
	defer span.End()

	var errs error

	if ex.container != nil {
		if err := ex.container.Stop(ctx); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("stop container: %w", err))
		}
		if err := ex.container.Remove(ctx); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("remove container: %w", err))
		}
	}

	if ex.tree != nil {
		if err := ex.tree.Release(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("release working tree: %w", err))
		}
	}

	if ex.bundle != nil {
		ex.bundle.Zeroise()
	}

	if errs != nil {
		logger.Error("teardown-incomplete", errs)
	}
}

func containerName(buildID int) string {
	return fmt.Sprintf("slipway-build-%d", buildID)
}

// volumeSlugPattern collapses project name characters the engine CLI
// rejects in volume names, "/" in particular.
var volumeSlugPattern = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func volumeSlug(project string) string {
	return volumeSlugPattern.ReplaceAllString(project, "-")
}

// cacheMounts names the two per-project dependency cache volumes. The
// engine creates named volumes on first use, so a project's first build
// warms what every later build reuses.
func cacheMounts(project string) []runtime.Mount {
	slug := volumeSlug(project)
	return []runtime.Mount{
		{Source: "slipway-cache-pkg-" + slug, Target: path.Join(workspacePath, ".cache", "pkg")},
		{Source: "slipway-cache-mod-" + slug, Target: path.Join(workspacePath, ".cache", "mod")},
	}
}

// artifactsHostDir maps the workspace-relative artifacts directory to its
// host path under the working tree, rejecting escapes.
func artifactsHostDir(treePath, dir string) (string, error) {
	joined := filepath.Join(treePath, filepath.FromSlash(dir))
	if joined != treePath && !strings.HasPrefix(joined, treePath+string(filepath.Separator)) {
		return "", yard.ValidationError{Reason: fmt.Sprintf("artifacts directory %q escapes the working tree", dir)}
	}
	return joined, nil
}
