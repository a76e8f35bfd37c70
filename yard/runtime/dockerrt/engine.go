package dockerrt

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"

	"github.com/slipway/slipway/tracing"
	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/runtime"
)

// Engine provisions build containers by shelling out to the container
// engine CLI.
type Engine struct {
	cli    CLI
	config Config
}

// Compile-time check that Engine satisfies runtime.Engine.
var _ runtime.Engine = (*Engine)(nil)

// NewEngine creates an Engine that drives containers through the given
// CLI.
func NewEngine(cli CLI, config Config) *Engine {
	if config.WorkspaceDir == "" {
		config.WorkspaceDir = DefaultWorkspaceDir
	}
	return &Engine{cli: cli, config: config}
}

// Provision starts a detached container parked on the pause command and
// labelled with the owning build so the reaper can find strays. The
// working tree is mounted at the workspace root; cache mounts and the
// host engine socket follow the spec of the container.
func (e *Engine) Provision(ctx context.Context, spec runtime.ContainerSpec) (runtime.Container, error) {
	logger := lagerctx.FromContext(ctx).Session("provision", lager.Data{
		"name":  spec.Name,
		"image": spec.Image,
	})

	ctx, span := tracing.StartSpan(ctx, "docker.provision", tracing.Attrs{
		"container-name": spec.Name,
		"image":          spec.Image,
	})
	var spanErr error
	defer func() { tracing.End(span, spanErr) }()

	startTime := time.Now()

	args := []string{
		"run", "--detach",
		"--name", spec.Name,
		"--workdir", e.config.WorkspaceDir,
		"--label", fmt.Sprintf("%s=%d", buildLabelKey, spec.BuildID),
		"--volume", fmt.Sprintf("%s:%s", spec.WorkingTree, e.config.WorkspaceDir),
	}

	for _, mount := range spec.Mounts {
		volume := fmt.Sprintf("%s:%s", mount.Source, mount.Target)
		if mount.ReadOnly {
			volume += ":ro"
		}
		args = append(args, "--volume", volume)
	}

	if spec.AllowHostEngine {
		socket := e.config.Socket
		if socket == "" {
			socket = hostEngineSocket
		}
		args = append(args, "--volume", fmt.Sprintf("%s:%s", socket, hostEngineSocket))
	}

	for _, env := range spec.Env {
		args = append(args, "--env", env)
	}

	args = append(args, "--entrypoint", "/bin/sh", spec.Image, "-c", pauseCommand)

	if _, err := e.cli.Run(ctx, args...); err != nil {
		logger.Error("failed-to-provision-container", err)
		metric.Metrics.FailedContainers.Inc()
		spanErr = err
		return nil, wrapIfTransient(fmt.Errorf("run pause container: %w", err))
	}

	metric.Metrics.ContainersProvisioned.Inc()
	metric.RecordContainersProvisioned(ctx, 1)
	metric.RecordProvisionDuration(ctx, time.Since(startTime))

	logger.Debug("provisioned", lager.Data{"took": time.Since(startTime).String()})

	return newContainer(spec.Name, spec.WorkingTree, e.cli, e.config), nil
}

// Lookup finds a container by name, recovering its working tree mount so
// workdir translation keeps working after a reattach.
func (e *Engine) Lookup(ctx context.Context, name string) (runtime.Container, bool, error) {
	format := fmt.Sprintf(`{{range .Mounts}}{{if eq .Destination %q}}{{.Source}}{{end}}{{end}}`, e.config.WorkspaceDir)

	workTree, err := e.cli.Run(ctx, "container", "inspect", "--format", format, name)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, wrapIfTransient(fmt.Errorf("inspect container: %w", err))
	}

	return newContainer(name, workTree, e.cli, e.config), true, nil
}

// Ping verifies the engine daemon is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	if _, err := e.cli.Run(ctx, "version", "--format", "{{.Server.Version}}"); err != nil {
		return wrapIfTransient(fmt.Errorf("engine version: %w", err))
	}
	return nil
}
