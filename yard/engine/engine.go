// Package engine drives a claimed build from running to a terminal status:
// materialise the working tree, resolve secrets, provision a container, run
// the configured phases, harvest artifacts, tear down. The executor is the
// only writer of terminal statuses for running builds, so every status a
// caller observes was reached through the build state machine.
package engine

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/slipway/slipway/yard/creds"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/report"
	"github.com/slipway/slipway/yard/repos"
	"github.com/slipway/slipway/yard/runtime"
)

const (
	// DefaultImage runs builds whose project and manifest name no image.
	DefaultImage = "alpine:3.20"

	// DefaultBuildTimeout bounds builds whose project declares no
	// maximum duration.
	DefaultBuildTimeout = 15 * time.Minute

	// DefaultMaxDuration caps every build, including those whose project
	// asks for more.
	DefaultMaxDuration = 2 * time.Hour

	// DefaultArtifactRetention is how long harvested artifacts are kept
	// before the retention sweeper may delete them.
	DefaultArtifactRetention = 7 * 24 * time.Hour
)

// Config tunes build execution. The zero value disables artifact harvesting
// and bounds nothing sensibly; start from NewConfig.
type Config struct {
	// DefaultImage is the container image for projects that name none.
	DefaultImage string

	// DefaultTimeout is the build deadline applied when the project
	// declares no maximum duration.
	DefaultTimeout time.Duration

	// MaxTimeout caps the per-build deadline regardless of what the
	// project asks for. Zero means uncapped.
	MaxTimeout time.Duration

	// ArtifactsRoot is the host directory harvested artifacts are copied
	// into, one subdirectory per build. Empty disables harvesting.
	ArtifactsRoot string

	// ArtifactRetention sets expires_at on every harvested artifact.
	ArtifactRetention time.Duration
}

// NewConfig returns the default tuning with the given artifact store root.
func NewConfig(artifactsRoot string) Config {
	return Config{
		DefaultImage:      DefaultImage,
		DefaultTimeout:    DefaultBuildTimeout,
		MaxTimeout:        DefaultMaxDuration,
		ArtifactsRoot:     artifactsRoot,
		ArtifactRetention: DefaultArtifactRetention,
	}
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Engine

// Engine turns claimed builds into Runnables bound to this server's
// container runtime, materialiser, vault and log hub.
type Engine interface {
	NewBuild(build db.Build) Runnable
}

//counterfeiter:generate . Runnable

// Runnable executes one build. Run returns once the build has reached a
// terminal status (or was found to be unrunnable); cancelling ctx requests
// cooperative cancellation, and the deadline for the build itself is
// derived from project configuration inside Run.
type Runnable interface {
	Run(ctx context.Context)
}

type engine struct {
	runtime      runtime.Engine
	materialiser repos.Materialiser
	vault        creds.Vault
	projects     db.ProjectFactory
	hub          *logstream.Hub
	streamConfig logstream.Config
	reporter     report.Reporter
	clock        clock.Clock
	config       Config
}

func NewEngine(
	rt runtime.Engine,
	materialiser repos.Materialiser,
	vault creds.Vault,
	projects db.ProjectFactory,
	hub *logstream.Hub,
	streamConfig logstream.Config,
	reporter report.Reporter,
	clk clock.Clock,
	config Config,
) Engine {
	return &engine{
		runtime:      rt,
		materialiser: materialiser,
		vault:        vault,
		projects:     projects,
		hub:          hub,
		streamConfig: streamConfig,
		reporter:     reporter,
		clock:        clk,
		config:       config,
	}
}

func (engine *engine) NewBuild(build db.Build) Runnable {
	return &executor{
		build:        build,
		runtime:      engine.runtime,
		materialiser: engine.materialiser,
		vault:        engine.vault,
		projects:     engine.projects,
		hub:          engine.hub,
		streamConfig: engine.streamConfig,
		reporter:     engine.reporter,
		clock:        engine.clock,
		config:       engine.config,
	}
}
