package dockerrt

import "time"

const (
	// DefaultWorkspaceDir is the container-side mount point of the
	// materialised working tree. Workdir translation maps host paths
	// under the working tree to paths under this directory.
	DefaultWorkspaceDir = "/workspace"

	// DefaultMaxConcurrentInvocations bounds how many engine CLI
	// processes may be in flight at once across the whole server.
	DefaultMaxConcurrentInvocations = 6

	// buildLabelKey is the container label used to identify containers
	// managed by this server. The value is the owning build's ID, which
	// the reaper uses to decide whether a container is a stray.
	buildLabelKey = "slipway.build"

	// hostEngineSocket is the conventional engine socket path, used both
	// as the default --host target and as the in-container mount point
	// when a build is allowed to drive the host engine.
	hostEngineSocket = "/var/run/docker.sock"
)

// pauseCommand keeps a provisioned container alive so subsequent exec
// calls have a stable target, while still exiting promptly on TERM.
const pauseCommand = `trap 'exit 0' TERM; sleep 86400 & wait`

// Config holds the configuration for running builds through a container
// engine CLI.
type Config struct {
	// Binary is the engine executable to shell out to.
	Binary string

	// Socket, when non-empty, is passed to every invocation as
	// --host unix://<Socket>. Empty uses the CLI's own default.
	Socket string

	// WorkspaceDir is the container-side working tree mount point. If
	// empty, DefaultWorkspaceDir is used.
	WorkspaceDir string

	// MaxConcurrentInvocations bounds in-flight CLI processes. If zero,
	// DefaultMaxConcurrentInvocations is used.
	MaxConcurrentInvocations int64

	// StopTimeout is how long the engine waits between TERM and KILL
	// when stopping a container.
	StopTimeout time.Duration

	// KillGrace is how long a cancelled exec's CLI process group is
	// given after SIGTERM before it is SIGKILLed.
	KillGrace time.Duration

	// DrainTimeout bounds the wait for buffered output to flush once a
	// cancelled exec has been killed.
	DrainTimeout time.Duration
}

// NewConfig creates a Config with the given binary and socket. If binary
// is empty, it defaults to "docker".
func NewConfig(binary, socket string) Config {
	if binary == "" {
		binary = "docker"
	}
	return Config{
		Binary:                   binary,
		Socket:                   socket,
		WorkspaceDir:             DefaultWorkspaceDir,
		MaxConcurrentInvocations: DefaultMaxConcurrentInvocations,
		StopTimeout:              10 * time.Second,
		KillGrace:                10 * time.Second,
		DrainTimeout:             5 * time.Second,
	}
}
