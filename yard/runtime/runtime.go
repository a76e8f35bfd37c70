// Package runtime defines the execution surface builds run against.
// Concrete engines live in subpackages; everything above them programs
// against these interfaces.
package runtime

import (
	"context"
	"io"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Engine

// Engine provisions and finds build containers.
type Engine interface {
	// Provision starts a container parked on a long-running no-op
	// process, so that later Exec calls have a stable target.
	Provision(ctx context.Context, spec ContainerSpec) (Container, error)

	// Lookup finds a previously provisioned container by name.
	Lookup(ctx context.Context, name string) (Container, bool, error)

	// Ping verifies the engine is reachable.
	Ping(ctx context.Context) error
}

//counterfeiter:generate . Container

type Container interface {
	Handle() string

	// Exec runs a command inside the container, streaming line-delimited
	// output through io. Cancelling ctx kills the whole exec process
	// tree; the deadline on ctx bounds the command.
	Exec(ctx context.Context, spec ExecSpec, io ProcessIO) (Process, error)

	// Which probes whether a program is available inside the container.
	Which(ctx context.Context, program string) (bool, error)

	// Stop and Remove are idempotent; stopping or removing a container
	// that is already gone is not an error.
	Stop(ctx context.Context) error
	Remove(ctx context.Context) error
}

//counterfeiter:generate . Process

type Process interface {
	ID() string
	Wait(ctx context.Context) (ProcessResult, error)
}

// RetryableError is implemented by engine errors that are worth retrying,
// such as transient daemon or network failures.
type RetryableError interface {
	error
	IsRetryable() bool
}

// ContainerSpec describes one build container.
type ContainerSpec struct {
	Name    string
	Image   string
	BuildID int

	// WorkingTree is the host path of the materialised repository. It is
	// mounted at the workspace root and anchors host-to-container path
	// translation.
	WorkingTree string

	// Mounts carries the dependency caches and any extra volumes. The
	// working tree mount is implied by WorkingTree.
	Mounts []Mount

	Env []string

	// AllowHostEngine exposes the host container engine socket inside
	// the container, for builds that drive it themselves.
	AllowHostEngine bool
}

type Mount struct {
	Source   string
	Target   string
	ReadOnly bool
}

type ExecSpec struct {
	Path  string
	Args  []string
	Dir   string
	Env   []string
	Stdin StdinMode
}

// StdinMode selects what the exec'd process sees on standard input.
type StdinMode string

const (
	StdinNone    StdinMode = "none"
	StdinInherit StdinMode = "inherit"
)

type ProcessIO struct {
	Stdout io.Writer
	Stderr io.Writer
}

type ProcessResult struct {
	ExitStatus int
}
