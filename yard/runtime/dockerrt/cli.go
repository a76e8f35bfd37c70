package dockerrt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/unix"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . CLI

// CLI abstracts invocations of the container engine binary so the engine,
// containers and processes can be tested without one.
type CLI interface {
	// Run invokes the engine and waits, returning trimmed stdout. A
	// non-zero exit is an error carrying the exec.ExitError and the
	// engine's stderr output.
	Run(ctx context.Context, args ...string) (string, error)

	// Start launches a long-lived invocation with the given streams
	// wired up. The returned Cmd holds one concurrency slot until Wait
	// returns.
	Start(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) (Cmd, error)
}

//counterfeiter:generate . Cmd

// Cmd is one in-flight engine invocation, running in its own process
// group so the whole tree can be signalled at once.
type Cmd interface {
	// Wait blocks until the invocation exits. A non-zero exit status is
	// a result, not an error.
	Wait() (int, error)

	// Signal delivers sig to the invocation's process group.
	Signal(sig syscall.Signal) error
}

type cli struct {
	binary string
	socket string
	slots  *semaphore.Weighted
}

// NewCLI builds the real engine CLI runner described by config.
func NewCLI(config Config) CLI {
	max := config.MaxConcurrentInvocations
	if max <= 0 {
		max = DefaultMaxConcurrentInvocations
	}
	return &cli{
		binary: config.Binary,
		socket: config.Socket,
		slots:  semaphore.NewWeighted(max),
	}
}

func (c *cli) Run(ctx context.Context, args ...string) (string, error) {
	if err := c.slots.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.slots.Release(1)

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.binary, c.globalArgs(args)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", c.binary, args[0], err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (c *cli) Start(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) (Cmd, error) {
	if err := c.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	cmd := exec.Command(c.binary, c.globalArgs(args)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		c.slots.Release(1)
		return nil, fmt.Errorf("start %s %s: %w", c.binary, args[0], err)
	}

	return &startedCmd{cmd: cmd, release: func() { c.slots.Release(1) }}, nil
}

// globalArgs prepends the engine-level flags shared by every invocation.
func (c *cli) globalArgs(args []string) []string {
	if c.socket == "" {
		return args
	}
	return append([]string{"--host", "unix://" + c.socket}, args...)
}

type startedCmd struct {
	cmd     *exec.Cmd
	release func()
	once    sync.Once
}

func (s *startedCmd) Wait() (int, error) {
	err := s.cmd.Wait()
	s.once.Do(s.release)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}

	return 0, nil
}

func (s *startedCmd) Signal(sig syscall.Signal) error {
	return unix.Kill(-s.cmd.Process.Pid, sig)
}
