package dockerrt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/slipway/slipway/yard/runtime"
)

// Container implements runtime.Container backed by a detached engine
// container parked on the pause command.
type Container struct {
	name     string
	workTree string
	cli      CLI
	config   Config
}

// Compile-time check that Container satisfies runtime.Container.
var _ runtime.Container = (*Container)(nil)

func newContainer(name, workTree string, cli CLI, config Config) *Container {
	return &Container{
		name:     name,
		workTree: workTree,
		cli:      cli,
		config:   config,
	}
}

func (c *Container) Handle() string {
	return c.name
}

// Exec runs a command inside the container. Each output stream is drained
// by a line copier into processIO, one Write per line, so log consumers
// see whole lines. The returned Process reports the exit status via Wait.
func (c *Container) Exec(ctx context.Context, spec runtime.ExecSpec, processIO runtime.ProcessIO) (runtime.Process, error) {
	logger := lagerctx.FromContext(ctx).Session("exec", lager.Data{
		"container": c.name,
		"path":      spec.Path,
	})

	workdir, err := c.translateWorkdir(spec.Dir)
	if err != nil {
		logger.Error("rejected-workdir", err)
		return nil, err
	}

	args := []string{"exec", "--workdir", workdir}

	var stdin io.Reader
	if spec.Stdin == runtime.StdinInherit {
		args = append(args, "--interactive")
		stdin = os.Stdin
	}

	for _, env := range spec.Env {
		args = append(args, "--env", env)
	}

	args = append(args, c.name, spec.Path)
	args = append(args, spec.Args...)

	stdout := processIO.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := processIO.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()

	cmd, err := c.cli.Start(ctx, stdin, stdoutW, stderrW, args...)
	if err != nil {
		stdoutW.Close()
		stderrW.Close()
		return nil, wrapIfTransient(fmt.Errorf("start exec: %w", err))
	}

	copies := new(errgroup.Group)
	copies.Go(func() error { return copyLines(stdout, stdoutR) })
	copies.Go(func() error { return copyLines(stderr, stderrR) })

	proc := &process{
		id:        uuid.NewString(),
		container: c.name,
		cli:       c.cli,
		config:    c.config,
		cmd:       cmd,
		stdoutW:   stdoutW,
		stderrW:   stderrW,
		copies:    copies,
		done:      make(chan struct{}),
	}

	go proc.reap()

	return proc, nil
}

// Which probes for a program on the container's PATH.
func (c *Container) Which(ctx context.Context, program string) (bool, error) {
	probe := fmt.Sprintf("command -v -- %s", shellQuote(program))

	_, err := c.cli.Run(ctx, "exec", c.name, "/bin/sh", "-c", probe)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, wrapIfTransient(fmt.Errorf("probe %s: %w", program, err))
	}

	return true, nil
}

// Stop politely stops the container, giving it StopTimeout between TERM
// and KILL. Stopping a container that is already gone is not an error.
func (c *Container) Stop(ctx context.Context) error {
	timeout := int(c.config.StopTimeout.Seconds())

	_, err := c.cli.Run(ctx, "stop", "--time", strconv.Itoa(timeout), c.name)
	if err != nil && !isNotFound(err) {
		return wrapIfTransient(fmt.Errorf("stop container: %w", err))
	}

	return nil
}

// Remove force-removes the container. Removing a container that is
// already gone is not an error.
func (c *Container) Remove(ctx context.Context) error {
	_, err := c.cli.Run(ctx, "rm", "--force", c.name)
	if err != nil && !isNotFound(err) {
		return wrapIfTransient(fmt.Errorf("remove container: %w", err))
	}

	return nil
}

// translateWorkdir maps a host path under the working tree to its
// container-side path. Empty means the workspace root; workspace paths
// pass through; relative paths resolve against the workspace; anything
// escaping the working tree is rejected.
func (c *Container) translateWorkdir(dir string) (string, error) {
	if dir == "" {
		return c.config.WorkspaceDir, nil
	}

	cleaned := filepath.Clean(dir)

	if !filepath.IsAbs(cleaned) {
		joined := path.Join(c.config.WorkspaceDir, filepath.ToSlash(cleaned))
		if joined == c.config.WorkspaceDir || strings.HasPrefix(joined, c.config.WorkspaceDir+"/") {
			return joined, nil
		}
		return "", fmt.Errorf("workdir %q escapes the workspace", dir)
	}

	if cleaned == c.config.WorkspaceDir || strings.HasPrefix(cleaned, c.config.WorkspaceDir+"/") {
		return cleaned, nil
	}

	if c.workTree != "" {
		if cleaned == c.workTree {
			return c.config.WorkspaceDir, nil
		}
		if rel, err := filepath.Rel(c.workTree, cleaned); err == nil && rel != ".." && !strings.HasPrefix(rel, "../") {
			return path.Join(c.config.WorkspaceDir, filepath.ToSlash(rel)), nil
		}
	}

	return "", fmt.Errorf("workdir %q is outside the project working tree", dir)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
