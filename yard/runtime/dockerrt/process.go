package dockerrt

import (
	"context"
	"io"
	"strconv"
	"syscall"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/slipway/slipway/tracing"
	"github.com/slipway/slipway/yard/runtime"
)

// process is one exec'd command. A reap goroutine joins the CLI
// subprocess, closes the output pipes so the line copiers see EOF, and
// publishes the exit status before closing done.
type process struct {
	id        string
	container string
	cli       CLI
	config    Config

	cmd     Cmd
	stdoutW *io.PipeWriter
	stderrW *io.PipeWriter
	copies  *errgroup.Group

	done       chan struct{}
	exitStatus int
	waitErr    error
}

// Compile-time check that process satisfies runtime.Process.
var _ runtime.Process = (*process)(nil)

func (p *process) ID() string {
	return p.id
}

func (p *process) reap() {
	status, err := p.cmd.Wait()

	p.stdoutW.Close()
	p.stderrW.Close()

	if copyErr := p.copies.Wait(); copyErr != nil && err == nil {
		err = copyErr
	}

	p.exitStatus = status
	p.waitErr = err
	close(p.done)
}

// Wait blocks until the exec'd command exits and returns its exit code.
// If the context is cancelled, the CLI process group is killed, the
// container is brought down so the command's in-container process tree
// dies with it, and the context error is returned.
func (p *process) Wait(ctx context.Context) (runtime.ProcessResult, error) {
	logger := lagerctx.FromContext(ctx).Session("process-wait", lager.Data{
		"container":  p.container,
		"process-id": p.id,
	})

	ctx, span := tracing.StartSpan(ctx, "docker.process.wait", tracing.Attrs{
		"container":  p.container,
		"process-id": p.id,
	})
	var spanErr error
	defer func() { tracing.End(span, spanErr) }()

	select {
	case <-ctx.Done():
		p.kill(logger)
		spanErr = ctx.Err()
		return runtime.ProcessResult{}, ctx.Err()

	case <-p.done:
		if p.waitErr != nil {
			logger.Error("failed-to-wait-for-exec", p.waitErr)
			spanErr = p.waitErr
			return runtime.ProcessResult{}, wrapIfTransient(p.waitErr)
		}

		span.SetAttributes(attribute.String("exit-code", strconv.Itoa(p.exitStatus)))
		return runtime.ProcessResult{ExitStatus: p.exitStatus}, nil
	}
}

// kill tears the exec down: TERM to the CLI process group, KILL after the
// grace window, then a bounded drain so buffered output reaches the log
// writers. The command inside the container outlives its CLI, so the
// container itself is killed with a bounded timeout afterwards.
func (p *process) kill(logger lager.Logger) {
	if err := p.cmd.Signal(syscall.SIGTERM); err != nil {
		logger.Debug("term-failed", lager.Data{"error": err.Error()})
	}

	select {
	case <-p.done:
	case <-time.After(p.config.KillGrace):
		logger.Info("killing-exec-after-grace")
		if err := p.cmd.Signal(syscall.SIGKILL); err != nil {
			logger.Debug("kill-failed", lager.Data{"error": err.Error()})
		}

		select {
		case <-p.done:
		case <-time.After(p.config.DrainTimeout):
			logger.Error("exec-did-not-exit", nil)
		}
	}

	killCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := p.cli.Run(killCtx, "kill", "--signal", "TERM", p.container); err != nil && !isNotFound(err) {
		logger.Error("failed-to-kill-container-on-cancel", err)
	}
}
