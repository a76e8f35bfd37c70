package engine

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/creds"
	"github.com/slipway/slipway/yard/logstream"
)

// delegate is the executor's pen: every entry a build leaves behind goes
// through it, so redaction and step attribution live in exactly one place.
// Persistence and fan-out are the pipeline's problem.
type delegate struct {
	pipeline *logstream.Pipeline
	clock    clock.Clock

	mu       sync.Mutex
	redactor *creds.Redactor
	step     string

	stdout *eventWriter
	stderr *eventWriter
}

func newDelegate(pipeline *logstream.Pipeline, clk clock.Clock) *delegate {
	return &delegate{
		pipeline: pipeline,
		clock:    clk,
		redactor: creds.NewRedactor(nil),
	}
}

// RedactWith arms the delegate with the secret values to scrub. Until it is
// called nothing is redacted, which is safe because no secret exists before
// the vault has materialised the bundle.
func (d *delegate) RedactWith(values []string) {
	d.mu.Lock()
	d.redactor = creds.NewRedactor(values)
	d.mu.Unlock()
}

func (d *delegate) StartPhase(logger lager.Logger, phase yard.Phase) {
	d.setStep(phase.Name)
	d.append(yard.EventStepStarted, phase.Name, "", phase.Run)
	logger.Info("phase-started", lager.Data{"phase": phase.Name})
}

func (d *delegate) FinishPhase(logger lager.Logger, phase string, took time.Duration) {
	d.flushOutput()
	d.setStep("")
	d.append(yard.EventStepCompleted, phase, "", took.Truncate(time.Millisecond).String())
	logger.Debug("phase-completed", lager.Data{"phase": phase, "took": took.String()})
}

func (d *delegate) FailPhase(logger lager.Logger, phase string, exitStatus int) {
	d.flushOutput()
	d.setStep("")
	d.append(yard.EventStepFailed, phase, "", fmt.Sprintf("exited with status %d", exitStatus))
	logger.Info("phase-failed", lager.Data{"phase": phase, "exit-status": exitStatus})
}

func (d *delegate) Info(format string, args ...any) {
	d.append(yard.EventInfo, d.currentStep(), "", fmt.Sprintf(format, args...))
}

func (d *delegate) Warning(format string, args ...any) {
	d.append(yard.EventWarning, d.currentStep(), "", fmt.Sprintf(format, args...))
}

func (d *delegate) Errorf(format string, args ...any) {
	d.append(yard.EventError, d.currentStep(), "", fmt.Sprintf(format, args...))
}

// Stdout returns the writer build phases stream standard output through.
// Built lazily so it captures the redactor armed after secret
// materialisation.
func (d *delegate) Stdout() io.Writer {
	if d.stdout == nil {
		d.stdout = &eventWriter{delegate: d, channel: yard.ChannelStdout}
	}
	return d.stdout
}

func (d *delegate) Stderr() io.Writer {
	if d.stderr == nil {
		d.stderr = &eventWriter{delegate: d, channel: yard.ChannelStderr}
	}
	return d.stderr
}

// Close flushes any partial output line still buffered in the writers. The
// pipeline is closed by the executor, after the final entries are appended.
func (d *delegate) Close() {
	d.flushOutput()
}

func (d *delegate) flushOutput() {
	if d.stdout != nil {
		d.stdout.flush()
	}
	if d.stderr != nil {
		d.stderr.flush()
	}
}

func (d *delegate) append(kind yard.EventKind, step string, channel yard.StreamChannel, message string) {
	d.pipeline.Append(kind, step, channel, d.redact(message), d.clock.Now())
}

func (d *delegate) redact(message string) string {
	d.mu.Lock()
	redactor := d.redactor
	d.mu.Unlock()
	return redactor.Redact(message)
}

func (d *delegate) setStep(step string) {
	d.mu.Lock()
	d.step = step
	d.mu.Unlock()
}

func (d *delegate) currentStep() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step
}

// eventWriter turns a process output stream into output entries, one per
// line. Partial lines are buffered until their newline arrives or the
// writer is flushed, so a line split across writes is still one entry.
type eventWriter struct {
	delegate *delegate
	channel  yard.StreamChannel
	buf      []byte
}

func (w *eventWriter) Write(data []byte) (int, error) {
	w.buf = append(w.buf, data...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimSuffix(string(w.buf[:i]), "\r")
		w.buf = w.buf[i+1:]
		w.emit(line)
	}
	return len(data), nil
}

func (w *eventWriter) flush() {
	if len(w.buf) == 0 {
		return
	}
	line := string(w.buf)
	w.buf = w.buf[:0]
	w.emit(line)
}

func (w *eventWriter) emit(line string) {
	d := w.delegate
	d.append(yard.EventOutput, d.currentStep(), w.channel, line)
}
