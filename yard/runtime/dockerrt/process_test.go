package dockerrt_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
	"time"

	"github.com/slipway/slipway/yard/runtime"
	"github.com/slipway/slipway/yard/runtime/dockerrt"
	"github.com/slipway/slipway/yard/runtime/dockerrt/dockerrtfakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Process", func() {
	var (
		ctx       context.Context
		fakeCLI   *dockerrtfakes.FakeCLI
		fakeCmd   *dockerrtfakes.FakeCmd
		cfg       dockerrt.Config
		container runtime.Container
	)

	provision := func() runtime.Container {
		engine := dockerrt.NewEngine(fakeCLI, cfg)
		c, err := engine.Provision(ctx, runtime.ContainerSpec{
			Name:        "build-42",
			Image:       "golang:1.22",
			BuildID:     42,
			WorkingTree: "/var/lib/slipway/worktrees/build-42",
		})
		ExpectWithOffset(1, err).ToNot(HaveOccurred())
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
		fakeCLI = new(dockerrtfakes.FakeCLI)
		fakeCmd = new(dockerrtfakes.FakeCmd)
		fakeCLI.StartReturns(fakeCmd, nil)

		cfg = dockerrt.NewConfig("docker", "")
		container = provision()
	})

	Describe("Wait", func() {
		Context("when the command succeeds", func() {
			It("returns exit status 0", func() {
				process, err := container.Exec(ctx, runtime.ExecSpec{
					Path: "/bin/true",
				}, runtime.ProcessIO{})
				Expect(err).ToNot(HaveOccurred())

				result, err := process.Wait(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(result.ExitStatus).To(Equal(0))
			})
		})

		Context("when the command exits non-zero", func() {
			It("returns the exit code without an error", func() {
				fakeCmd.WaitReturns(3, nil)

				process, err := container.Exec(ctx, runtime.ExecSpec{
					Path: "/bin/false",
				}, runtime.ProcessIO{})
				Expect(err).ToNot(HaveOccurred())

				result, err := process.Wait(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(result.ExitStatus).To(Equal(3))
			})
		})

		Context("when the CLI dies without an exit status", func() {
			It("returns a retryable error for a lost daemon", func() {
				fakeCmd.WaitReturns(0, errors.New("Cannot connect to the Docker daemon at unix:///var/run/docker.sock"))

				process, err := container.Exec(ctx, runtime.ExecSpec{
					Path: "/bin/true",
				}, runtime.ProcessIO{})
				Expect(err).ToNot(HaveOccurred())

				_, err = process.Wait(ctx)
				Expect(err).To(HaveOccurred())

				var retryable runtime.RetryableError
				Expect(errors.As(err, &retryable)).To(BeTrue())
			})
		})
	})

	Describe("output streaming", func() {
		It("delivers whole lines to the provided writers", func() {
			fakeCLI.StartStub = func(_ context.Context, _ io.Reader, outW, errW io.Writer, _ ...string) (dockerrt.Cmd, error) {
				fakeCmd.WaitStub = func() (int, error) {
					fmt.Fprint(outW, "go: downloading deps\nok   yard/runtime 0.3s\n")
					fmt.Fprint(errW, "warning: flaky network\n")
					return 0, nil
				}
				return fakeCmd, nil
			}

			var stdout, stderr bytes.Buffer
			process, err := container.Exec(ctx, runtime.ExecSpec{
				Path: "/bin/sh",
				Args: []string{"-c", "make test"},
			}, runtime.ProcessIO{Stdout: &stdout, Stderr: &stderr})
			Expect(err).ToNot(HaveOccurred())

			result, err := process.Wait(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ExitStatus).To(Equal(0))

			Expect(stdout.String()).To(Equal("go: downloading deps\nok   yard/runtime 0.3s\n"))
			Expect(stderr.String()).To(Equal("warning: flaky network\n"))
		})

		It("flushes a trailing line with no newline", func() {
			fakeCLI.StartStub = func(_ context.Context, _ io.Reader, outW, _ io.Writer, _ ...string) (dockerrt.Cmd, error) {
				fakeCmd.WaitStub = func() (int, error) {
					fmt.Fprint(outW, "panic: unexpected EOF")
					return 2, nil
				}
				return fakeCmd, nil
			}

			var stdout bytes.Buffer
			process, err := container.Exec(ctx, runtime.ExecSpec{
				Path: "/bin/sh",
			}, runtime.ProcessIO{Stdout: &stdout})
			Expect(err).ToNot(HaveOccurred())

			result, err := process.Wait(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ExitStatus).To(Equal(2))

			Expect(stdout.String()).To(Equal("panic: unexpected EOF\n"))
		})
	})

	Describe("cancellation", func() {
		Context("when the exec ignores TERM", func() {
			var unblock chan struct{}

			BeforeEach(func() {
				cfg.KillGrace = 50 * time.Millisecond
				cfg.DrainTimeout = 50 * time.Millisecond
				container = provision()

				unblock = make(chan struct{})
				fakeCmd.WaitStub = func() (int, error) {
					<-unblock
					return 137, nil
				}
			})

			AfterEach(func() {
				close(unblock)
			})

			It("escalates TERM to KILL and brings the container down", func() {
				process, err := container.Exec(ctx, runtime.ExecSpec{
					Path: "/bin/sleep",
					Args: []string{"3600"},
				}, runtime.ProcessIO{})
				Expect(err).ToNot(HaveOccurred())

				cancelCtx, cancel := context.WithCancel(ctx)
				cancel()

				_, err = process.Wait(cancelCtx)
				Expect(err).To(MatchError(context.Canceled))

				By("signalling the CLI process group, TERM then KILL")
				Expect(fakeCmd.SignalCallCount()).To(Equal(2))
				Expect(fakeCmd.SignalArgsForCall(0)).To(Equal(syscall.SIGTERM))
				Expect(fakeCmd.SignalArgsForCall(1)).To(Equal(syscall.SIGKILL))

				By("killing the container so the in-container process tree dies")
				_, args := fakeCLI.RunArgsForCall(fakeCLI.RunCallCount() - 1)
				Expect(args).To(Equal([]string{"kill", "--signal", "TERM", "build-42"}))
			})
		})

		Context("when the exec dies on TERM within the grace window", func() {
			BeforeEach(func() {
				termed := make(chan struct{})
				fakeCmd.SignalStub = func(sig syscall.Signal) error {
					if sig == syscall.SIGTERM {
						close(termed)
					}
					return nil
				}
				fakeCmd.WaitStub = func() (int, error) {
					<-termed
					return 143, nil
				}
			})

			It("does not escalate to KILL", func() {
				process, err := container.Exec(ctx, runtime.ExecSpec{
					Path: "/bin/sleep",
					Args: []string{"3600"},
				}, runtime.ProcessIO{})
				Expect(err).ToNot(HaveOccurred())

				cancelCtx, cancel := context.WithCancel(ctx)
				cancel()

				_, err = process.Wait(cancelCtx)
				Expect(err).To(MatchError(context.Canceled))

				Expect(fakeCmd.SignalCallCount()).To(Equal(1))
				Expect(fakeCmd.SignalArgsForCall(0)).To(Equal(syscall.SIGTERM))
			})

			It("still kills the container", func() {
				process, err := container.Exec(ctx, runtime.ExecSpec{
					Path: "/bin/sleep",
					Args: []string{"3600"},
				}, runtime.ProcessIO{})
				Expect(err).ToNot(HaveOccurred())

				cancelCtx, cancel := context.WithCancel(ctx)
				cancel()

				_, err = process.Wait(cancelCtx)
				Expect(err).To(HaveOccurred())

				_, args := fakeCLI.RunArgsForCall(fakeCLI.RunCallCount() - 1)
				Expect(args[0]).To(Equal("kill"))
				Expect(args).To(ContainElement("build-42"))
			})

			It("tolerates the container already being gone", func() {
				fakeCLI.RunReturnsOnCall(1, "", errors.New("Error response from daemon: No such container: build-42"))

				process, err := container.Exec(ctx, runtime.ExecSpec{
					Path: "/bin/sleep",
				}, runtime.ProcessIO{})
				Expect(err).ToNot(HaveOccurred())

				cancelCtx, cancel := context.WithCancel(ctx)
				cancel()

				_, err = process.Wait(cancelCtx)
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	Describe("ID", func() {
		It("assigns each exec a distinct ID", func() {
			first, err := container.Exec(ctx, runtime.ExecSpec{Path: "/bin/true"}, runtime.ProcessIO{})
			Expect(err).ToNot(HaveOccurred())

			second, err := container.Exec(ctx, runtime.ExecSpec{Path: "/bin/true"}, runtime.ProcessIO{})
			Expect(err).ToNot(HaveOccurred())

			Expect(first.ID()).ToNot(BeEmpty())
			Expect(second.ID()).ToNot(BeEmpty())
			Expect(first.ID()).ToNot(Equal(second.ID()))
		})
	})
})
