package dockerrt_test

import (
	"time"

	"github.com/slipway/slipway/yard/runtime/dockerrt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("NewConfig", func() {
		It("returns a config with the given binary and socket", func() {
			cfg := dockerrt.NewConfig("podman", "/run/podman/podman.sock")
			Expect(cfg.Binary).To(Equal("podman"))
			Expect(cfg.Socket).To(Equal("/run/podman/podman.sock"))
		})

		It("defaults the binary to 'docker' when empty", func() {
			cfg := dockerrt.NewConfig("", "")
			Expect(cfg.Binary).To(Equal("docker"))
		})

		It("defaults the workspace dir", func() {
			cfg := dockerrt.NewConfig("", "")
			Expect(cfg.WorkspaceDir).To(Equal(dockerrt.DefaultWorkspaceDir))
		})

		It("defaults StopTimeout and KillGrace to 10 seconds", func() {
			cfg := dockerrt.NewConfig("", "")
			Expect(cfg.StopTimeout).To(Equal(10 * time.Second))
			Expect(cfg.KillGrace).To(Equal(10 * time.Second))
		})

		It("defaults DrainTimeout to 5 seconds", func() {
			cfg := dockerrt.NewConfig("", "")
			Expect(cfg.DrainTimeout).To(Equal(5 * time.Second))
		})
	})

	Describe("DefaultWorkspaceDir constant", func() {
		It("equals /workspace", func() {
			Expect(dockerrt.DefaultWorkspaceDir).To(Equal("/workspace"))
		})
	})
})
