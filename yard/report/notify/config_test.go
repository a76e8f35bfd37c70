package notify_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/slipway/slipway/yard/report/notify"
)

var _ = Describe("ConfigFromEnv", func() {
	setenv := func(name, value string) {
		Expect(os.Setenv(name, value)).To(Succeed())
		DeferCleanup(os.Unsetenv, name)
	}

	It("defaults to a tagged subject and no recipient", func() {
		config, err := notify.ConfigFromEnv()
		Expect(err).ToNot(HaveOccurred())

		Expect(config.SubjectPrefix).To(Equal("[slipway]"))
		Expect(config.DefaultRecipient).To(BeEmpty())
	})

	It("reads the delivery details from the environment", func() {
		setenv("SLIPWAY_NOTIFY_DEFAULT_RECIPIENT", "oncall@example.com")
		setenv("SLIPWAY_NOTIFY_SUBJECT_PREFIX", "[ci]")

		config, err := notify.ConfigFromEnv()
		Expect(err).ToNot(HaveOccurred())

		Expect(config.DefaultRecipient).To(Equal("oncall@example.com"))
		Expect(config.SubjectPrefix).To(Equal("[ci]"))
	})
})
