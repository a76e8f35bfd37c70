package emitter_test

import (
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/metric/emitter"
)

var _ = Describe("LagerEmitter", func() {
	var (
		logger *lagertest.TestLogger
		lgr    metric.Emitter
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("emitter-test")

		var err error
		lgr, err = (&emitter.LagerConfig{Enabled: true}).NewEmitter(nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("is configured by the enable switch alone", func() {
		Expect((&emitter.LagerConfig{}).IsConfigured()).To(BeFalse())
		Expect((&emitter.LagerConfig{Enabled: true}).IsConfigured()).To(BeTrue())
	})

	It("writes the event and its attributes as one log line", func() {
		lgr.Emit(logger, metric.Event{
			Name:  "build finished",
			Value: 90000,
			State: metric.EventStateOK,
			Attributes: map[string]string{
				"project": "slipway/widgets",
			},
		})

		Expect(logger.Buffer()).To(gbytes.Say("build finished"))
		Expect(logger.Buffer()).To(gbytes.Say(`"project":"slipway/widgets"`))
		Expect(logger.Buffer()).To(gbytes.Say(`"state":"ok"`))
		Expect(logger.Buffer()).To(gbytes.Say(`"value":90000`))
	})
})
