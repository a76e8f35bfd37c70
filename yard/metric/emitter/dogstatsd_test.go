package emitter_test

import (
	"net"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/metric/emitter"
)

var _ = Describe("DogstatsdEmitter", func() {
	var (
		logger *lagertest.TestLogger
		agent  net.PacketConn
		dog    metric.Emitter
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("emitter-test")

		var err error
		agent, err = net.ListenPacket("udp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { agent.Close() })

		_, port, err := net.SplitHostPort(agent.LocalAddr().String())
		Expect(err).NotTo(HaveOccurred())

		config := &emitter.DogstatsdConfig{
			Host:   "127.0.0.1",
			Port:   port,
			Prefix: "slipway.",
		}

		dog, err = config.NewEmitter(nil)
		Expect(err).NotTo(HaveOccurred())
	})

	readDatagram := func() string {
		buf := make([]byte, 4096)
		Expect(agent.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		n, _, err := agent.ReadFrom(buf)
		Expect(err).NotTo(HaveOccurred())
		return string(buf[:n])
	}

	It("requires both agent host and port", func() {
		Expect((&emitter.DogstatsdConfig{Host: "127.0.0.1"}).IsConfigured()).To(BeFalse())
		Expect((&emitter.DogstatsdConfig{Port: "8125"}).IsConfigured()).To(BeFalse())
		Expect((&emitter.DogstatsdConfig{Host: "127.0.0.1", Port: "8125"}).IsConfigured()).To(BeTrue())
	})

	It("ships the event as a namespaced gauge with its attributes as tags", func() {
		dog.Emit(logger, metric.Event{
			Name:  "build finished",
			Value: 90000,
			Attributes: map[string]string{
				"project": "slipway/widgets",
			},
		})

		datagram := readDatagram()
		Expect(datagram).To(HavePrefix("slipway.build_finished:90000|g"))
		Expect(datagram).To(ContainSubstring("project:slipway/widgets"))
	})

	It("flattens event names to statsd-safe identifiers", func() {
		dog.Emit(logger, metric.Event{Name: "failed mirror fetches", Value: 2})

		Expect(readDatagram()).To(HavePrefix("slipway.failed_mirror_fetches:2|g"))
	})
})
