package emitter_test

import (
	"fmt"
	"io"
	"net"
	"net/http"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/metric/emitter"
)

var _ = Describe("PrometheusEmitter", func() {
	var (
		logger *lagertest.TestLogger
		config *emitter.PrometheusConfig
		prom   metric.Emitter

		metricsURL string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("emitter-test")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		host, port, err := net.SplitHostPort(listener.Addr().String())
		Expect(err).NotTo(HaveOccurred())
		Expect(listener.Close()).To(Succeed())

		config = &emitter.PrometheusConfig{BindIP: host, BindPort: port}
		metricsURL = fmt.Sprintf("http://%s:%s/metrics", host, port)

		prom, err = config.NewEmitter(nil)
		Expect(err).NotTo(HaveOccurred())
	})

	scrape := func() string {
		resp, err := http.Get(metricsURL)
		if err != nil {
			return ""
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return ""
		}
		return string(body)
	}

	It("requires both bind IP and port", func() {
		Expect((&emitter.PrometheusConfig{BindIP: "127.0.0.1"}).IsConfigured()).To(BeFalse())
		Expect((&emitter.PrometheusConfig{BindPort: "9100"}).IsConfigured()).To(BeFalse())
		Expect(config.IsConfigured()).To(BeTrue())
	})

	It("exposes typed metrics for the engine's events", func() {
		prom.Emit(logger, metric.Event{Name: "builds queued", Value: 3})
		prom.Emit(logger, metric.Event{Name: "build started", Value: 40})
		prom.Emit(logger, metric.Event{
			Name:       "build finished",
			Value:      90000,
			Attributes: map[string]string{"build_status": "success"},
		})
		prom.Emit(logger, metric.Event{Name: "artifacts deleted", Value: 4})

		Eventually(scrape).Should(SatisfyAll(
			ContainSubstring("slipway_builds_queued 3"),
			ContainSubstring("slipway_builds_started_total 1"),
			ContainSubstring(`slipway_builds_finished_total{status="success"} 1`),
			ContainSubstring("slipway_builds_duration_seconds_count 1"),
			ContainSubstring("slipway_gc_artifacts_deleted_total 4"),
		))
	})

	It("accumulates counter deltas across emissions", func() {
		prom.Emit(logger, metric.Event{Name: "log entries persisted", Value: 10})
		prom.Emit(logger, metric.Event{Name: "log entries persisted", Value: 5})

		Eventually(scrape).Should(ContainSubstring("slipway_logs_entries_persisted_total 15"))
	})

	It("labels response times by method, route and status", func() {
		prom.Emit(logger, metric.Event{
			Name:  "http response time",
			Value: 12,
			Attributes: map[string]string{
				"method": "GET",
				"route":  "ListBuilds",
				"status": "200",
			},
		})

		Eventually(scrape).Should(ContainSubstring(
			`slipway_http_responses_duration_seconds_count{method="GET",route="ListBuilds",status="200"} 1`,
		))
	})

	It("drops events without a typed metric", func() {
		prom.Emit(logger, metric.Event{Name: "something else", Value: 1})

		Expect(logger.Buffer()).To(gbytes.Say("unmapped-event"))
	})
})
