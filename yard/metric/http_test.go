package metric_test

import (
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"go.opentelemetry.io/otel/trace"

	"github.com/slipway/slipway/yard/metric"
	"github.com/slipway/slipway/yard/metric/metricfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WrapHandler", func() {
	var (
		logger  *lagertest.TestLogger
		monitor *metric.Monitor
		emitter *metricfakes.FakeEmitter

		wrapped http.Handler
		request *http.Request
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("http")
		monitor = metric.NewMonitor()

		emitter = new(metricfakes.FakeEmitter)
		factory := new(metricfakes.FakeEmitterFactory)
		factory.DescriptionReturns("fake")
		factory.IsConfiguredReturns(true)
		factory.NewEmitterReturns(emitter, nil)
		monitor.RegisterEmitter(factory)

		err := monitor.Initialize(logger, "yard-1", nil, 100)
		Expect(err).ToNot(HaveOccurred())

		wrapped = metric.WrapHandler(logger, monitor, "GetBuild", http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
		))

		request = httptest.NewRequest("GET", "/api/v1/builds/40", nil)
	})

	It("serves the inner handler's response", func() {
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, request)

		Expect(rec.Code).To(Equal(http.StatusTeapot))
	})

	It("reports the response as an http response time event", func() {
		wrapped.ServeHTTP(httptest.NewRecorder(), request)

		Eventually(emitter.EmitCallCount).Should(Equal(1))

		_, event := emitter.EmitArgsForCall(0)
		Expect(event.Name).To(Equal("http response time"))
		Expect(event.Attributes).To(HaveKeyWithValue("route", "GetBuild"))
		Expect(event.Attributes).To(HaveKeyWithValue("path", "/api/v1/builds/40"))
		Expect(event.Attributes).To(HaveKeyWithValue("method", "GET"))
		Expect(event.Attributes).To(HaveKeyWithValue("status", "418"))
	})

	Context("when the request carries a trace", func() {
		var traceID trace.TraceID

		BeforeEach(func() {
			traceID = trace.TraceID{0x1d}
			sc := trace.NewSpanContext(trace.SpanContextConfig{
				TraceID: traceID,
				SpanID:  trace.SpanID{0x05},
			})
			request = request.WithContext(trace.ContextWithSpanContext(request.Context(), sc))
		})

		It("tags the event with the trace id", func() {
			wrapped.ServeHTTP(httptest.NewRecorder(), request)

			Eventually(emitter.EmitCallCount).Should(Equal(1))

			_, event := emitter.EmitArgsForCall(0)
			Expect(event.Attributes).To(HaveKeyWithValue("trace_id", traceID.String()))
		})
	})

	Context("when the request carries no trace", func() {
		It("leaves the trace id off the event", func() {
			wrapped.ServeHTTP(httptest.NewRecorder(), request)

			Eventually(emitter.EmitCallCount).Should(Equal(1))

			_, event := emitter.EmitArgsForCall(0)
			Expect(event.Attributes).ToNot(HaveKey("trace_id"))
		})
	})
})
