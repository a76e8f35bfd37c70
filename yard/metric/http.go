package metric

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/felixge/httpsnoop"
	"go.opentelemetry.io/otel/trace"
)

// WrapHandler times every request through the wrapped handler and reports
// it to the monitor as an http response time event, tagged with the route
// that served it. When the request carries a trace, the trace id rides
// along on the event so a slow response can be chased into its spans.
func WrapHandler(
	logger lager.Logger,
	monitor *Monitor,
	route string,
	handler http.Handler,
) http.Handler {
	return timedHandler{
		logger:  logger,
		monitor: monitor,
		route:   route,
		handler: handler,
	}
}

type timedHandler struct {
	logger  lager.Logger
	monitor *Monitor
	route   string
	handler http.Handler
}

func (h timedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot := httpsnoop.CaptureMetrics(h.handler, w, r)

	HTTPResponseTime{
		Route:      h.route,
		Path:       r.URL.Path,
		Method:     r.Method,
		StatusCode: snapshot.Code,
		Duration:   snapshot.Duration,
		TraceID:    requestTraceID(r),
	}.Emit(h.logger, h.monitor)
}

func requestTraceID(r *http.Request) string {
	sc := trace.SpanFromContext(r.Context()).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
