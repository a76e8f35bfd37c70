package wrappa

import (
	"net/http"

	"github.com/tedsuo/rata"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// OTelHTTPWrappa opens one server span per request, named after the rata
// route that served it so traces group by operation rather than by raw
// path. Every route is wrapped, the event streams included: their spans
// run as long as the subscription does.
type OTelHTTPWrappa struct{}

func NewOTelHTTPWrappa() Wrappa {
	return OTelHTTPWrappa{}
}

func (OTelHTTPWrappa) Wrap(handlers rata.Handlers) rata.Handlers {
	traced := make(rata.Handlers, len(handlers))

	for route, handler := range handlers {
		traced[route] = tracedHandler(route, handler)
	}

	return traced
}

func tracedHandler(route string, handler http.Handler) http.Handler {
	return otelhttp.NewHandler(handler, route)
}
