package wrappa

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/metric"
)

// APIMetricsWrappa times every route and reports each response as an
// http response time event. The event streams stay unwrapped: a
// subscriber can hold its connection open for the length of a build,
// which would swamp the response-time histogram.
type APIMetricsWrappa struct {
	logger lager.Logger
}

func NewAPIMetricsWrappa(logger lager.Logger) Wrappa {
	return APIMetricsWrappa{logger: logger}
}

func (wrappa APIMetricsWrappa) Wrap(handlers rata.Handlers) rata.Handlers {
	wrapped := rata.Handlers{}

	for name, handler := range handlers {
		switch name {
		case yard.BuildEvents, yard.BuildEventsWS:
			wrapped[name] = handler
		default:
			wrapped[name] = metric.WrapHandler(wrappa.logger, metric.Metrics, name, handler)
		}
	}

	return wrapped
}
