// Package wrappa decorates the API's route handlers with cross-cutting
// behaviour such as request tracing and response-time metrics.
package wrappa

import "github.com/tedsuo/rata"

type Wrappa interface {
	Wrap(rata.Handlers) rata.Handlers
}

// MultiWrappa applies each wrappa in order, so the last one in the list
// ends up outermost.
type MultiWrappa []Wrappa

func (wrappas MultiWrappa) Wrap(handlers rata.Handlers) rata.Handlers {
	for _, w := range wrappas {
		handlers = w.Wrap(handlers)
	}

	return handlers
}
