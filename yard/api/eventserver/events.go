package eventserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"
	"github.com/vito/go-sse/sse"

	"github.com/slipway/slipway/yard/coordinator"
)

// Events serves the build's log stream as server-sent events. Each entry
// is an "event" message whose ID is the entry's sequence, so a
// reconnecting client resumes from where it left off via the standard
// Last-Event-ID header. The stream finishes with an "end" message once
// the build's log is complete.
func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.Session("events")

	buildID, err := strconv.Atoi(rata.Param(r, "build_id"))
	if err != nil {
		http.Error(w, "malformed build id", http.StatusBadRequest)
		return
	}

	afterSeq, ok := resumePoint(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	subscription, err := s.logs.SubscribeLogs(r.Context(), buildID, afterSeq)
	if err != nil {
		if errors.Is(err, coordinator.ErrBuildNotFound) {
			http.Error(w, "build not found", http.StatusNotFound)
			return
		}

		logger.Error("failed-to-subscribe", err, lager.Data{"build": buildID})
		http.Error(w, "failed to subscribe", http.StatusInternalServerError)
		return
	}
	defer subscription.Close()

	w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case event, open := <-subscription.Events():
			if !open {
				if err := subscription.Err(); err != nil {
					logger.Error("stream-failed", err, lager.Data{"build": buildID})
					return
				}

				_ = sse.Event{Name: "end"}.Write(w)
				flusher.Flush()
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				logger.Error("failed-to-encode-entry", err)
				return
			}

			err = sse.Event{
				ID:   strconv.Itoa(event.Sequence),
				Name: "event",
				Data: payload,
			}.Write(w)
			if err != nil {
				return
			}

			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// resumePoint reads the sequence to resume after: the Last-Event-ID
// header from a reconnecting SSE client wins over an explicit after
// parameter.
func resumePoint(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.Header.Get("Last-Event-ID")
	if raw == "" {
		raw = r.URL.Query().Get("after")
	}
	if raw == "" {
		return 0, true
	}

	after, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "malformed resume sequence", http.StatusBadRequest)
		return 0, false
	}

	return after, true
}
