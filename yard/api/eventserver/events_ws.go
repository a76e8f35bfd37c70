package eventserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/websocket"
	"github.com/tedsuo/rata"

	"github.com/slipway/slipway/yard/coordinator"
)

const (
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
)

// Origin screening belongs to the fronting service that owns
// authentication; the engine accepts whatever reaches it.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// EventsWS serves the same stream as Events over a websocket: one JSON
// text message per log entry, then a normal closure once the build's
// log is complete.
func (s *Server) EventsWS(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.Session("events-ws")

	buildID, err := strconv.Atoi(rata.Param(r, "build_id"))
	if err != nil {
		http.Error(w, "malformed build id", http.StatusBadRequest)
		return
	}

	afterSeq, ok := resumePoint(w, r)
	if !ok {
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

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("failed-to-upgrade", err)
		return
	}
	defer conn.Close()

	gone := make(chan struct{})
	go readUntilClosed(conn, gone)

	pings := time.NewTicker(pingInterval)
	defer pings.Stop()

	for {
		select {
		case event, open := <-subscription.Events():
			if !open {
				if err := subscription.Err(); err != nil {
					logger.Error("stream-failed", err, lager.Data{"build": buildID})
					closeConn(conn, gone, websocket.CloseInternalServerErr, "stream failed")
					return
				}

				closeConn(conn, gone, websocket.CloseNormalClosure, "end")
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}

		case <-pings.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-gone:
			return

		case <-r.Context().Done():
			return
		}
	}
}

// readUntilClosed drains the connection so pongs and close frames are
// processed, and reports when the peer goes away.
func readUntilClosed(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// closeConn starts the closing handshake and waits briefly for the
// peer's reply so the close frame is delivered before the socket drops.
func closeConn(conn *websocket.Conn, gone <-chan struct{}, code int, reason string) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeWait),
	)

	select {
	case <-gone:
	case <-time.After(writeWait):
	}
}
