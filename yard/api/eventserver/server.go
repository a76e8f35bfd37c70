// Package eventserver streams build logs to clients, over server-sent
// events or a websocket. Both transports carry the same entries: the
// persisted ones after the requested sequence, then live ones, then an
// end-of-stream marker.
package eventserver

import (
	"context"

	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard/logstream"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . LogSource

// LogSource attaches a subscriber to a build's log stream. A missing
// build surfaces as coordinator.ErrBuildNotFound.
type LogSource interface {
	SubscribeLogs(ctx context.Context, buildID int, afterSeq int) (*logstream.Subscription, error)
}

type Server struct {
	logger lager.Logger
	logs   LogSource
}

func NewServer(logger lager.Logger, logs LogSource) *Server {
	return &Server{
		logger: logger,
		logs:   logs,
	}
}
