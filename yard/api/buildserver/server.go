package buildserver

import (
	"context"

	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . SnapshotSource

// SnapshotSource reports the progress of one build. A missing build
// surfaces as coordinator.ErrBuildNotFound.
type SnapshotSource interface {
	Status(ctx context.Context, buildID int) (yard.BuildSnapshot, error)
}

type Server struct {
	logger    lager.Logger
	snapshots SnapshotSource
}

func NewServer(logger lager.Logger, snapshots SnapshotSource) *Server {
	return &Server{
		logger:    logger,
		snapshots: snapshots,
	}
}
