package artifactserver

import (
	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard/db"
)

type Server struct {
	logger    lager.Logger
	artifacts db.ArtifactLifecycle
}

func NewServer(logger lager.Logger, artifacts db.ArtifactLifecycle) *Server {
	return &Server{
		logger:    logger,
		artifacts: artifacts,
	}
}
