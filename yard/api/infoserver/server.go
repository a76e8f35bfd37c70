package infoserver

import (
	"code.cloudfoundry.org/lager/v3"
)

type Server struct {
	logger      lager.Logger
	version     string
	apiVersion  string
	externalURL string
	clusterName string
}

func NewServer(
	logger lager.Logger,
	version string,
	apiVersion string,
	externalURL string,
	clusterName string,
) *Server {
	return &Server{
		logger:      logger,
		version:     version,
		apiVersion:  apiVersion,
		externalURL: externalURL,
		clusterName: clusterName,
	}
}
