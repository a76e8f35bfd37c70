// Package api assembles the engine's HTTP surface: version info, build
// snapshots, live log streams and artifact downloads.
package api

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/api/artifactserver"
	"github.com/slipway/slipway/yard/api/buildserver"
	"github.com/slipway/slipway/yard/api/eventserver"
	"github.com/slipway/slipway/yard/api/infoserver"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/wrappa"
)

func NewHandler(
	logger lager.Logger,
	wrapper wrappa.Wrappa,
	version string,
	apiVersion string,
	externalURL string,
	clusterName string,
	snapshots buildserver.SnapshotSource,
	logs eventserver.LogSource,
	artifacts db.ArtifactLifecycle,
) (http.Handler, error) {
	infoServer := infoserver.NewServer(logger, version, apiVersion, externalURL, clusterName)
	buildServer := buildserver.NewServer(logger, snapshots)
	eventServer := eventserver.NewServer(logger, logs)
	artifactServer := artifactserver.NewServer(logger, artifacts)

	handlers := rata.Handlers{
		yard.GetInfo:          http.HandlerFunc(infoServer.Info),
		yard.GetBuild:         http.HandlerFunc(buildServer.GetBuild),
		yard.BuildEvents:      http.HandlerFunc(eventServer.Events),
		yard.BuildEventsWS:    http.HandlerFunc(eventServer.EventsWS),
		yard.DownloadArtifact: http.HandlerFunc(artifactServer.Download),
	}

	return rata.NewRouter(yard.Routes, wrapper.Wrap(handlers))
}
