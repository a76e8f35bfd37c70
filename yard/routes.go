package yard

import "github.com/tedsuo/rata"

const (
	GetInfo          = "Info"
	GetBuild         = "GetBuild"
	BuildEvents      = "BuildEvents"
	BuildEventsWS    = "BuildEventsWS"
	DownloadArtifact = "DownloadArtifact"
)

// Routes is the externally served API surface: the live event stream, the
// build snapshot, and artifact downloads. Everything else (admin, views,
// accounts) belongs to the external API service.
var Routes = rata.Routes{
	{Path: "/api/v1/info", Method: "GET", Name: GetInfo},
	{Path: "/api/v1/builds/:build_id", Method: "GET", Name: GetBuild},
	{Path: "/api/v1/builds/:build_id/events", Method: "GET", Name: BuildEvents},
	{Path: "/api/v1/builds/:build_id/events/ws", Method: "GET", Name: BuildEventsWS},
	{Path: "/api/v1/builds/:build_id/artifacts/:name", Method: "GET", Name: DownloadArtifact},
}
