package artifactserver

import (
	"mime"
	"net/http"
	"path"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"
)

// Download streams a stored artifact. The file is served from the path
// recorded at harvest time; the name in the URL selects a row and never
// touches the filesystem directly.
func (s *Server) Download(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.Session("download-artifact")

	buildID, err := strconv.Atoi(rata.Param(r, "build_id"))
	if err != nil {
		http.Error(w, "malformed build id", http.StatusBadRequest)
		return
	}

	name := rata.Param(r, "name")

	artifacts, err := s.artifacts.ArtifactsForBuild(buildID)
	if err != nil {
		logger.Error("failed-to-list-artifacts", err, lager.Data{"build": buildID})
		http.Error(w, "failed to look up artifact", http.StatusInternalServerError)
		return
	}

	for _, artifact := range artifacts {
		if artifact.Name != name {
			continue
		}

		disposition := mime.FormatMediaType("attachment", map[string]string{
			"filename": path.Base(artifact.Name),
		})

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", disposition)

		http.ServeFile(w, r, artifact.StoragePath)
		return
	}

	http.Error(w, "artifact not found", http.StatusNotFound)
}
