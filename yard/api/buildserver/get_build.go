package buildserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"

	"github.com/slipway/slipway/yard/coordinator"
)

func (s *Server) GetBuild(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.Session("get-build")

	buildID, err := strconv.Atoi(rata.Param(r, "build_id"))
	if err != nil {
		http.Error(w, "malformed build id", http.StatusBadRequest)
		return
	}

	snapshot, err := s.snapshots.Status(r.Context(), buildID)
	if err != nil {
		if errors.Is(err, coordinator.ErrBuildNotFound) {
			http.Error(w, "build not found", http.StatusNotFound)
			return
		}

		logger.Error("failed-to-snapshot-build", err, lager.Data{"build": buildID})
		http.Error(w, "failed to look up build", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		logger.Error("failed-to-encode-snapshot", err)
	}
}
