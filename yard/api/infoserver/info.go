package infoserver

import (
	"encoding/json"
	"net/http"
)

type Info struct {
	Version     string `json:"version"`
	APIVersion  string `json:"api_version"`
	ExternalURL string `json:"external_url,omitempty"`
	ClusterName string `json:"cluster_name,omitempty"`
}

func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(Info{
		Version:     s.version,
		APIVersion:  s.apiVersion,
		ExternalURL: s.externalURL,
		ClusterName: s.clusterName,
	})
	if err != nil {
		s.logger.Error("failed-to-encode-info", err)
	}
}
