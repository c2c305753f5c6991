package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-graphview/pkg/engine"
	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/layout"
	"github.com/dd0wney/cluso-graphview/pkg/logging"
	"github.com/dd0wney/cluso-graphview/pkg/physics"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type graphRequest struct {
	Nodes []graph.RawNode `json:"nodes"`
	Edges []graph.RawEdge `json:"edges"`
}

type shortestPathRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type shortestPathResponse struct {
	Path  []string `json:"path"`
	Found bool     `json:"found"`
}

type clustersResponse struct {
	Centroids []string `json:"centroids"`
	Sizes     []int    `json:"sizes"`
}

type clustersRequest struct {
	Count int `json:"count"`
}

// controlsRequest carries the UI control setters. Every field is
// optional; only supplied fields are applied.
type controlsRequest struct {
	LayoutMode        *string             `json:"layoutMode,omitempty"`
	ViewMode          *string             `json:"viewMode,omitempty"`
	SimulationEnabled *bool               `json:"simulationEnabled,omitempty"`
	Params            *physics.Params     `json:"params,omitempty"`
	SearchText        *string             `json:"searchText,omitempty"`
	ClusterCount      *int                `json:"clusterCount,omitempty"`
	TierFilters       map[graph.Tier]bool `json:"tierFilters,omitempty"`
	PathStart         *string             `json:"pathStart,omitempty"`
	PathEnd           *string             `json:"pathEnd,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).String(),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	data, err := s.engine.ExportJSON()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.engine.ImportJSON(data); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

// handleGraph ingests raw node/edge lists and rebuilds the model
// wholesale.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req graphRequest
	// Malformed input degrades to an empty graph rather than failing:
	// the model contract treats non-list input as empty.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Warn("malformed graph payload, rebuilding empty", logging.Error(err))
		req = graphRequest{}
	}
	s.engine.Rebuild(req.Nodes, req.Edges)
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

func (s *Server) handleShortestPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req shortestPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	path := s.engine.FindPath(req.Start, req.End)
	if path == nil {
		path = []string{}
	}
	writeJSON(w, http.StatusOK, shortestPathResponse{Path: path, Found: len(path) > 0})
}

func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		centroids, sizes := s.engine.Clusters()
		writeJSON(w, http.StatusOK, clustersResponse{Centroids: centroids, Sizes: sizes})
	case http.MethodPost:
		var req clustersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.engine.SetClusterCount(req.Count)
		centroids, sizes := s.engine.Clusters()
		writeJSON(w, http.StatusOK, clustersResponse{Centroids: centroids, Sizes: sizes})
	default:
		writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
	}
}

func (s *Server) handleControls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req controlsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.LayoutMode != nil {
		s.engine.SetLayoutMode(layout.ParseMode(*req.LayoutMode))
	}
	if req.ViewMode != nil {
		s.engine.SetViewMode(engine.ParseViewMode(*req.ViewMode))
	}
	if req.SimulationEnabled != nil {
		s.engine.SetSimulationEnabled(*req.SimulationEnabled)
	}
	if req.Params != nil {
		s.engine.SetParams(*req.Params)
	}
	if req.SearchText != nil {
		s.engine.SetSearchText(*req.SearchText)
	}
	if req.ClusterCount != nil {
		s.engine.SetClusterCount(*req.ClusterCount)
	}
	for tier, visible := range req.TierFilters {
		s.engine.SetTierVisible(tier, visible)
	}
	if req.PathStart != nil && req.PathEnd != nil {
		s.engine.SetPathEndpoints(*req.PathStart, *req.PathEnd)
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
