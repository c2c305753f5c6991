// Package api exposes the view engine over HTTP: render snapshots,
// aggregate statistics, the bit-exact JSON export, shortest-path and
// cluster queries, UI control setters, a GraphQL read schema and a
// websocket frame stream for rendering clients.
package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-graphview/pkg/engine"
	"github.com/dd0wney/cluso-graphview/pkg/logging"
	"github.com/dd0wney/cluso-graphview/pkg/metrics"
)

// Server is the HTTP API server.
type Server struct {
	engine    *engine.Engine
	log       logging.Logger
	metrics   *metrics.Registry
	startTime time.Time
	version   string
	port      int

	httpServer *http.Server
	schemaOnce sync.Once
	schema     *graphql.Schema
}

// NewServer creates an API server for the given engine.
func NewServer(eng *engine.Engine, log logging.Logger, reg *metrics.Registry, port int) *Server {
	return &Server{
		engine:    eng,
		log:       log.With(logging.Component("api")),
		metrics:   reg,
		startTime: time.Now(),
		version:   "1.0.0",
		port:      port,
	}
}

// Handler builds the full route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", s.metrics.Handler())

	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/import", s.handleImport)
	mux.HandleFunc("/graph", s.handleGraph)

	mux.HandleFunc("/shortest-path", s.handleShortestPath)
	mux.HandleFunc("/clusters", s.handleClusters)
	mux.HandleFunc("/controls", s.handleControls)

	mux.HandleFunc("/graphql", s.handleGraphQL)
	mux.HandleFunc("/ws/frames", s.handleFrames)

	return s.loggingMiddleware(s.corsMiddleware(s.metricsMiddleware(mux)))
}

// Start runs the HTTP server until Shutdown or a listen error.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("graphview API server starting", logging.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
