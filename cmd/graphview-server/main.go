package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dd0wney/cluso-graphview/pkg/api"
	"github.com/dd0wney/cluso-graphview/pkg/config"
	"github.com/dd0wney/cluso-graphview/pkg/engine"
	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/logging"
	"github.com/dd0wney/cluso-graphview/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to graphview.yaml (defaults apply when empty)")
	graphPath := flag.String("graph", "", "Optional exported graph JSON to load at startup")
	simulate := flag.Bool("simulate", true, "Start the force simulation immediately")
	flag.Parse()

	log := logging.NewDefaultLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config load failed", logging.Error(err))
		os.Exit(1)
	}

	registry := metrics.NewRegistry()
	eng := engine.New(cfg, log, registry)

	if *graphPath != "" {
		data, err := os.ReadFile(*graphPath)
		if err != nil {
			log.Error("graph file unreadable", logging.String("path", *graphPath), logging.Error(err))
			os.Exit(1)
		}
		if err := eng.ImportJSON(data); err != nil {
			log.Error("graph import failed", logging.String("path", *graphPath), logging.Error(err))
			os.Exit(1)
		}
		log.Info("graph loaded", logging.String("path", *graphPath))
	} else {
		nodes, edges := demoGraph()
		eng.Rebuild(nodes, edges)
		log.Info("demo graph loaded", logging.Count(len(nodes)))
	}

	eng.SetSimulationEnabled(*simulate)

	server := api.NewServer(eng, log, registry, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server failed", logging.Error(err))
		os.Exit(1)
	case sig := <-sigCh:
		log.Info("shutting down", logging.String("signal", sig.String()))
	}

	eng.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", logging.Error(err))
		os.Exit(1)
	}
}

// demoGraph builds a small knowledge graph so the server renders
// something useful without an ingest step.
func demoGraph() ([]graph.RawNode, []graph.RawEdge) {
	now := time.Now()
	nodes := []graph.RawNode{
		{ID: "distributed-systems", Title: "Distributed Systems", Tier: "hyper", Tags: []string{"systems"}, CreatedAt: now},
		{ID: "consensus", Title: "Consensus", Tier: "mega", Tags: []string{"systems", "theory"}, CreatedAt: now},
		{ID: "raft", Title: "Raft", Tier: "regular", Tags: []string{"consensus"}, CreatedAt: now},
		{ID: "paxos", Title: "Paxos", Tier: "regular", Tags: []string{"consensus"}, CreatedAt: now},
		{ID: "replication", Title: "Replication", Tier: "mega", Tags: []string{"systems"}, CreatedAt: now},
		{ID: "wal", Title: "Write-Ahead Log", Tier: "regular", Tags: []string{"storage"}, CreatedAt: now},
		{ID: "lsm-tree", Title: "LSM Tree", Tier: "regular", Tags: []string{"storage"}, CreatedAt: now},
		{ID: "storage-engines", Title: "Storage Engines", Tier: "mega", Tags: []string{"storage"}, CreatedAt: now},
		{ID: "gossip", Title: "Gossip Protocols", Tier: "regular", Tags: []string{"systems"}, CreatedAt: now},
		{ID: "draft-note", Title: "", Content: "unfiled thoughts on consistency models", Tier: "shadow", CreatedAt: now},
	}
	edges := []graph.RawEdge{
		{SourceID: "distributed-systems", TargetID: "consensus", Weight: 0.9, Type: "parent"},
		{SourceID: "distributed-systems", TargetID: "replication", Weight: 0.8, Type: "parent"},
		{SourceID: "consensus", TargetID: "raft", Weight: 0.9, Type: "parent"},
		{SourceID: "consensus", TargetID: "paxos", Weight: 0.7, Type: "parent"},
		{SourceID: "raft", TargetID: "paxos", Weight: 0.6, Type: "sibling"},
		{SourceID: "replication", TargetID: "wal", Weight: 0.7, Type: "semantic"},
		{SourceID: "storage-engines", TargetID: "wal", Weight: 0.8, Type: "parent"},
		{SourceID: "storage-engines", TargetID: "lsm-tree", Weight: 0.8, Type: "parent"},
		{SourceID: "distributed-systems", TargetID: "gossip", Weight: 0.5, Type: "semantic"},
		{SourceID: "draft-note", TargetID: "consensus", Weight: 0.3, Type: "temporal"},
	}
	return nodes, edges
}
