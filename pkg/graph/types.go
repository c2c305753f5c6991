package graph

import "time"

// Tier classifies a node's structural importance. Tier affects render
// radius only, never simulation forces.
type Tier string

const (
	TierRegular Tier = "regular"
	TierMega    Tier = "mega"
	TierHyper   Tier = "hyper"
	TierShadow  Tier = "shadow"
)

// ParseTier converts a raw tier string to a Tier, defaulting to regular
// for anything unrecognized.
func ParseTier(s string) Tier {
	switch Tier(s) {
	case TierMega, TierHyper, TierShadow:
		return Tier(s)
	default:
		return TierRegular
	}
}

// EdgeType labels the relationship an edge represents. Types are used
// for rendering and filtering only; every algorithm treats edges as
// undirected regardless of type.
type EdgeType string

const (
	EdgeParent   EdgeType = "parent"
	EdgeSibling  EdgeType = "sibling"
	EdgeSemantic EdgeType = "semantic"
	EdgeTemporal EdgeType = "temporal"
)

// ClusterUnassigned marks a node with no cluster index. Cluster indices
// are only meaningful while the cluster view mode is active.
const ClusterUnassigned = -1

// Pin is a fixed position that overrides simulated motion for a node.
type Pin struct {
	X float64
	Y float64
}

// Node is a graph vertex with simulated position state.
type Node struct {
	ID        string
	Label     string
	Tier      Tier
	Tags      []string
	CreatedAt time.Time
	Content   string

	X, Y   float64 // position, world space
	VX, VY float64 // velocity, world units per tick
	Pin    *Pin    // when set, position snaps here and velocity stays zero

	Connections int // degree in the adjacency index, derived at build
	Cluster     int // cluster index or ClusterUnassigned
}

// Edge is an undirected, weighted, typed relationship between two nodes.
type Edge struct {
	Source string
	Target string
	Weight float64
	Type   EdgeType
}

// RawNode is the ingestion shape supplied by the data provider.
type RawNode struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Tier      string    `json:"tier"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// RawEdge is the ingestion shape supplied by the data provider.
type RawEdge struct {
	SourceID string  `json:"sourceId"`
	TargetID string  `json:"targetId"`
	Weight   float64 `json:"weight"`
	Type     string  `json:"type"`
}
