package graph

import "sort"

// Model owns the canonical node and edge collections plus the derived
// adjacency index. A Model is rebuilt wholesale on every data refresh;
// there is no incremental diffing across rebuilds.
type Model struct {
	Nodes []*Node

	// Edges is the raw edge list as ingested, including edges whose
	// endpoints reference unknown node ids. Dangling edges are excluded
	// from the adjacency index (and so from simulation, clustering and
	// pathfinding) but stay here for traceability.
	Edges []*Edge

	index     map[string]int      // node id -> position in Nodes
	adjacency map[string][]string // node id -> sorted neighbor ids
	valid     []*Edge             // edges whose endpoints both exist
}

// Build constructs a Model from raw node and edge lists. Nil or empty
// input yields a valid empty model. Edge weights are clamped into [0,1].
func Build(rawNodes []RawNode, rawEdges []RawEdge) *Model {
	m := &Model{
		Nodes:     make([]*Node, 0, len(rawNodes)),
		Edges:     make([]*Edge, 0, len(rawEdges)),
		index:     make(map[string]int, len(rawNodes)),
		adjacency: make(map[string][]string, len(rawNodes)),
		valid:     make([]*Edge, 0, len(rawEdges)),
	}

	for _, raw := range rawNodes {
		if raw.ID == "" {
			continue
		}
		if _, dup := m.index[raw.ID]; dup {
			continue
		}
		label := raw.Title
		if label == "" {
			label = truncate(raw.Content, 40)
		}
		node := &Node{
			ID:        raw.ID,
			Label:     label,
			Tier:      ParseTier(raw.Tier),
			Tags:      raw.Tags,
			CreatedAt: raw.CreatedAt,
			Content:   raw.Content,
			Cluster:   ClusterUnassigned,
		}
		m.index[node.ID] = len(m.Nodes)
		m.Nodes = append(m.Nodes, node)
	}

	neighborSets := make(map[string]map[string]bool, len(m.Nodes))
	for _, raw := range rawEdges {
		edge := &Edge{
			Source: raw.SourceID,
			Target: raw.TargetID,
			Weight: clampWeight(raw.Weight),
			Type:   EdgeType(raw.Type),
		}
		m.Edges = append(m.Edges, edge)

		_, srcOK := m.index[edge.Source]
		_, dstOK := m.index[edge.Target]
		if !srcOK || !dstOK {
			continue // dangling edge: kept in Edges, dropped from adjacency
		}
		m.valid = append(m.valid, edge)
		addNeighbor(neighborSets, edge.Source, edge.Target)
		addNeighbor(neighborSets, edge.Target, edge.Source)
	}

	// Materialize sorted neighbor slices so traversal order is stable
	// for a given model.
	for id, set := range neighborSets {
		ids := make([]string, 0, len(set))
		for nid := range set {
			ids = append(ids, nid)
		}
		sort.Strings(ids)
		m.adjacency[id] = ids
	}

	for _, node := range m.Nodes {
		node.Connections = len(m.adjacency[node.ID])
	}

	return m
}

// NodeByID returns the node with the given id, or nil when unknown.
func (m *Model) NodeByID(id string) *Node {
	idx, ok := m.index[id]
	if !ok {
		return nil
	}
	return m.Nodes[idx]
}

// NeighborsOf returns the sorted neighbor ids of a node. Unknown ids
// yield an empty slice, never an error.
func (m *Model) NeighborsOf(id string) []string {
	return m.adjacency[id]
}

// ValidEdges returns the edges kept in the adjacency index, i.e. those
// whose endpoints both exist. The simulator and analysis algorithms
// operate on these, never on the raw list.
func (m *Model) ValidEdges() []*Edge {
	return m.valid
}

// NodeCount returns the number of nodes in the model.
func (m *Model) NodeCount() int {
	return len(m.Nodes)
}

// EdgeCount returns the number of adjacency-kept edges.
func (m *Model) EdgeCount() int {
	return len(m.valid)
}

func addNeighbor(sets map[string]map[string]bool, from, to string) {
	set, ok := sets[from]
	if !ok {
		set = make(map[string]bool)
		sets[from] = set
	}
	set[to] = true
}

func clampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
