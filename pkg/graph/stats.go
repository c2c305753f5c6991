package graph

// Stats holds aggregate statistics over a model, computed on demand.
type Stats struct {
	NodeCount      int          `json:"nodeCount"`
	EdgeCount      int          `json:"edgeCount"`
	Density        float64      `json:"density"`
	AvgConnections float64      `json:"avgConnections"`
	TierCounts     map[Tier]int `json:"tierCounts"`
}

// Statistics computes aggregate statistics for the model. Density is
// the percentage of possible undirected edges that exist:
// edges / (n*(n-1)/2) * 100.
func (m *Model) Statistics() Stats {
	stats := Stats{
		NodeCount:  len(m.Nodes),
		EdgeCount:  len(m.valid),
		TierCounts: make(map[Tier]int, 4),
	}

	totalConnections := 0
	for _, node := range m.Nodes {
		stats.TierCounts[node.Tier]++
		totalConnections += node.Connections
	}

	n := float64(stats.NodeCount)
	if stats.NodeCount > 1 {
		possible := n * (n - 1) / 2
		stats.Density = float64(stats.EdgeCount) / possible * 100
	}
	if stats.NodeCount > 0 {
		stats.AvgConnections = float64(totalConnections) / n
	}

	return stats
}
