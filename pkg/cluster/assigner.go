// Package cluster partitions graph nodes into k groups by hop distance
// from degree-selected centroid nodes.
//
// Assignment is a full recomputation, triggered only when the node set,
// edge set or cluster count changes — never per simulation tick. Worst
// case cost is O(k·V·E) via one capped BFS per centroid.
package cluster

import (
	"sort"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
)

// MaxHops caps every centroid BFS; nodes beyond it count as
// unreachable from that centroid.
const MaxHops = 10

// Result describes one computed partition.
type Result struct {
	Centroids []string       // centroid node ids, index = cluster index
	Sizes     []int          // node count per cluster
	ByNode    map[string]int // node id -> cluster index
}

// Assign partitions the model's nodes into at most k clusters and
// writes the cluster index onto each node. Centroids are the top-k
// nodes by connection count, ties kept in first-seen order; every node
// joins its nearest centroid by hop distance, ties to the lower
// centroid index. Nodes unreachable from all centroids fall into
// cluster 0. Asking for more clusters than nodes leaves the surplus
// clusters empty; it is not an error.
func Assign(m *graph.Model, k int) Result {
	res := Result{ByNode: make(map[string]int, len(m.Nodes))}
	if k <= 0 || len(m.Nodes) == 0 {
		return res
	}
	if k > len(m.Nodes) {
		k = len(m.Nodes)
	}

	// Centroid selection is by raw connection count on every recompute.
	// Assignments can flip between recomputes when counts are tied or
	// shift slightly; that instability is accepted behavior.
	byDegree := make([]*graph.Node, len(m.Nodes))
	copy(byDegree, m.Nodes)
	sort.SliceStable(byDegree, func(i, j int) bool {
		return byDegree[i].Connections > byDegree[j].Connections
	})

	res.Centroids = make([]string, k)
	res.Sizes = make([]int, k)
	for i := 0; i < k; i++ {
		res.Centroids[i] = byDegree[i].ID
	}

	distances := make([]map[string]int, k)
	for i, centroid := range res.Centroids {
		distances[i] = hopDistances(m, centroid, MaxHops)
	}

	for _, node := range m.Nodes {
		best := 0
		bestDist := -1
		for i := 0; i < k; i++ {
			dist, reachable := distances[i][node.ID]
			if !reachable {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best = i
				bestDist = dist
			}
		}
		// bestDist < 0 means unreachable from every centroid: cluster 0.
		node.Cluster = best
		res.ByNode[node.ID] = best
		res.Sizes[best]++
	}

	return res
}

// Clear resets every node's cluster index. Called when leaving cluster
// view mode, where the index is undefined.
func Clear(m *graph.Model) {
	for _, node := range m.Nodes {
		node.Cluster = graph.ClusterUnassigned
	}
}

type bfsEntry struct {
	id  string
	hop int
}

// hopDistances runs a BFS from source capped at maxHops levels and
// returns hop counts for every reached node.
func hopDistances(m *graph.Model, source string, maxHops int) map[string]int {
	distances := map[string]int{source: 0}
	queue := []bfsEntry{{id: source, hop: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= maxHops {
			continue
		}
		for _, neighbor := range m.NeighborsOf(current.id) {
			if _, seen := distances[neighbor]; seen {
				continue
			}
			distances[neighbor] = current.hop + 1
			queue = append(queue, bfsEntry{id: neighbor, hop: current.hop + 1})
		}
	}

	return distances
}
