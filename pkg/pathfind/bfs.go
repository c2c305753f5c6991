// Package pathfind computes unweighted shortest paths over a graph
// model's adjacency index.
package pathfind

import (
	"container/list"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
)

// FindPath returns the node ids along a shortest hop-count path from
// start to end over the undirected adjacency index. Edge types are
// ignored for traversal. It returns [start] when start equals end, and
// an empty slice when either id is unknown or no path exists — never
// an error.
//
// When several shortest paths exist the result is whichever BFS
// discovers first; with the model's sorted neighbor slices that choice
// is deterministic for a given graph but is not otherwise specified.
func FindPath(m *graph.Model, startID, endID string) []string {
	if m.NodeByID(startID) == nil || m.NodeByID(endID) == nil {
		return nil
	}
	if startID == endID {
		return []string{startID}
	}

	parent := map[string]string{startID: startID}
	queue := list.New()
	queue.PushBack(startID)

	for queue.Len() > 0 {
		currentID := queue.Remove(queue.Front()).(string)

		for _, neighbor := range m.NeighborsOf(currentID) {
			if _, seen := parent[neighbor]; seen {
				continue
			}
			parent[neighbor] = currentID
			if neighbor == endID {
				return reconstruct(parent, startID, endID)
			}
			queue.PushBack(neighbor)
		}
	}

	return nil
}

// reconstruct walks the parent map back from end to start and reverses.
func reconstruct(parent map[string]string, startID, endID string) []string {
	path := []string{endID}
	node := endID
	for node != startID {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
