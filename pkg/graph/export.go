package graph

import (
	"encoding/json"
	"fmt"
)

// exportNode and exportEdge define the serialized export contract.
// The shape is fixed: consumers round-trip this format byte-for-byte,
// so field names and order must not change.
type exportNode struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Tier  Tier     `json:"tier"`
	Tags  []string `json:"tags"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
}

type exportEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight float64  `json:"weight"`
	Type   EdgeType `json:"type"`
}

type exportDoc struct {
	Nodes []exportNode `json:"nodes"`
	Edges []exportEdge `json:"edges"`
}

// ExportJSON serializes the model to the external export format. The
// raw edge list is written as-is, dangling edges included.
func (m *Model) ExportJSON() ([]byte, error) {
	doc := exportDoc{
		Nodes: make([]exportNode, 0, len(m.Nodes)),
		Edges: make([]exportEdge, 0, len(m.Edges)),
	}

	for _, node := range m.Nodes {
		doc.Nodes = append(doc.Nodes, exportNode{
			ID:    node.ID,
			Label: node.Label,
			Tier:  node.Tier,
			Tags:  node.Tags,
			X:     node.X,
			Y:     node.Y,
		})
	}
	for _, edge := range m.Edges {
		doc.Edges = append(doc.Edges, exportEdge{
			Source: edge.Source,
			Target: edge.Target,
			Weight: edge.Weight,
			Type:   edge.Type,
		})
	}

	return json.Marshal(doc)
}

// ImportJSON parses a document produced by ExportJSON and rebuilds a
// model from it, restoring exported node positions.
func ImportJSON(data []byte) (*Model, error) {
	var doc exportDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse graph export: %w", err)
	}

	rawNodes := make([]RawNode, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		rawNodes = append(rawNodes, RawNode{
			ID:    n.ID,
			Title: n.Label,
			Tier:  string(n.Tier),
			Tags:  n.Tags,
		})
	}
	rawEdges := make([]RawEdge, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		rawEdges = append(rawEdges, RawEdge{
			SourceID: e.Source,
			TargetID: e.Target,
			Weight:   e.Weight,
			Type:     string(e.Type),
		})
	}

	m := Build(rawNodes, rawEdges)
	for _, n := range doc.Nodes {
		if node := m.NodeByID(n.ID); node != nil {
			node.X = n.X
			node.Y = n.Y
		}
	}
	return m, nil
}
