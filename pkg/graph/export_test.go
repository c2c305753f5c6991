package graph

import (
	"bytes"
	"encoding/json"
	"testing"
)

// TestExportJSON_Shape verifies the serialized contract field-for-field
func TestExportJSON_Shape(t *testing.T) {
	m := Build(
		[]RawNode{{ID: "a", Title: "A", Tier: "hyper", Tags: []string{"x", "y"}}},
		[]RawEdge{{SourceID: "a", TargetID: "a", Weight: 0.5, Type: "sibling"}},
	)
	m.NodeByID("a").X = 12.5
	m.NodeByID("a").Y = -3

	data, err := m.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	nodes := doc["nodes"].([]any)
	node := nodes[0].(map[string]any)
	for _, key := range []string{"id", "label", "tier", "tags", "x", "y"} {
		if _, ok := node[key]; !ok {
			t.Errorf("node export missing field %q", key)
		}
	}
	if node["x"].(float64) != 12.5 {
		t.Errorf("expected x=12.5, got %v", node["x"])
	}

	edges := doc["edges"].([]any)
	edge := edges[0].(map[string]any)
	for _, key := range []string{"source", "target", "weight", "type"} {
		if _, ok := edge[key]; !ok {
			t.Errorf("edge export missing field %q", key)
		}
	}
}

// TestExportJSON_RoundTrip verifies rebuilding from an export preserves
// node and edge counts, dangling edges included
func TestExportJSON_RoundTrip(t *testing.T) {
	m := Build(
		[]RawNode{rawNode("a", "regular"), rawNode("b", "mega"), rawNode("c", "regular")},
		[]RawEdge{rawEdge("a", "b", 0.5), rawEdge("b", "c", 0.9), rawEdge("a", "ghost", 0.1)},
	)

	data, err := m.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	rebuilt, err := ImportJSON(data)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	if rebuilt.NodeCount() != m.NodeCount() {
		t.Errorf("node count changed: %d -> %d", m.NodeCount(), rebuilt.NodeCount())
	}
	if len(rebuilt.Edges) != len(m.Edges) {
		t.Errorf("raw edge count changed: %d -> %d", len(m.Edges), len(rebuilt.Edges))
	}
	if rebuilt.EdgeCount() != m.EdgeCount() {
		t.Errorf("valid edge count changed: %d -> %d", m.EdgeCount(), rebuilt.EdgeCount())
	}

	// A second export must be byte-identical: the format is bit-exact.
	again, err := rebuilt.ExportJSON()
	if err != nil {
		t.Fatalf("re-export failed: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("export not stable across round trip:\n%s\n%s", data, again)
	}
}

// TestImportJSON_RestoresPositions verifies exported positions survive
func TestImportJSON_RestoresPositions(t *testing.T) {
	m := Build([]RawNode{rawNode("a", "regular")}, nil)
	m.NodeByID("a").X = 77
	m.NodeByID("a").Y = 88

	data, _ := m.ExportJSON()
	rebuilt, err := ImportJSON(data)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	node := rebuilt.NodeByID("a")
	if node.X != 77 || node.Y != 88 {
		t.Errorf("positions not restored: got (%v, %v)", node.X, node.Y)
	}
}

// TestImportJSON_Malformed verifies malformed payloads error instead of
// panicking
func TestImportJSON_Malformed(t *testing.T) {
	if _, err := ImportJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
