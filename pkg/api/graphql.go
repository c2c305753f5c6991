package api

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-graphview/pkg/engine"
	"github.com/dd0wney/cluso-graphview/pkg/logging"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// buildSchema constructs the read-only GraphQL schema over the engine:
// nodes with resolved positions, aggregate stats, shortest paths and
// the current cluster partition.
func buildSchema(eng *engine.Engine) (graphql.Schema, error) {
	nodeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Node",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.String},
			"label":       &graphql.Field{Type: graphql.String},
			"tier":        &graphql.Field{Type: graphql.String},
			"tags":        &graphql.Field{Type: graphql.NewList(graphql.String)},
			"x":           &graphql.Field{Type: graphql.Float},
			"y":           &graphql.Field{Type: graphql.Float},
			"radius":      &graphql.Field{Type: graphql.Float},
			"connections": &graphql.Field{Type: graphql.Int},
			"cluster":     &graphql.Field{Type: graphql.Int},
			"pinned":      &graphql.Field{Type: graphql.Boolean},
		},
	})

	statsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Stats",
		Fields: graphql.Fields{
			"nodeCount":      &graphql.Field{Type: graphql.Int},
			"edgeCount":      &graphql.Field{Type: graphql.Int},
			"density":        &graphql.Field{Type: graphql.Float},
			"avgConnections": &graphql.Field{Type: graphql.Float},
		},
	})

	clustersType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Clusters",
		Fields: graphql.Fields{
			"centroids": &graphql.Field{Type: graphql.NewList(graphql.String)},
			"sizes":     &graphql.Field{Type: graphql.NewList(graphql.Int)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"nodes": &graphql.Field{
				Type: graphql.NewList(nodeType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return eng.Snapshot().Nodes, nil
				},
			},
			"node": &graphql.Field{
				Type: nodeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(string)
					for _, node := range eng.Snapshot().Nodes {
						if node.ID == id {
							return node, nil
						}
					}
					return nil, nil
				},
			},
			"stats": &graphql.Field{
				Type: statsType,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return eng.Stats(), nil
				},
			},
			"shortestPath": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Args: graphql.FieldConfigArgument{
					"start": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"end":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					start, _ := p.Args["start"].(string)
					end, _ := p.Args["end"].(string)
					return eng.FindPath(start, end), nil
				},
			},
			"clusters": &graphql.Field{
				Type: clustersType,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					centroids, sizes := eng.Clusters()
					return clustersResponse{Centroids: centroids, Sizes: sizes}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	s.schemaOnce.Do(func() {
		schema, err := buildSchema(s.engine)
		if err != nil {
			s.log.Error("graphql schema build failed", logging.Error(err))
			return
		}
		s.schema = &schema
	})
	if s.schema == nil {
		writeError(w, http.StatusInternalServerError, "graphql schema unavailable")
		return
	}

	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         *s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})
	writeJSON(w, http.StatusOK, result)
}
