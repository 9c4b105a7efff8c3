package transform

import (
	"fmt"
	"strings"

	"github.com/go-gryf/gryf"
)

const verticesEdgesName = "transform.vertices_edges"

// Config keys for the vertex-to-edge traversal operation
const (
	VerticesEdgesDirectionKey = "transform.vertices_edges.direction"
	VerticesEdgesLabelsKey    = "transform.vertices_edges.labels"
)

// VerticesEdges traverses from every vertex onto its incident edges with the
// given labels. A grouping operation; ends its stage.
func VerticesEdges(direction gryf.Direction, labels ...string) (*gryf.Operation, error) {
	if !gryf.IsValidDirection(direction) {
		return nil, fmt.Errorf("Unsupported direction: %s", direction)
	}
	return &gryf.Operation{
		Name: verticesEdgesName,
		Kind: gryf.GroupingMapReduce,
		Config: map[string]string{
			VerticesEdgesDirectionKey: string(direction),
			VerticesEdgesLabelsKey:    strings.Join(labels, ","),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.Schema{Key: gryf.LongRecord, Value: gryf.HolderRecord},
		OutputSchema:    gryf.DefaultGraphSchema(),
		Reducer:         verticesEdgesName + ".reduce",
	}, nil
}
