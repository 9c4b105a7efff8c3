package transform

import (
	"fmt"
	"strings"

	"github.com/go-gryf/gryf"
)

const verticesVerticesName = "transform.vertices_vertices"

// Config keys for the vertex-to-vertex traversal operation
const (
	VerticesVerticesDirectionKey = "transform.vertices_vertices.direction"
	VerticesVerticesLabelsKey    = "transform.vertices_vertices.labels"
)

// VerticesVertices traverses from every vertex to its adjacent vertices along
// edges with the given labels. Adjacent vertices must be gathered under the
// destination vertex id, so this is a grouping operation and ends its stage.
func VerticesVertices(direction gryf.Direction, labels ...string) (*gryf.Operation, error) {
	if !gryf.IsValidDirection(direction) {
		return nil, fmt.Errorf("Unsupported direction: %s", direction)
	}
	return &gryf.Operation{
		Name: verticesVerticesName,
		Kind: gryf.GroupingMapReduce,
		Config: map[string]string{
			VerticesVerticesDirectionKey: string(direction),
			VerticesVerticesLabelsKey:    strings.Join(labels, ","),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.Schema{Key: gryf.LongRecord, Value: gryf.HolderRecord},
		OutputSchema:    gryf.DefaultGraphSchema(),
		Reducer:         verticesVerticesName + ".reduce",
	}, nil
}
