package transform

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const edgesVerticesName = "transform.edges_vertices"

// EdgesVerticesDirectionKey configures which incident vertices an edge step traverses
const EdgesVerticesDirectionKey = "transform.edges_vertices.direction"

// EdgesVertices steps from edges onto their incident vertices in the given direction
func EdgesVertices(direction gryf.Direction) (*gryf.Operation, error) {
	if !gryf.IsValidDirection(direction) {
		return nil, fmt.Errorf("Unsupported direction: %s", direction)
	}
	return &gryf.Operation{
		Name: edgesVerticesName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			EdgesVerticesDirectionKey: string(direction),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
