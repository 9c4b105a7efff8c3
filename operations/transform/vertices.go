package transform

import "github.com/go-gryf/gryf"

const verticesName = "transform.vertices"

// Vertices steps onto every vertex of the graph
func Vertices() *gryf.Operation {
	return &gryf.Operation{
		Name:            verticesName,
		Kind:            gryf.MapOnly,
		Config:          map[string]string{},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}
}
