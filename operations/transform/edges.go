package transform

import "github.com/go-gryf/gryf"

const edgesName = "transform.edges"

// Edges steps onto every edge of the graph
func Edges() *gryf.Operation {
	return &gryf.Operation{
		Name:            edgesName,
		Kind:            gryf.MapOnly,
		Config:          map[string]string{},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}
}
