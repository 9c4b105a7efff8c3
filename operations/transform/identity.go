package transform

import "github.com/go-gryf/gryf"

const identityName = "transform.identity"

// Identity passes every vertex through unchanged
func Identity() *gryf.Operation {
	return &gryf.Operation{
		Name:            identityName,
		Kind:            gryf.MapOnly,
		Config:          map[string]string{},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}
}
