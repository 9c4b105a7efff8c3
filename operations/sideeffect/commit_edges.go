package sideeffect

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const commitEdgesName = "sideeffect.commit_edges"

// CommitEdgesActionKey configures whether marked edges are kept or dropped
const CommitEdgesActionKey = "sideeffect.commit_edges.action"

// CommitEdges applies the given action to the edges marked by the preceding
// traversal. Edges live entirely within their vertex records, so no grouping
// is required.
func CommitEdges(action gryf.Action) (*gryf.Operation, error) {
	if !gryf.IsValidAction(action) {
		return nil, fmt.Errorf("Unsupported action: %s", action)
	}
	return &gryf.Operation{
		Name: commitEdgesName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			CommitEdgesActionKey: string(action),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
