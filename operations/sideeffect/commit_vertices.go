package sideeffect

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const commitVerticesName = "sideeffect.commit_vertices"

// CommitVerticesActionKey configures whether marked vertices are kept or dropped
const CommitVerticesActionKey = "sideeffect.commit_vertices.action"

// CommitVertices applies the given action to the vertices marked by the
// preceding traversal. Dropping a vertex must also drop its incident edges on
// other vertices, so this is a grouping operation and ends its stage.
func CommitVertices(action gryf.Action) (*gryf.Operation, error) {
	if !gryf.IsValidAction(action) {
		return nil, fmt.Errorf("Unsupported action: %s", action)
	}
	return &gryf.Operation{
		Name: commitVerticesName,
		Kind: gryf.GroupingMapReduce,
		Config: map[string]string{
			CommitVerticesActionKey: string(action),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.Schema{Key: gryf.LongRecord, Value: gryf.HolderRecord},
		OutputSchema:    gryf.DefaultGraphSchema(),
		Reducer:         commitVerticesName + ".reduce",
	}, nil
}
