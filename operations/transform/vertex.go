package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gryf/gryf"
)

const vertexName = "transform.vertex"

// VertexIdsKey configures which vertex ids a vertex step retains
const VertexIdsKey = "transform.vertex.ids"

// VertexIds retains only the vertices with the given ids
func VertexIds(ids ...int64) (*gryf.Operation, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("VertexIds requires at least one id")
	}
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.FormatInt(id, 10)
	}
	return &gryf.Operation{
		Name: vertexName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			VertexIdsKey: strings.Join(strs, ","),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
