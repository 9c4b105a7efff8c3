package transform

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const pathsName = "transform.paths"

// PathsClassKey configures which element class a path step reports on
const PathsClassKey = "transform.paths.class"

// Paths emits the traversal history of every element of the given class as
// text. A pipeline ending in Paths is statistics-producing.
func Paths(class gryf.ElementClass) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	textSchema := gryf.Schema{Key: gryf.NullRecord, Value: gryf.TextRecord}
	return &gryf.Operation{
		Name: pathsName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			PathsClassKey: string(class),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: textSchema,
		OutputSchema:    textSchema,
	}, nil
}
