package filter

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const duplicateName = "filter.duplicate"

// DuplicateClassKey configures which element class duplicate removal applies to
const DuplicateClassKey = "filter.duplicate.class"

// Duplicate removes repeated traversals of the same element of the given class
func Duplicate(class gryf.ElementClass) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	return &gryf.Operation{
		Name: duplicateName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			DuplicateClassKey: string(class),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
