package transform

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const transformName = "transform.transform"

// Config keys for the transform operation
const (
	TransformClassKey   = "transform.transform.class"
	TransformClosureKey = "transform.transform.closure"
)

// Transform applies a closure to every element of the given class, in place
func Transform(class gryf.ElementClass, closure string) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if closure == "" {
		return nil, fmt.Errorf("Transform requires a closure")
	}
	return &gryf.Operation{
		Name: transformName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			TransformClassKey:   string(class),
			TransformClosureKey: closure,
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
