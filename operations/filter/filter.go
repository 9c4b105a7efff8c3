package filter

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const filterName = "filter.filter"

// Config keys for the closure filter operation
const (
	FilterClassKey   = "filter.filter.class"
	FilterClosureKey = "filter.filter.closure"
)

// Filter retains only the elements of the given class for which the closure holds
func Filter(class gryf.ElementClass, closure string) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if closure == "" {
		return nil, fmt.Errorf("Filter requires a closure")
	}
	return &gryf.Operation{
		Name: filterName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			FilterClassKey:   string(class),
			FilterClosureKey: closure,
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
