package sideeffect

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const sideEffectName = "sideeffect.side_effect"

// Config keys for the side effect operation
const (
	SideEffectClassKey   = "sideeffect.side_effect.class"
	SideEffectClosureKey = "sideeffect.side_effect.closure"
)

// SideEffect applies a closure to every element of the given class for its
// side effects, passing the element through unchanged
func SideEffect(class gryf.ElementClass, closure string) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if closure == "" {
		return nil, fmt.Errorf("SideEffect requires a closure")
	}
	return &gryf.Operation{
		Name: sideEffectName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			SideEffectClassKey:   string(class),
			SideEffectClosureKey: closure,
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
