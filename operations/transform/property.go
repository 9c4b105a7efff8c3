package transform

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const propertyName = "transform.property"

// Config keys for the property projection operation
const (
	PropertyClassKey = "transform.property.class"
	PropertyKeyKey   = "transform.property.key"
)

// Property projects the named property value of every element of the given
// class. The resulting records are text, not graph elements, so a pipeline
// ending in Property is statistics-producing.
func Property(class gryf.ElementClass, key string) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if key == "" {
		return nil, fmt.Errorf("Property requires a property key")
	}
	textSchema := gryf.Schema{Key: gryf.NullRecord, Value: gryf.TextRecord}
	return &gryf.Operation{
		Name: propertyName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			PropertyClassKey: string(class),
			PropertyKeyKey:   key,
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: textSchema,
		OutputSchema:    textSchema,
	}, nil
}
