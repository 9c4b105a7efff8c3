package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gryf/gryf"
)

const propertyFilterName = "filter.property"

// Config keys for the property filter operation
const (
	PropertyFilterClassKey        = "filter.property.class"
	PropertyFilterKeyKey          = "filter.property.key"
	PropertyFilterCompareKey      = "filter.property.compare"
	PropertyFilterValuesKey       = "filter.property.values"
	PropertyFilterValueClassKey   = "filter.property.values.class"
	PropertyFilterNullWildcardKey = "filter.property.null_wildcard"
)

// PropertyFilter retains only the elements of the given class whose named
// property compares favourably against one of the given values. All values
// must share a type; string, bool and numeric values are supported. When
// nullIsWildcard is set, elements lacking the property pass the filter.
func PropertyFilter(class gryf.ElementClass, nullIsWildcard bool, key string, compare gryf.Comparison, values ...interface{}) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if !gryf.IsValidComparison(compare) {
		return nil, fmt.Errorf("Unsupported comparison: %s", compare)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("PropertyFilter requires at least one value")
	}
	valueClass, err := classOfValue(values[0])
	if err != nil {
		return nil, err
	}
	strs := make([]string, len(values))
	for i, v := range values {
		c, err := classOfValue(v)
		if err != nil {
			return nil, err
		}
		if c != valueClass {
			return nil, fmt.Errorf("PropertyFilter values must share a single type")
		}
		strs[i] = fmt.Sprintf("%v", v)
	}
	return &gryf.Operation{
		Name: propertyFilterName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			PropertyFilterClassKey:        string(class),
			PropertyFilterKeyKey:          key,
			PropertyFilterCompareKey:      string(compare),
			PropertyFilterValuesKey:       strings.Join(strs, ","),
			PropertyFilterValueClassKey:   valueClass,
			PropertyFilterNullWildcardKey: strconv.FormatBool(nullIsWildcard),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}

// classOfValue maps a filter value to its transportable type name
func classOfValue(v interface{}) (string, error) {
	switch v.(type) {
	case string:
		return "string", nil
	case bool:
		return "bool", nil
	case int, int32, int64, float32, float64:
		return "number", nil
	default:
		return "", fmt.Errorf("Unknown value class: %T", v)
	}
}
