package filter

import (
	"fmt"
	"strconv"

	"github.com/go-gryf/gryf"
)

const intervalFilterName = "filter.interval"

// Config keys for the interval filter operation
const (
	IntervalFilterClassKey        = "filter.interval.class"
	IntervalFilterKeyKey          = "filter.interval.key"
	IntervalFilterValueClassKey   = "filter.interval.values.class"
	IntervalFilterStartKey        = "filter.interval.start"
	IntervalFilterEndKey          = "filter.interval.end"
	IntervalFilterNullWildcardKey = "filter.interval.null_wildcard"
)

// IntervalFilter retains only the elements of the given class whose named
// property falls within [start, end). Start and end must share a type.
func IntervalFilter(class gryf.ElementClass, nullIsWildcard bool, key string, start interface{}, end interface{}) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	startClass, err := classOfValue(start)
	if err != nil {
		return nil, err
	}
	endClass, err := classOfValue(end)
	if err != nil {
		return nil, err
	}
	if startClass != endClass {
		return nil, fmt.Errorf("IntervalFilter start and end values must share a single type")
	}
	return &gryf.Operation{
		Name: intervalFilterName,
		Kind: gryf.MapOnly,
		Config: map[string]string{
			IntervalFilterClassKey:        string(class),
			IntervalFilterKeyKey:          key,
			IntervalFilterValueClassKey:   startClass,
			IntervalFilterStartKey:        fmt.Sprintf("%v", start),
			IntervalFilterEndKey:          fmt.Sprintf("%v", end),
			IntervalFilterNullWildcardKey: strconv.FormatBool(nullIsWildcard),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.DefaultGraphSchema(),
		OutputSchema:    gryf.DefaultGraphSchema(),
	}, nil
}
