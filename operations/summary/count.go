package summary

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const countName = "summary.count"

// CountClassKey configures which element class is counted
const CountClassKey = "summary.count.class"

// Count tallies the total number of elements of the given class. All partial
// tallies share a single key, so the reduction collapses them into one record.
func Count(class gryf.ElementClass) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	return &gryf.Operation{
		Name: countName,
		Kind: gryf.GroupingMapReduce,
		Config: map[string]string{
			CountClassKey: string(class),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.Schema{Key: gryf.IntRecord, Value: gryf.LongRecord},
		OutputSchema:    gryf.Schema{Key: gryf.IntRecord, Value: gryf.TextRecord},
		Reducer:         countName + ".reduce",
	}, nil
}
