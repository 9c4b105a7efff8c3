package filter

import (
	"fmt"
	"strconv"

	"github.com/go-gryf/gryf"
)

const backName = "filter.back"

// Config keys for the back filter operation
const (
	BackClassKey = "filter.back.class"
	BackStepKey  = "filter.back.step"
)

// Back rewinds the traversal to the elements it visited the given number of
// steps ago, keeping only those which survived the steps in between. The
// surviving histories must be gathered under their origin element, so this is
// a grouping operation and ends its stage.
func Back(class gryf.ElementClass, step int) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if step < 1 {
		return nil, fmt.Errorf("Back requires a positive step count")
	}
	return &gryf.Operation{
		Name: backName,
		Kind: gryf.GroupingMapReduce,
		Config: map[string]string{
			BackClassKey: string(class),
			BackStepKey:  strconv.Itoa(step),
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.Schema{Key: gryf.LongRecord, Value: gryf.HolderRecord},
		OutputSchema:    gryf.DefaultGraphSchema(),
		Reducer:         backName + ".reduce",
	}, nil
}
