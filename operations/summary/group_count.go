package summary

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const groupCountName = "summary.group_count"

// Config keys for the group count operation
const (
	GroupCountClassKey        = "summary.group_count.class"
	GroupCountKeyClosureKey   = "summary.group_count.key_closure"
	GroupCountValueClosureKey = "summary.group_count.value_closure"
)

// GroupCount buckets elements of the given class by the key closure and sums
// the value closure within each bucket. The summation is commutative and
// associative, so the same reduction also serves as a combiner.
func GroupCount(class gryf.ElementClass, keyClosure string, valueClosure string) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if keyClosure == "" || valueClosure == "" {
		return nil, fmt.Errorf("GroupCount requires key and value closures")
	}
	countSchema := gryf.Schema{Key: gryf.TextRecord, Value: gryf.LongRecord}
	return &gryf.Operation{
		Name: groupCountName,
		Kind: gryf.GroupingMapReduce,
		Config: map[string]string{
			GroupCountClassKey:        string(class),
			GroupCountKeyClosureKey:   keyClosure,
			GroupCountValueClosureKey: valueClosure,
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: countSchema,
		OutputSchema:    countSchema,
		Reducer:         groupCountName + ".reduce",
		Combiner:        groupCountName + ".reduce",
	}, nil
}
