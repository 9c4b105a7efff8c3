package summary

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

const valueDistributionName = "summary.value_distribution"

// Config keys for the value distribution operation
const (
	ValueDistributionClassKey    = "summary.value_distribution.class"
	ValueDistributionPropertyKey = "summary.value_distribution.property"
)

// ValueDistribution counts how often each value of the named property occurs
// across elements of the given class. The count is commutative and
// associative, so the same reduction also serves as a combiner.
func ValueDistribution(class gryf.ElementClass, property string) (*gryf.Operation, error) {
	if !gryf.IsValidElementClass(class) {
		return nil, fmt.Errorf("Unsupported element class: %s", class)
	}
	if property == "" {
		return nil, fmt.Errorf("ValueDistribution requires a property key")
	}
	countSchema := gryf.Schema{Key: gryf.TextRecord, Value: gryf.LongRecord}
	return &gryf.Operation{
		Name: valueDistributionName,
		Kind: gryf.GroupingMapReduce,
		Config: map[string]string{
			ValueDistributionClassKey:    string(class),
			ValueDistributionPropertyKey: property,
		},
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: countSchema,
		OutputSchema:    countSchema,
		Reducer:         valueDistributionName + ".reduce",
		Combiner:        valueDistributionName + ".reduce",
	}, nil
}
