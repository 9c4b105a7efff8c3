package sideeffect

import (
	"fmt"
	"strconv"

	"github.com/go-gryf/gryf"
)

const linkName = "sideeffect.link"

// Config keys for the link operation
const (
	LinkStepKey            = "sideeffect.link.step"
	LinkDirectionKey       = "sideeffect.link.direction"
	LinkLabelKey           = "sideeffect.link.label"
	LinkMergeDuplicatesKey = "sideeffect.link.merge_duplicates"
	LinkMergeWeightKeyKey  = "sideeffect.link.merge_weight_key"
)

// noWeightKey marks a link operation which counts duplicate edges without
// recording a weight property
const noWeightKey = "_"

// Link creates edges with the given label between the current elements and
// the elements visited the given number of steps ago. When mergeWeightKey is
// non-empty, duplicate links are merged and their multiplicity recorded under
// that property key. Both endpoints of each new edge must be updated, so this
// is a grouping operation and ends its stage.
func Link(step int, direction gryf.Direction, label string, mergeWeightKey string) (*gryf.Operation, error) {
	if !gryf.IsValidDirection(direction) {
		return nil, fmt.Errorf("Unsupported direction: %s", direction)
	}
	if label == "" {
		return nil, fmt.Errorf("Link requires an edge label")
	}
	if step < 1 {
		return nil, fmt.Errorf("Link requires a positive step count")
	}
	config := map[string]string{
		LinkStepKey:      strconv.Itoa(step),
		LinkDirectionKey: string(direction),
		LinkLabelKey:     label,
	}
	if mergeWeightKey == "" {
		config[LinkMergeDuplicatesKey] = "false"
		config[LinkMergeWeightKeyKey] = noWeightKey
	} else {
		config[LinkMergeDuplicatesKey] = "true"
		config[LinkMergeWeightKeyKey] = mergeWeightKey
	}
	return &gryf.Operation{
		Name:            linkName,
		Kind:            gryf.GroupingMapReduce,
		Config:          config,
		InputSchema:     gryf.DefaultGraphSchema(),
		MapOutputSchema: gryf.Schema{Key: gryf.LongRecord, Value: gryf.HolderRecord},
		OutputSchema:    gryf.DefaultGraphSchema(),
		Reducer:         linkName + ".reduce",
	}, nil
}
