package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gryf/gryf"
)

// StagePlan is one unit of batch computation: an ordered fused sequence of
// map-only operations, plus an optional grouping operation which ends the
// stage. A plan with an empty map sequence and no grouping operation is
// invalid and never emitted by the Builder.
type StagePlan struct {
	MapSequence     []*gryf.Operation
	GroupingOp      *gryf.Operation
	MapOutputSchema gryf.Schema
	OutputSchema    gryf.Schema
}

// Name returns a human-readable summary of this plan, for logging
func (p *StagePlan) Name() string {
	names := make([]string, 0, len(p.MapSequence)+1)
	for _, op := range p.MapSequence {
		names = append(names, op.Name)
	}
	if p.GroupingOp != nil {
		names = append(names, p.GroupingOp.Reducer)
	}
	return fmt.Sprintf("MapSequence[%s]", strings.Join(names, ", "))
}

// Descriptor flattens this plan into the form submitted to the substrate.
// Operation config keys are suffixed with the operation's position within the
// fused map sequence, so multiple instances of the same operation in one stage
// do not collide. The grouping operation's map phase runs last in the sequence.
// The returned descriptor owns a fresh config map merged with the given
// run-wide properties.
func (p *StagePlan) Descriptor(properties map[string]string) *gryf.StageDescriptor {
	desc := &gryf.StageDescriptor{
		Name:            p.Name(),
		MapSequence:     make([]string, 0, len(p.MapSequence)+1),
		Config:          make(map[string]string),
		MapOutputSchema: p.MapOutputSchema,
		OutputSchema:    p.OutputSchema,
	}
	for k, v := range properties {
		desc.Config[k] = v
	}
	for i, op := range p.MapSequence {
		desc.MapSequence = append(desc.MapSequence, op.Name)
		for k, v := range op.Config {
			desc.Config[k+"-"+strconv.Itoa(i)] = v
		}
	}
	if p.GroupingOp != nil {
		pos := len(desc.MapSequence)
		desc.MapSequence = append(desc.MapSequence, p.GroupingOp.Name)
		for k, v := range p.GroupingOp.Config {
			desc.Config[k+"-"+strconv.Itoa(pos)] = v
		}
		desc.Reducer = p.GroupingOp.Reducer
		desc.Combiner = p.GroupingOp.Combiner
	}
	return desc
}

// ExecutableStage is a StagePlan bound to concrete input and output locations
// and formats
type ExecutableStage struct {
	Plan         *StagePlan
	Input        gryf.Location
	InputFormat  gryf.DataFormat
	Output       gryf.Location
	OutputFormat gryf.DataFormat

	descriptor *gryf.StageDescriptor
}

// Descriptor returns the substrate-facing form of this stage, built once
// during composition
func (s *ExecutableStage) Descriptor() *gryf.StageDescriptor {
	return s.descriptor
}

// ExecutablePipeline is an ordered chain of executable stages. It exclusively
// owns the intermediate locations allocated between adjacent stages; the
// source and sink locations belong to the caller.
type ExecutablePipeline struct {
	Stages        []*ExecutableStage
	intermediates map[gryf.Location]bool
}

// Size returns the number of stages in this pipeline
func (ep *ExecutablePipeline) Size() int {
	return len(ep.Stages)
}

// Owns returns true iff loc is an intermediate location allocated by this pipeline
func (ep *ExecutablePipeline) Owns(loc gryf.Location) bool {
	return ep.intermediates[loc]
}

// Intermediates returns the intermediate locations allocated by this pipeline
func (ep *ExecutablePipeline) Intermediates() []gryf.Location {
	locs := make([]gryf.Location, 0, len(ep.intermediates))
	for loc := range ep.intermediates {
		locs = append(locs, loc)
	}
	return locs
}
