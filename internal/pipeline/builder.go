package pipeline

import (
	"github.com/go-gryf/gryf"
	"github.com/go-gryf/gryf/errors"
)

// Builder accumulates operation descriptors, fusing consecutive map-only
// operations into a single open stage and closing the stage whenever a
// grouping operation is appended. A Builder is scoped to one compilation and
// discarded after Flush.
type Builder struct {
	open          *StagePlan
	runningSchema gryf.Schema
	plans         []*StagePlan
}

// NewBuilder returns an empty Builder. The running schema starts at the
// default graph schema, since every pipeline begins by reading a graph.
func NewBuilder() *Builder {
	return &Builder{
		open:          &StagePlan{},
		runningSchema: gryf.DefaultGraphSchema(),
	}
}

// RunningSchema returns the schema emitted by the most recently appended
// operation, or the default graph schema if nothing has been appended
func (b *Builder) RunningSchema() gryf.Schema {
	return b.runningSchema
}

// Append adds one operation to the pipeline under construction. A map-only
// operation joins the open stage's fused map sequence; a grouping operation
// closes the open stage and opens a new empty one. The operation's declared
// input schema is checked against the running schema here, at append time,
// so schema errors surface before anything is submitted to the substrate.
func (b *Builder) Append(op *gryf.Operation) error {
	if !op.InputSchema.Equals(b.runningSchema) {
		return errors.SchemaMismatchError{Op: op.Name, Expected: op.InputSchema, Actual: b.runningSchema}
	}
	switch op.Kind {
	case gryf.MapOnly:
		b.open.MapSequence = append(b.open.MapSequence, op)
		b.open.MapOutputSchema = op.OutputSchema
		b.open.OutputSchema = op.OutputSchema
	case gryf.GroupingMapReduce:
		b.open.GroupingOp = op
		b.open.MapOutputSchema = op.MapOutputSchema
		b.open.OutputSchema = op.OutputSchema
		b.plans = append(b.plans, b.open)
		b.open = &StagePlan{}
	}
	b.runningSchema = op.OutputSchema
	return nil
}

// Flush closes a still-open stage if it contains at least one operation, and
// returns the ordered stage plans accumulated so far, resetting the Builder.
// An open stage with zero operations produces nothing, so an empty operation
// sequence compiles to zero stages.
func (b *Builder) Flush() []*StagePlan {
	if len(b.open.MapSequence) > 0 {
		b.plans = append(b.plans, b.open)
	}
	plans := b.plans
	b.plans = nil
	b.open = &StagePlan{}
	b.runningSchema = gryf.DefaultGraphSchema()
	return plans
}
