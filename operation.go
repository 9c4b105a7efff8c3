package gryf

// OperationKind determines whether an operation can be fused into an open
// stage or forces a stage boundary
type OperationKind string

const (
	// MapOnly operations consider one record at a time and chain freely within a single stage
	MapOnly OperationKind = "map_only"
	// GroupingMapReduce operations require all records sharing a key to be
	// co-located before their reduce logic runs, ending the current stage
	GroupingMapReduce OperationKind = "grouping_map_reduce"
)

// Operation is an immutable descriptor for one requested pipeline step.
// Operations are produced by the constructors in the operations subpackages,
// which validate parameters and populate Config; the compiler treats the
// descriptor as opaque metadata for fusion and schema-propagation decisions.
type Operation struct {
	Name   string            // namespaced operation identifier, e.g. "transform.vertices"
	Kind   OperationKind     // fusability of this operation
	Config map[string]string // operation parameters, transported to the substrate verbatim
	// InputSchema is the schema this operation requires from the preceding
	// operation (or the source, if it is first)
	InputSchema Schema
	// MapOutputSchema is the schema emitted by the map phase. Equal to
	// OutputSchema for MapOnly operations.
	MapOutputSchema Schema
	// OutputSchema is the schema emitted once the operation completes
	OutputSchema Schema
	// Reducer names the reduce logic of a GroupingMapReduce operation. Empty for MapOnly.
	Reducer string
	// Combiner optionally names a commutative, associative pre-aggregation of
	// the same reduction. A performance hint only; never changes output semantics.
	Combiner string
}
