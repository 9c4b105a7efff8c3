package gryf

// ElementClass identifies which class of graph element an operation applies to
type ElementClass string

const (
	// VertexClass applies an operation to vertices
	VertexClass ElementClass = "vertex"
	// EdgeClass applies an operation to edges
	EdgeClass ElementClass = "edge"
)

// IsValidElementClass returns true iff c is a recognized ElementClass
func IsValidElementClass(c ElementClass) bool {
	return c == VertexClass || c == EdgeClass
}

// Direction identifies which incident edges of a vertex an operation traverses
type Direction string

const (
	// InDirection traverses incoming edges
	InDirection Direction = "in"
	// OutDirection traverses outgoing edges
	OutDirection Direction = "out"
	// BothDirections traverses incoming and outgoing edges
	BothDirections Direction = "both"
)

// IsValidDirection returns true iff d is a recognized Direction
func IsValidDirection(d Direction) bool {
	return d == InDirection || d == OutDirection || d == BothDirections
}

// Comparison identifies how a property filter compares element property
// values against its configured values
type Comparison string

const (
	// Equal retains elements whose property equals a configured value
	Equal Comparison = "equal"
	// NotEqual retains elements whose property equals no configured value
	NotEqual Comparison = "not_equal"
	// GreaterThan retains elements whose property exceeds a configured value
	GreaterThan Comparison = "greater_than"
	// GreaterThanEqual retains elements whose property equals or exceeds a configured value
	GreaterThanEqual Comparison = "greater_than_equal"
	// LessThan retains elements whose property falls below a configured value
	LessThan Comparison = "less_than"
	// LessThanEqual retains elements whose property equals or falls below a configured value
	LessThanEqual Comparison = "less_than_equal"
)

// IsValidComparison returns true iff c is a recognized Comparison
func IsValidComparison(c Comparison) bool {
	switch c {
	case Equal, NotEqual, GreaterThan, GreaterThanEqual, LessThan, LessThanEqual:
		return true
	default:
		return false
	}
}

// Action identifies what a commit operation does with marked elements
type Action string

const (
	// KeepAction retains marked elements and discards the rest
	KeepAction Action = "keep"
	// DropAction discards marked elements and retains the rest
	DropAction Action = "drop"
)

// IsValidAction returns true iff a is a recognized Action
func IsValidAction(a Action) bool {
	return a == KeepAction || a == DropAction
}
