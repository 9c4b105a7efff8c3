package gryf

import "fmt"

// RecordType enumerates the key and value types a stage may emit or consume.
// The set is closed: the substrate only knows how to shuffle and store these.
type RecordType int

const (
	// NullRecord is a placeholder type for keys or values which carry no data
	NullRecord RecordType = iota
	// VertexRecord is a full graph vertex, including its incident edges and properties
	VertexRecord
	// HolderRecord is a vertex-in-transit wrapper, used as the map output of grouping traversal operations
	HolderRecord
	// TextRecord is a UTF-8 string
	TextRecord
	// LongRecord is a 64-bit integer
	LongRecord
	// IntRecord is a 32-bit integer
	IntRecord
)

// String returns a textual representation of this RecordType
func (t RecordType) String() string {
	switch t {
	case NullRecord:
		return "null"
	case VertexRecord:
		return "vertex"
	case HolderRecord:
		return "holder"
	case TextRecord:
		return "text"
	case LongRecord:
		return "long"
	case IntRecord:
		return "int"
	default:
		return "unknown"
	}
}

// Schema is the key/value record type pair flowing between operations within a
// stage, and between adjacent stages. The schema emitted by one stage must
// equal the schema consumed by the next.
type Schema struct {
	Key   RecordType
	Value RecordType
}

// Equals returns true iff both key and value types match
func (s Schema) Equals(other Schema) bool {
	return s == other
}

// String returns a textual representation of this Schema
func (s Schema) String() string {
	return fmt.Sprintf("(%s, %s)", s.Key, s.Value)
}

// DefaultGraphSchema is the schema of a full graph dataset. A pipeline whose
// every stage emits this schema derives a new graph; any other terminal schema
// makes the pipeline statistics-producing.
func DefaultGraphSchema() Schema {
	return Schema{Key: NullRecord, Value: VertexRecord}
}
