package gryf

// DataFormat identifies how records are encoded at a storage location
type DataFormat string

const (
	// GraphSONFormat is line-delimited JSON vertex data
	GraphSONFormat DataFormat = "graphson"
	// SequenceFormat is the substrate's native binary record format, used for all intermediate locations
	SequenceFormat DataFormat = "sequence"
	// RexsterFormat sources vertices from a REST-based graph server
	RexsterFormat DataFormat = "rexster"
	// ColumnStoreFormat sources vertices from a column-oriented graph database
	ColumnStoreFormat DataFormat = "columnstore"
	// TextFormat is plain-text output, used for statistics sinks
	TextFormat DataFormat = "text"
)

// IntermediateFormat is the canonical format for pipeline-owned locations
// connecting adjacent stages
const IntermediateFormat = SequenceFormat

// supportedSourceFormats is the closed set of formats a pipeline may read
// its source data from
var supportedSourceFormats = map[DataFormat]bool{
	GraphSONFormat:    true,
	SequenceFormat:    true,
	RexsterFormat:     true,
	ColumnStoreFormat: true,
}

// IsSupportedSourceFormat returns true iff f may be used as a pipeline source format
func IsSupportedSourceFormat(f DataFormat) bool {
	return supportedSourceFormats[f]
}
