package gryf

// RunConfig describes the external storage endpoints of a single pipeline run.
// The source and sink locations are owned by the caller and are never deleted
// by the compiler, with the single exception of OverwriteSink below.
type RunConfig struct {
	SourceLocation Location
	SourceFormat   DataFormat // must be in the supported source format set

	// GraphSinkLocation receives the terminal output of a derivation-producing
	// pipeline (every stage emits the default graph schema)
	GraphSinkLocation Location
	GraphSinkFormat   DataFormat

	// StatsSinkLocation receives the terminal output of a statistics-producing pipeline
	StatsSinkLocation Location
	StatsSinkFormat   DataFormat

	// OverwriteSink deletes an existing sink location before execution begins
	OverwriteSink bool

	// Properties are run-wide configuration pairs copied into every stage
	// descriptor submitted to the substrate
	Properties map[string]string
}
