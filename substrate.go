package gryf

import "context"

// Location is an opaque storage handle understood by the substrate's Storage.
// Intermediate locations are generated by the compiler; source and sink
// locations come from RunConfig.
type Location string

// StageDescriptor is the fully-resolved form of one compiled stage, submitted
// to the substrate for execution. Config is a per-stage copy and is never
// mutated after submission.
type StageDescriptor struct {
	Name        string            // human-readable stage summary, for logging
	MapSequence []string          // ordered fused map operation names, applied per record in this exact order
	Reducer     string            // reduce logic name, empty for map-only stages
	Combiner    string            // optional pre-aggregation name, only set when Reducer is set
	Config      map[string]string // merged operation parameters and run-wide properties

	MapOutputSchema Schema // schema emitted by the map phase
	OutputSchema    Schema // schema emitted by the stage as a whole

	Input        Location
	InputFormat  DataFormat
	Output       Location
	OutputFormat DataFormat
}

// Substrate is the batch-execution cluster the compiler targets. Submit blocks
// until the stage's distributed execution has finished or failed; any
// parallelism inside the substrate is opaque to the compiler.
type Substrate interface {
	Submit(ctx context.Context, stage *StageDescriptor) error
}

// Storage is the substrate's storage service, used to manage the lifetime of
// intermediate locations
type Storage interface {
	Exists(loc Location) (bool, error)
	Delete(loc Location, recursive bool) error
}

// Progress is emitted before each stage submission. A side effect only; it
// never affects control flow.
type Progress struct {
	StageIndex int
	StageCount int
}
