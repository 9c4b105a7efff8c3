package gryf

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a pipeline run
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the pipeline run
	GetStartTime() time.Time
	// GetRuntime returns the running time of the pipeline run
	GetRuntime() time.Duration
	// GetStageRuntimes returns the recorded runtime of each completed stage
	GetStageRuntimes() []time.Duration
	// GetNumStagesCompleted returns the number of stages which have finished so far
	GetNumStagesCompleted() int
}
