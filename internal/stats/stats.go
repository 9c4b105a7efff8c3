package stats

import "time"

// RunStatistics contains statistics about a pipeline run
type RunStatistics struct {
	started         bool
	finished        bool
	startTime       time.Time
	totalRuntime    int64
	stageRuntimes   []int64
	stagesCompleted int

	currentStageStartTime time.Time
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start(numStages int) {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.stageRuntimes = make([]int64, numStages)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.finished = true
	rs.totalRuntime = time.Since(rs.startTime).Nanoseconds()
}

// StartStage tracks the beginning of a new stage
func (rs *RunStatistics) StartStage() {
	rs.currentStageStartTime = time.Now()
}

// EndStage tracks the end of the current stage
func (rs *RunStatistics) EndStage() {
	if rs.stagesCompleted < len(rs.stageRuntimes) {
		rs.stageRuntimes[rs.stagesCompleted] = time.Since(rs.currentStageStartTime).Nanoseconds()
	}
	rs.stagesCompleted++
}

// GetStartTime returns the start time of the pipeline run
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the pipeline run
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return time.Duration(rs.totalRuntime)
	}
	if !rs.started {
		return 0
	}
	return time.Since(rs.startTime)
}

// GetStageRuntimes returns the recorded runtime of each completed stage
func (rs *RunStatistics) GetStageRuntimes() []time.Duration {
	runtimes := make([]time.Duration, len(rs.stageRuntimes))
	for i, r := range rs.stageRuntimes {
		runtimes[i] = time.Duration(r)
	}
	return runtimes
}

// GetNumStagesCompleted returns the number of stages which have finished so far
func (rs *RunStatistics) GetNumStagesCompleted() int {
	return rs.stagesCompleted
}
