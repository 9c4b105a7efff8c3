package pipeline

import (
	"context"

	"github.com/go-gryf/gryf"
	"github.com/go-gryf/gryf/errors"
	"github.com/go-gryf/gryf/internal/stats"
	"github.com/go-gryf/gryf/logging"
)

// Execute runs the pipeline's stages strictly in order against the substrate.
// Stage i+1 is not submitted until stage i has reported completion. As soon as
// a stage finishes, the intermediate location it consumed is deleted; deletion
// failures are logged and never fail the run.
//
// If a stage fails, execution stops immediately and the failing stage index is
// reported. Stages already completed are not undone, and intermediate
// locations not yet consumed are deliberately left in place so they can be
// inspected after the fact.
func Execute(ctx context.Context, ep *ExecutablePipeline, substrate gryf.Substrate, storage gryf.Storage, tracker *stats.RunStatistics, onProgress func(gryf.Progress)) error {
	count := ep.Size()
	if tracker != nil {
		tracker.Start(count)
		defer tracker.Finish()
	}
	for i, stage := range ep.Stages {
		if onProgress != nil {
			onProgress(gryf.Progress{StageIndex: i, StageCount: count})
		}
		logging.Log(logging.InfoLevel, "Executing stage %d out of %d: %s", i+1, count, stage.Plan.Name())
		if tracker != nil {
			tracker.StartStage()
		}
		if err := substrate.Submit(ctx, stage.Descriptor()); err != nil {
			return errors.ExecutionError{StageIndex: i, Cause: err}
		}
		if tracker != nil {
			tracker.EndStage()
		}
		if ep.Owns(stage.Input) {
			release(storage, stage.Input)
		}
	}
	return nil
}

// release deletes a consumed intermediate location, logging and swallowing
// any failure
func release(storage gryf.Storage, loc gryf.Location) {
	exists, err := storage.Exists(loc)
	if err != nil {
		logging.Log(logging.WarnLevel, "Unable to check intermediate location %s: %v", loc, err)
		return
	}
	if !exists {
		return
	}
	if err := storage.Delete(loc, true); err != nil {
		logging.Log(logging.WarnLevel, "Unable to delete intermediate location %s: %v", loc, err)
	}
}
