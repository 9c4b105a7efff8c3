package driver

import (
	"context"

	"github.com/go-gryf/gryf"
	"github.com/go-gryf/gryf/internal/pipeline"
	"github.com/go-gryf/gryf/internal/stats"
	"github.com/go-gryf/gryf/logging"
)

// Pipeline is the caller-facing driver for one compiler run. Operations are
// appended with Apply, then CompileAndRun lowers them into a stage chain and
// executes it. A Pipeline is single-use: after CompileAndRun returns, create
// a new one for the next run.
type Pipeline struct {
	conf       *gryf.RunConfig
	substrate  gryf.Substrate
	storage    gryf.Storage
	builder    *pipeline.Builder
	tracker    *stats.RunStatistics
	onProgress func(gryf.Progress)
}

// NewPipeline returns a Pipeline targeting the given substrate and storage
func NewPipeline(conf *gryf.RunConfig, substrate gryf.Substrate, storage gryf.Storage) *Pipeline {
	return &Pipeline{
		conf:      conf,
		substrate: substrate,
		storage:   storage,
		builder:   pipeline.NewBuilder(),
		tracker:   &stats.RunStatistics{},
	}
}

// OnProgress registers a callback invoked before each stage submission. A
// side effect only; it never affects control flow.
func (p *Pipeline) OnProgress(fn func(gryf.Progress)) {
	p.onProgress = fn
}

// Stats returns statistics about this Pipeline's run
func (p *Pipeline) Stats() gryf.RuntimeStatistics {
	return p.tracker
}

// Apply appends operations to the pipeline in order. An operation whose
// declared input schema does not match the running schema fails here, before
// anything is submitted to the substrate.
func (p *Pipeline) Apply(ops ...*gryf.Operation) error {
	for _, op := range ops {
		if err := p.builder.Append(op); err != nil {
			return err
		}
	}
	return nil
}

// CompileAndRun lowers the applied operations into a chain of stages, wires
// the chain together through intermediate storage, and executes it strictly
// in order. Returns 0 on success and 1 on failure. An empty operation
// sequence compiles to zero stages and is a successful no-op.
func (p *Pipeline) CompileAndRun(ctx context.Context) int {
	plans := p.builder.Flush()
	logging.Log(logging.InfoLevel, "Compiled to %d stage(s)", len(plans))
	if len(plans) == 0 {
		return 0
	}
	ep, err := pipeline.Compose(plans, p.conf, p.storage)
	if err != nil {
		logging.Log(logging.ErrorLevel, "Unable to compose pipeline: %v", err)
		return 1
	}
	if p.conf.OverwriteSink {
		if err := p.overwriteSink(ep); err != nil {
			logging.Log(logging.ErrorLevel, "Unable to overwrite sink location: %v", err)
			return 1
		}
	}
	if err := pipeline.Execute(ctx, ep, p.substrate, p.storage, p.tracker, p.onProgress); err != nil {
		logging.Log(logging.ErrorLevel, "Pipeline execution failed: %v", err)
		return 1
	}
	return 0
}

// overwriteSink deletes an existing sink location before execution begins.
// The sink is the terminal stage's output, which composition has already
// resolved to either the graph sink or the statistics sink.
func (p *Pipeline) overwriteSink(ep *pipeline.ExecutablePipeline) error {
	sink := ep.Stages[ep.Size()-1].Output
	exists, err := p.storage.Exists(sink)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return p.storage.Delete(sink, true)
}
