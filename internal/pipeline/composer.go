package pipeline

import (
	"fmt"

	"github.com/go-gryf/gryf"
	"github.com/go-gryf/gryf/errors"
	"github.com/go-gryf/gryf/logging"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

const intermediatePrefix = "gryf-intermediate-"

// Compose assigns input/output formats and storage locations to an ordered
// list of stage plans, producing an ExecutablePipeline. The first stage reads
// the configured source; each adjacent pair of stages is connected through a
// freshly allocated intermediate location in the canonical intermediate
// format; the last stage writes to the graph sink if the pipeline is
// derivation-producing, or the statistics sink otherwise.
//
// Composition is all-or-nothing: if any step fails after allocation has
// begun, every intermediate location allocated so far is rolled back (best
// effort) and the original failure is returned.
func Compose(plans []*StagePlan, conf *gryf.RunConfig, storage gryf.Storage) (*ExecutablePipeline, error) {
	ep := &ExecutablePipeline{intermediates: make(map[gryf.Location]bool)}
	if len(plans) == 0 {
		return ep, nil
	}
	if !gryf.IsSupportedSourceFormat(conf.SourceFormat) {
		return nil, errors.UnsupportedFormatError{Format: conf.SourceFormat}
	}
	derivation := true
	for _, plan := range plans {
		if !plan.OutputSchema.Equals(gryf.DefaultGraphSchema()) {
			derivation = false
			break
		}
	}
	for i, plan := range plans {
		stage := &ExecutableStage{Plan: plan}
		if i == 0 {
			stage.Input = conf.SourceLocation
			stage.InputFormat = conf.SourceFormat
		} else {
			stage.Input = ep.Stages[i-1].Output
			stage.InputFormat = gryf.IntermediateFormat
		}
		if i == len(plans)-1 {
			sink, format := conf.GraphSinkLocation, conf.GraphSinkFormat
			if !derivation {
				sink, format = conf.StatsSinkLocation, conf.StatsSinkFormat
			}
			if sink == "" {
				rollback(ep, storage)
				return nil, errors.CompositionError{Cause: fmt.Errorf("no sink location configured for %s output", terminalKind(derivation))}
			}
			stage.Output = sink
			stage.OutputFormat = format
		} else {
			loc, err := intermediateLocation()
			if err != nil {
				rollback(ep, storage)
				return nil, errors.CompositionError{Cause: err}
			}
			ep.intermediates[loc] = true
			stage.Output = loc
			stage.OutputFormat = gryf.IntermediateFormat
		}
		desc := plan.Descriptor(conf.Properties)
		desc.Input = stage.Input
		desc.InputFormat = stage.InputFormat
		desc.Output = stage.Output
		desc.OutputFormat = stage.OutputFormat
		stage.descriptor = desc
		ep.Stages = append(ep.Stages, stage)
	}
	return ep, nil
}

func terminalKind(derivation bool) string {
	if derivation {
		return "graph"
	}
	return "statistics"
}

// intermediateLocation allocates a globally-unique storage handle for
// connecting two adjacent stages
func intermediateLocation() (gryf.Location, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return gryf.Location(intermediatePrefix + id.String()), nil
}

// rollback deletes every intermediate location the pipeline has allocated so
// far. Individual delete failures are collected and logged, never propagated,
// so they cannot mask the failure which triggered the rollback. Locations
// which are already absent are skipped.
func rollback(ep *ExecutablePipeline, storage gryf.Storage) {
	var merr *multierror.Error
	for loc := range ep.intermediates {
		exists, err := storage.Exists(loc)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if !exists {
			continue
		}
		if err := storage.Delete(loc, true); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		logging.Log(logging.WarnLevel, "Unable to clean up intermediate locations: %v", err)
	}
}
