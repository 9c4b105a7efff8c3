package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-gryf/gryf"
	"github.com/go-gryf/gryf/errors"
	"github.com/go-gryf/gryf/internal/stats"
	"github.com/stretchr/testify/require"
)

// fakeStorage is a map-backed Storage for executor tests
type fakeStorage struct {
	data       map[gryf.Location]bool
	failDelete bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[gryf.Location]bool)}
}

func (s *fakeStorage) Exists(loc gryf.Location) (bool, error) {
	return s.data[loc], nil
}

func (s *fakeStorage) Delete(loc gryf.Location, recursive bool) error {
	if s.failDelete {
		return fmt.Errorf("delete refused for %s", loc)
	}
	delete(s.data, loc)
	return nil
}

// fakeSubstrate records submissions in order and materializes each stage's
// output location, failing at a chosen stage index
type fakeSubstrate struct {
	storage   *fakeStorage
	submitted []*gryf.StageDescriptor
	failAt    int // -1 to never fail
}

func (f *fakeSubstrate) Submit(ctx context.Context, desc *gryf.StageDescriptor) error {
	if len(f.submitted) == f.failAt {
		return fmt.Errorf("stage lost on cluster")
	}
	f.submitted = append(f.submitted, desc)
	f.storage.data[desc.Output] = true
	return nil
}

func composeForTest(t *testing.T, n int, storage gryf.Storage) *ExecutablePipeline {
	ep, err := Compose(derivationPlans(n), testConf(), storage)
	require.Nil(t, err)
	return ep
}

func TestExecuteRunsStagesInOrder(t *testing.T) {
	storage := newFakeStorage()
	storage.data["source"] = true
	substrate := &fakeSubstrate{storage: storage, failAt: -1}
	ep := composeForTest(t, 3, storage)

	progress := []gryf.Progress{}
	tracker := &stats.RunStatistics{}
	err := Execute(context.Background(), ep, substrate, storage, tracker, func(p gryf.Progress) {
		progress = append(progress, p)
	})
	require.Nil(t, err)
	require.Len(t, substrate.submitted, 3)
	for i, desc := range substrate.submitted {
		require.Equal(t, ep.Stages[i].Descriptor(), desc)
	}
	require.Equal(t, []gryf.Progress{{StageIndex: 0, StageCount: 3}, {StageIndex: 1, StageCount: 3}, {StageIndex: 2, StageCount: 3}}, progress)
	require.Equal(t, 3, tracker.GetNumStagesCompleted())
	// every consumed intermediate location has been removed
	for _, loc := range ep.Intermediates() {
		exists, err := storage.Exists(loc)
		require.Nil(t, err)
		require.False(t, exists)
	}
	// external locations survive
	exists, err := storage.Exists("source")
	require.Nil(t, err)
	require.True(t, exists)
	exists, err = storage.Exists("graph-sink")
	require.Nil(t, err)
	require.True(t, exists)
}

func TestExecuteStopsOnStageFailure(t *testing.T) {
	storage := newFakeStorage()
	substrate := &fakeSubstrate{storage: storage, failAt: 1}
	ep := composeForTest(t, 3, storage)

	err := Execute(context.Background(), ep, substrate, storage, nil, nil)
	require.NotNil(t, err)
	execErr, ok := err.(errors.ExecutionError)
	require.True(t, ok)
	require.Equal(t, 1, execErr.StageIndex)
	require.NotNil(t, execErr.Unwrap())
	require.Len(t, substrate.submitted, 1)
	// the intermediate produced by stage 0 was never consumed, and is
	// deliberately left in place
	exists, err := storage.Exists(ep.Stages[0].Output)
	require.Nil(t, err)
	require.True(t, exists)
}

func TestExecuteEmptyPipeline(t *testing.T) {
	storage := newFakeStorage()
	substrate := &fakeSubstrate{storage: storage, failAt: -1}
	ep, err := Compose(nil, testConf(), storage)
	require.Nil(t, err)
	require.Nil(t, Execute(context.Background(), ep, substrate, storage, nil, nil))
	require.Empty(t, substrate.submitted)
}

func TestExecuteSwallowsReleaseFailures(t *testing.T) {
	storage := newFakeStorage()
	substrate := &fakeSubstrate{storage: storage, failAt: -1}
	ep := composeForTest(t, 2, storage)
	storage.failDelete = true

	err := Execute(context.Background(), ep, substrate, storage, nil, nil)
	require.Nil(t, err)
	require.Len(t, substrate.submitted, 2)
}

func TestExecuteRecordsStageRuntimes(t *testing.T) {
	storage := newFakeStorage()
	substrate := &fakeSubstrate{storage: storage, failAt: -1}
	ep := composeForTest(t, 2, storage)

	tracker := &stats.RunStatistics{}
	require.Nil(t, Execute(context.Background(), ep, substrate, storage, tracker, nil))
	require.Len(t, tracker.GetStageRuntimes(), 2)
	require.True(t, tracker.GetRuntime() > 0)
}
