package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gryf/gryf"
	"golang.org/x/sync/errgroup"
)

// MapFunc is the per-record logic of one map operation. Emitted records are
// fed to the next operation in the stage's fused map sequence.
type MapFunc func(rec Record, emit func(Record)) error

// ReduceFunc merges all values sharing a key into zero or more output records
type ReduceFunc func(key []byte, values [][]byte, emit func(Record)) error

// Substrate executes stage descriptors against in-memory datasets. Map and
// reduce record functions are registered by operation name; submitting a stage
// naming an unregistered operation fails. Submit blocks until the stage has
// finished, like a real cluster submission.
type Substrate struct {
	store       *Store
	lock        sync.RWMutex
	mappers     map[string]MapFunc
	reducers    map[string]ReduceFunc
	parallelism int
	numBuckets  int
}

// NewSubstrate returns a Substrate executing against the given store
func NewSubstrate(store *Store) *Substrate {
	return &Substrate{
		store:       store,
		mappers:     make(map[string]MapFunc),
		reducers:    make(map[string]ReduceFunc),
		parallelism: 4,
		numBuckets:  8,
	}
}

// RegisterMap registers the map logic for an operation name
func (s *Substrate) RegisterMap(name string, fn MapFunc) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.mappers[name] = fn
}

// RegisterReduce registers the reduce logic for a reducer or combiner name
func (s *Substrate) RegisterReduce(name string, fn ReduceFunc) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.reducers[name] = fn
}

// Submit executes one stage: the fused map sequence is applied to every input
// record in order, then, if the stage has a reducer, records are bucketed by
// key hash and reduced (combined first, when a combiner is present). The
// result is written to the stage's output location.
func (s *Substrate) Submit(ctx context.Context, desc *gryf.StageDescriptor) error {
	mapFns, reduceFn, combineFn, err := s.resolve(desc)
	if err != nil {
		return err
	}
	input, err := s.store.Read(desc.Input)
	if err != nil {
		return err
	}
	mapped, err := s.runMapPhase(ctx, mapFns, input)
	if err != nil {
		return err
	}
	if reduceFn == nil {
		s.store.Write(desc.Output, mapped)
		return nil
	}
	output, err := s.runReducePhase(mapped, reduceFn, combineFn)
	if err != nil {
		return err
	}
	s.store.Write(desc.Output, output)
	return nil
}

// resolve looks up every operation the stage names, before any work begins
func (s *Substrate) resolve(desc *gryf.StageDescriptor) ([]MapFunc, ReduceFunc, ReduceFunc, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	mapFns := make([]MapFunc, len(desc.MapSequence))
	for i, name := range desc.MapSequence {
		fn, ok := s.mappers[name]
		if !ok {
			return nil, nil, nil, fmt.Errorf("No map function registered for %s", name)
		}
		mapFns[i] = fn
	}
	var reduceFn, combineFn ReduceFunc
	if desc.Reducer != "" {
		fn, ok := s.reducers[desc.Reducer]
		if !ok {
			return nil, nil, nil, fmt.Errorf("No reduce function registered for %s", desc.Reducer)
		}
		reduceFn = fn
	}
	if desc.Combiner != "" {
		fn, ok := s.reducers[desc.Combiner]
		if !ok {
			return nil, nil, nil, fmt.Errorf("No reduce function registered for combiner %s", desc.Combiner)
		}
		combineFn = fn
	}
	return mapFns, reduceFn, combineFn, nil
}

// runMapPhase applies the fused map sequence to every record, processing
// chunks of the input in parallel. Within a single record, operation k sees
// the output of operation k-1.
func (s *Substrate) runMapPhase(ctx context.Context, mapFns []MapFunc, input []Record) ([]Record, error) {
	chunks := chunkRecords(input, s.parallelism)
	results := make([][]Record, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i := range chunks {
		i := i
		g.Go(func() error {
			out := []Record{}
			for _, rec := range chunks[i] {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := applyMapSequence(mapFns, rec, &out); err != nil {
					return err
				}
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	mapped := []Record{}
	for _, chunk := range results {
		mapped = append(mapped, chunk...)
	}
	return mapped, nil
}

// applyMapSequence threads one record through the stage's map operations in order
func applyMapSequence(mapFns []MapFunc, rec Record, out *[]Record) error {
	prev := []Record{rec}
	for _, fn := range mapFns {
		next := make([]Record, 0, len(prev))
		for _, r := range prev {
			if err := fn(r, func(nr Record) { next = append(next, nr) }); err != nil {
				return err
			}
		}
		prev = next
	}
	*out = append(*out, prev...)
	return nil
}

// runReducePhase groups mapped records by key, bucketing keys by hash the way
// a real shuffle partitions them across reducers, and reduces each group. A
// combiner, when present, pre-aggregates each group first.
func (s *Substrate) runReducePhase(mapped []Record, reduceFn ReduceFunc, combineFn ReduceFunc) ([]Record, error) {
	buckets := make([]map[string][][]byte, s.numBuckets)
	for i := range buckets {
		buckets[i] = make(map[string][][]byte)
	}
	for _, rec := range mapped {
		b := xxhash.Sum64(rec.Key) % uint64(s.numBuckets)
		buckets[b][string(rec.Key)] = append(buckets[b][string(rec.Key)], rec.Value)
	}
	output := []Record{}
	for _, bucket := range buckets {
		for key, values := range bucket {
			if combineFn != nil {
				combined := []Record{}
				err := combineFn([]byte(key), values, func(r Record) { combined = append(combined, r) })
				if err != nil {
					return nil, err
				}
				values = make([][]byte, len(combined))
				for i, r := range combined {
					values[i] = r.Value
				}
			}
			err := reduceFn([]byte(key), values, func(r Record) { output = append(output, r) })
			if err != nil {
				return nil, err
			}
		}
	}
	return output, nil
}

// chunkRecords splits records into at most n roughly equal chunks
func chunkRecords(records []Record, n int) [][]Record {
	if len(records) == 0 {
		return nil
	}
	size := (len(records) + n - 1) / n
	chunks := [][]Record{}
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}
