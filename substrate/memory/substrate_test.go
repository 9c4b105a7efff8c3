package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/go-gryf/gryf"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func intRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{Key: []byte("k"), Value: []byte(strconv.Itoa(i))}
	}
	return records
}

func TestSubmitAppliesMapSequenceInOrder(t *testing.T) {
	store := NewStore()
	store.Write("in", []Record{{Value: []byte("x")}, {Value: []byte("y")}})
	substrate := NewSubstrate(store)
	substrate.RegisterMap("first", func(rec Record, emit func(Record)) error {
		emit(Record{Key: rec.Key, Value: append(rec.Value, 'a')})
		return nil
	})
	substrate.RegisterMap("second", func(rec Record, emit func(Record)) error {
		emit(Record{Key: rec.Key, Value: append(rec.Value, 'b')})
		return nil
	})

	err := substrate.Submit(context.Background(), &gryf.StageDescriptor{
		MapSequence: []string{"first", "second"},
		Input:       "in",
		Output:      "out",
	})
	require.Nil(t, err)
	out, err := store.Read("out")
	require.Nil(t, err)
	require.Len(t, out, 2)
	for _, rec := range out {
		// each record passed through "first" before "second"
		require.Equal(t, "ab", string(rec.Value[1:]))
	}
}

func TestSubmitFiltersWhenMapEmitsNothing(t *testing.T) {
	store := NewStore()
	store.Write("in", intRecords(10))
	substrate := NewSubstrate(store)
	substrate.RegisterMap("odd", func(rec Record, emit func(Record)) error {
		n, err := strconv.Atoi(string(rec.Value))
		if err != nil {
			return err
		}
		if n%2 == 1 {
			emit(rec)
		}
		return nil
	})

	err := substrate.Submit(context.Background(), &gryf.StageDescriptor{
		MapSequence: []string{"odd"},
		Input:       "in",
		Output:      "out",
	})
	require.Nil(t, err)
	out, err := store.Read("out")
	require.Nil(t, err)
	require.Len(t, out, 5)
}

func TestSubmitReducesByKey(t *testing.T) {
	store := NewStore()
	store.Write("in", []Record{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("a"), Value: []byte("3")},
	})
	substrate := NewSubstrate(store)
	substrate.RegisterMap("identity", func(rec Record, emit func(Record)) error {
		emit(rec)
		return nil
	})
	substrate.RegisterReduce("sum", func(key []byte, values [][]byte, emit func(Record)) error {
		total := 0
		for _, v := range values {
			n, err := strconv.Atoi(string(v))
			if err != nil {
				return err
			}
			total += n
		}
		emit(Record{Key: key, Value: []byte(strconv.Itoa(total))})
		return nil
	})

	err := substrate.Submit(context.Background(), &gryf.StageDescriptor{
		MapSequence: []string{"identity"},
		Reducer:     "sum",
		Input:       "in",
		Output:      "out",
	})
	require.Nil(t, err)
	out, err := store.Read("out")
	require.Nil(t, err)
	totals := make(map[string]string)
	for _, rec := range out {
		totals[string(rec.Key)] = string(rec.Value)
	}
	require.Equal(t, map[string]string{"a": "4", "b": "2"}, totals)
}

func TestSubmitCombinerPreAggregates(t *testing.T) {
	store := NewStore()
	store.Write("in", intRecords(8))
	substrate := NewSubstrate(store)
	substrate.RegisterMap("one", func(rec Record, emit func(Record)) error {
		emit(Record{Key: rec.Key, Value: []byte("1")})
		return nil
	})
	var combinerCalls int64
	sum := func(key []byte, values [][]byte, emit func(Record)) error {
		total := 0
		for _, v := range values {
			n, err := strconv.Atoi(string(v))
			if err != nil {
				return err
			}
			total += n
		}
		emit(Record{Key: key, Value: []byte(strconv.Itoa(total))})
		return nil
	}
	substrate.RegisterReduce("sum", sum)
	substrate.RegisterReduce("combine", func(key []byte, values [][]byte, emit func(Record)) error {
		atomic.AddInt64(&combinerCalls, 1)
		return sum(key, values, emit)
	})

	err := substrate.Submit(context.Background(), &gryf.StageDescriptor{
		MapSequence: []string{"one"},
		Reducer:     "sum",
		Combiner:    "combine",
		Input:       "in",
		Output:      "out",
	})
	require.Nil(t, err)
	out, err := store.Read("out")
	require.Nil(t, err)
	require.Len(t, out, 1)
	// pre-aggregation must never change the final result
	require.Equal(t, "8", string(out[0].Value))
	require.True(t, atomic.LoadInt64(&combinerCalls) > 0)
}

func TestSubmitRejectsUnregisteredOperations(t *testing.T) {
	store := NewStore()
	store.Write("in", intRecords(1))
	substrate := NewSubstrate(store)

	err := substrate.Submit(context.Background(), &gryf.StageDescriptor{
		MapSequence: []string{"missing"},
		Input:       "in",
		Output:      "out",
	})
	require.NotNil(t, err)
	// nothing was written
	exists, err := store.Exists("out")
	require.Nil(t, err)
	require.False(t, exists)
}

func TestSubmitFailsOnMissingInput(t *testing.T) {
	store := NewStore()
	substrate := NewSubstrate(store)
	substrate.RegisterMap("identity", func(rec Record, emit func(Record)) error {
		emit(rec)
		return nil
	})

	err := substrate.Submit(context.Background(), &gryf.StageDescriptor{
		MapSequence: []string{"identity"},
		Input:       "nowhere",
		Output:      "out",
	})
	require.NotNil(t, err)
}

func TestSubmitPropagatesMapErrors(t *testing.T) {
	store := NewStore()
	store.Write("in", intRecords(4))
	substrate := NewSubstrate(store)
	substrate.RegisterMap("explode", func(rec Record, emit func(Record)) error {
		return fmt.Errorf("record rejected")
	})

	err := substrate.Submit(context.Background(), &gryf.StageDescriptor{
		MapSequence: []string{"explode"},
		Input:       "in",
		Output:      "out",
	})
	require.NotNil(t, err)
}

func TestStoreDeleteAbsentLocation(t *testing.T) {
	store := NewStore()
	require.NotNil(t, store.Delete("nowhere", true))
}
