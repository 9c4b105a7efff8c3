package summary

import (
	"testing"

	"github.com/go-gryf/gryf"
	"github.com/stretchr/testify/require"
)

func TestValueDistribution(t *testing.T) {
	op, err := ValueDistribution(gryf.VertexClass, "age")
	require.Nil(t, err)
	require.Equal(t, gryf.GroupingMapReduce, op.Kind)
	require.Equal(t, gryf.Schema{Key: gryf.TextRecord, Value: gryf.LongRecord}, op.OutputSchema)
	// counting is commutative and associative, so the reducer doubles as combiner
	require.Equal(t, op.Reducer, op.Combiner)

	_, err = ValueDistribution(gryf.VertexClass, "")
	require.NotNil(t, err)
}

func TestGroupCount(t *testing.T) {
	op, err := GroupCount(gryf.EdgeClass, "it.label", "1")
	require.Nil(t, err)
	require.Equal(t, gryf.GroupingMapReduce, op.Kind)
	require.Equal(t, op.Reducer, op.Combiner)
	require.Equal(t, "it.label", op.Config[GroupCountKeyClosureKey])

	_, err = GroupCount(gryf.EdgeClass, "", "1")
	require.NotNil(t, err)
}

func TestCountHasNoCombiner(t *testing.T) {
	op, err := Count(gryf.VertexClass)
	require.Nil(t, err)
	require.Equal(t, gryf.GroupingMapReduce, op.Kind)
	// every partial tally shares one key, so pre-aggregation buys nothing
	require.Empty(t, op.Combiner)
	require.Equal(t, gryf.Schema{Key: gryf.IntRecord, Value: gryf.LongRecord}, op.MapOutputSchema)
	require.Equal(t, gryf.Schema{Key: gryf.IntRecord, Value: gryf.TextRecord}, op.OutputSchema)
}

func TestSummarySchemasAreNotGraphSchemas(t *testing.T) {
	distribution, err := ValueDistribution(gryf.VertexClass, "age")
	require.Nil(t, err)
	count, err := Count(gryf.VertexClass)
	require.Nil(t, err)
	for _, op := range []*gryf.Operation{distribution, count} {
		require.False(t, op.OutputSchema.Equals(gryf.DefaultGraphSchema()))
	}
}
