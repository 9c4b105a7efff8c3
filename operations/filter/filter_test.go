package filter

import (
	"testing"

	"github.com/go-gryf/gryf"
	"github.com/stretchr/testify/require"
)

func TestFilterValidation(t *testing.T) {
	op, err := Filter(gryf.EdgeClass, "it.label == 'knows'")
	require.Nil(t, err)
	require.Equal(t, gryf.MapOnly, op.Kind)
	require.Equal(t, "edge", op.Config[FilterClassKey])

	_, err = Filter(gryf.EdgeClass, "")
	require.NotNil(t, err)
}

func TestPropertyFilterValues(t *testing.T) {
	op, err := PropertyFilter(gryf.VertexClass, false, "age", gryf.GreaterThan, 21, 65)
	require.Nil(t, err)
	require.Equal(t, "21,65", op.Config[PropertyFilterValuesKey])
	require.Equal(t, "number", op.Config[PropertyFilterValueClassKey])
	require.Equal(t, "greater_than", op.Config[PropertyFilterCompareKey])
	require.Equal(t, "false", op.Config[PropertyFilterNullWildcardKey])

	op, err = PropertyFilter(gryf.VertexClass, true, "name", gryf.Equal, "alice")
	require.Nil(t, err)
	require.Equal(t, "string", op.Config[PropertyFilterValueClassKey])
	require.Equal(t, "true", op.Config[PropertyFilterNullWildcardKey])
}

func TestPropertyFilterRejectsMixedValueTypes(t *testing.T) {
	_, err := PropertyFilter(gryf.VertexClass, false, "age", gryf.Equal, 29, "thirty")
	require.NotNil(t, err)
}

func TestPropertyFilterRejectsUnknownValueClass(t *testing.T) {
	_, err := PropertyFilter(gryf.VertexClass, false, "age", gryf.Equal, struct{}{})
	require.NotNil(t, err)
}

func TestPropertyFilterRejectsBadComparison(t *testing.T) {
	_, err := PropertyFilter(gryf.VertexClass, false, "age", gryf.Comparison("approximately"), 29)
	require.NotNil(t, err)
	_, err = PropertyFilter(gryf.VertexClass, false, "age", gryf.Equal)
	require.NotNil(t, err)
}

func TestIntervalFilterBounds(t *testing.T) {
	op, err := IntervalFilter(gryf.VertexClass, false, "age", 18, 30)
	require.Nil(t, err)
	require.Equal(t, "18", op.Config[IntervalFilterStartKey])
	require.Equal(t, "30", op.Config[IntervalFilterEndKey])
	require.Equal(t, "number", op.Config[IntervalFilterValueClassKey])

	_, err = IntervalFilter(gryf.VertexClass, false, "age", 18, "thirty")
	require.NotNil(t, err)
}

func TestBackIsAGroupingOperation(t *testing.T) {
	op, err := Back(gryf.VertexClass, 2)
	require.Nil(t, err)
	require.Equal(t, gryf.GroupingMapReduce, op.Kind)
	require.Equal(t, "filter.back.reduce", op.Reducer)
	require.Equal(t, "2", op.Config[BackStepKey])

	_, err = Back(gryf.VertexClass, 0)
	require.NotNil(t, err)
}

func TestDuplicateIsMapOnly(t *testing.T) {
	op, err := Duplicate(gryf.EdgeClass)
	require.Nil(t, err)
	require.Equal(t, gryf.MapOnly, op.Kind)
	require.Equal(t, gryf.DefaultGraphSchema(), op.OutputSchema)
}
