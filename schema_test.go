package gryf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaEquality(t *testing.T) {
	require.True(t, DefaultGraphSchema().Equals(Schema{Key: NullRecord, Value: VertexRecord}))
	require.False(t, DefaultGraphSchema().Equals(Schema{Key: NullRecord, Value: TextRecord}))
	require.False(t, DefaultGraphSchema().Equals(Schema{Key: TextRecord, Value: VertexRecord}))
}

func TestSchemaString(t *testing.T) {
	require.Equal(t, "(null, vertex)", DefaultGraphSchema().String())
	require.Equal(t, "(text, long)", Schema{Key: TextRecord, Value: LongRecord}.String())
}

func TestSupportedSourceFormats(t *testing.T) {
	require.True(t, IsSupportedSourceFormat(GraphSONFormat))
	require.True(t, IsSupportedSourceFormat(SequenceFormat))
	require.True(t, IsSupportedSourceFormat(RexsterFormat))
	require.True(t, IsSupportedSourceFormat(ColumnStoreFormat))
	require.False(t, IsSupportedSourceFormat(TextFormat))
	require.False(t, IsSupportedSourceFormat(DataFormat("csv")))
}
