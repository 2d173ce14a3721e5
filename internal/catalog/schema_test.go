package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeSize(t *testing.T) {
	require.Equal(t, uint32(1), TypeSize(TypeTinyInt))
	require.Equal(t, uint32(1), TypeSize(TypeBoolean))
	require.Equal(t, uint32(1), TypeSize(TypeChar))
	require.Equal(t, uint32(2), TypeSize(TypeSmallInt))
	require.Equal(t, uint32(4), TypeSize(TypeInteger))
	require.Equal(t, uint32(8), TypeSize(TypeBigInt))
	require.Equal(t, uint32(8), TypeSize(TypeDouble))
	require.Equal(t, uint32(8), TypeSize(TypeTimestamp))

	// width of variable-length types comes from the declaration
	require.Equal(t, uint32(0), TypeSize(TypeVarchar))
	require.Equal(t, uint32(0), TypeSize(TypeVarbinary))
	require.True(t, VariableLength(TypeVarchar))
	require.True(t, VariableLength(TypeVarbinary))
	require.False(t, VariableLength(TypeInteger))
}

func TestSchemaProject(t *testing.T) {
	s := NewSchema([]ColumnInfo{
		{Name: "id", Type: TypeInteger, Length: 4},
		{Name: "name", Type: TypeVarchar, Length: 32, Varlen: true},
		{Name: "paid", Type: TypeBoolean, Length: 1},
	})

	key, err := s.Project([]uint32{1})
	require.NoError(t, err)
	require.Equal(t, 1, key.NumCols())
	require.Equal(t, "name", key.Cols[0].Name)
	require.Equal(t, uint32(32), key.Cols[0].Length)

	_, err = s.Project([]uint32{3})
	require.Error(t, err)
}
