package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stratadb/internal/catalog"
)

func testMeta() Metadata {
	key := catalog.NewSchema([]catalog.ColumnInfo{
		{Name: "cust_id", Type: catalog.TypeInteger, Length: 4},
	})
	return Metadata{
		Name:      "idx_cust",
		Table:     "orders",
		Kind:      catalog.IndexBTreeMultimap,
		Unique:    false,
		KeySchema: key,
	}
}

func TestUnavailableEngine(t *testing.T) {
	_, err := Unavailable{}.CreateIndex(testMeta())
	require.ErrorIs(t, err, ErrEngineUnavailable)
}

func TestFileEngineCreateIndex(t *testing.T) {
	e := NewFileEngine(t.TempDir())

	h, err := e.CreateIndex(testMeta())
	require.NoError(t, err)
	require.NotEmpty(t, h.ID())

	path := filepath.Join(e.DataDir, "indexes", h.ID()+".meta.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m indexMeta
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, "idx_cust", m.Name)
	require.Equal(t, "orders", m.Table)
	require.Equal(t, "btree_multimap", m.Kind)
	require.Equal(t, 1, m.KeySchema.NumCols())
}

func TestHandleDrop(t *testing.T) {
	e := NewFileEngine(t.TempDir())

	h, err := e.CreateIndex(testMeta())
	require.NoError(t, err)
	require.NoError(t, h.Drop())

	entries, err := os.ReadDir(filepath.Join(e.DataDir, "indexes"))
	require.NoError(t, err)
	require.Empty(t, entries)

	require.NoError(t, h.Drop())
}
