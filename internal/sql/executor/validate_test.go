package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stratadb/internal/catalog"
	"stratadb/internal/sql/parser"
)

func plainCol(name string, typ catalog.ValueType) *parser.ColumnDef {
	return &parser.ColumnDef{Kind: parser.DefPlain, Name: name, Type: typ}
}

func TestValidatePlainColumns(t *testing.T) {
	db := catalog.NewDatabase("default")

	plan, err := validateColumns(db, []*parser.ColumnDef{
		plainCol("id", catalog.TypeInteger),
		plainCol("name", catalog.TypeVarchar),
	})
	require.NoError(t, err)
	require.Len(t, plan.entries, 2)
}

func TestValidateDuplicateColumn(t *testing.T) {
	db := catalog.NewDatabase("default")

	_, err := validateColumns(db, []*parser.ColumnDef{
		plainCol("amount", catalog.TypeDouble),
		plainCol("amount", catalog.TypeDouble),
	})
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "duplicate column name")
}

func TestValidatePrimaryKeyUnknownColumn(t *testing.T) {
	db := catalog.NewDatabase("default")

	_, err := validateColumns(db, []*parser.ColumnDef{
		plainCol("id", catalog.TypeInteger),
		{Kind: parser.DefPrimary, PrimaryKeys: []string{"missing"}},
	})
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "primary key column not in table")
}

func TestValidatePrimaryKeySeesOnlyPriorColumns(t *testing.T) {
	db := catalog.NewDatabase("default")

	// key names are checked against the running list collected so far,
	// so a key declared before its column is rejected
	_, err := validateColumns(db, []*parser.ColumnDef{
		{Kind: parser.DefPrimary, PrimaryKeys: []string{"id"}},
		plainCol("id", catalog.TypeInteger),
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestValidateForeignKey(t *testing.T) {
	db := catalog.NewDatabase("default")

	orders := catalog.NewTable("orders")
	require.NoError(t, orders.AddColumn(&catalog.Column{Name: "id", Type: catalog.TypeInteger}))
	require.NoError(t, db.AddTable(orders))

	defs := []*parser.ColumnDef{
		plainCol("order_id", catalog.TypeInteger),
		{
			Kind:           parser.DefForeign,
			Name:           "orders",
			ForeignSources: []string{"order_id"},
			ForeignSinks:   []string{"id"},
		},
	}
	plan, err := validateColumns(db, defs)
	require.NoError(t, err)
	require.Same(t, orders, plan.entries[1].referenced)
}

func TestValidateForeignKeyMissingSource(t *testing.T) {
	db := catalog.NewDatabase("default")

	_, err := validateColumns(db, []*parser.ColumnDef{
		{Kind: parser.DefForeign, Name: "orders", ForeignSources: []string{"order_id"}},
	})
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "source column not in table")
}

func TestValidateForeignKeyMissingTable(t *testing.T) {
	db := catalog.NewDatabase("default")

	_, err := validateColumns(db, []*parser.ColumnDef{
		plainCol("order_id", catalog.TypeInteger),
		{
			Kind:           parser.DefForeign,
			Name:           "orders",
			ForeignSources: []string{"order_id"},
			ForeignSinks:   []string{"id"},
		},
	})
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "foreign table does not exist")
}

func TestValidateForeignKeyMissingSink(t *testing.T) {
	db := catalog.NewDatabase("default")

	orders := catalog.NewTable("orders")
	require.NoError(t, orders.AddColumn(&catalog.Column{Name: "id", Type: catalog.TypeInteger}))
	require.NoError(t, db.AddTable(orders))

	_, err := validateColumns(db, []*parser.ColumnDef{
		plainCol("order_id", catalog.TypeInteger),
		{
			Kind:           parser.DefForeign,
			Name:           "orders",
			ForeignSources: []string{"order_id"},
			ForeignSinks:   []string{"nope"},
		},
	})
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "sink column not in table")
}
