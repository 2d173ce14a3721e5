package executor

import (
	"fmt"

	"stratadb/internal/catalog"
	"stratadb/internal/sql/parser"
)

// tablePlan is the validated, ordered construction plan for one CREATE
// TABLE statement. Producing it is the first of two passes: names are
// checked here, objects are built later by buildTable, which can no
// longer fail on referential grounds.
type tablePlan struct {
	entries []planEntry
}

type planEntry struct {
	def *parser.ColumnDef

	// resolved sink table for a FOREIGN declaration
	referenced *catalog.Table
}

// validateColumns walks the declared columns in order, maintaining the
// running column-name list key declarations are checked against.
func validateColumns(db *catalog.Database, defs []*parser.ColumnDef) (*tablePlan, error) {
	plan := &tablePlan{entries: make([]planEntry, 0, len(defs))}
	var names []string

	seen := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}

	for _, def := range defs {
		switch def.Kind {
		case parser.DefPrimary:
			for _, key := range def.PrimaryKeys {
				if !seen(key) {
					return nil, fmt.Errorf("%w: primary key column not in table: %s", ErrValidation, key)
				}
			}
			plan.entries = append(plan.entries, planEntry{def: def})

		case parser.DefForeign:
			for _, key := range def.ForeignSources {
				if !seen(key) {
					return nil, fmt.Errorf("%w: foreign key source column not in table: %s", ErrValidation, key)
				}
			}
			foreign := db.GetTable(def.Name)
			if foreign == nil {
				return nil, fmt.Errorf("%w: foreign table does not exist: %s", ErrValidation, def.Name)
			}
			for _, key := range def.ForeignSinks {
				if foreign.GetColumn(key) == nil {
					return nil, fmt.Errorf("%w: foreign key sink column not in table %s: %s", ErrValidation, def.Name, key)
				}
			}
			plan.entries = append(plan.entries, planEntry{def: def, referenced: foreign})

		default:
			if seen(def.Name) {
				return nil, fmt.Errorf("%w: duplicate column name: %s", ErrValidation, def.Name)
			}
			names = append(names, def.Name)
			plan.entries = append(plan.entries, planEntry{def: def})
		}
	}

	return plan, nil
}
