package executor

import (
	"fmt"
	"log/slog"

	"stratadb/internal/catalog"
	"stratadb/internal/sql/parser"
)

func (e *Executor) execCreateTable(stmt *parser.CreateStmt) error {
	db, err := e.defaultDatabase()
	if err != nil {
		return err
	}

	plan, err := validateColumns(db, stmt.Columns)
	if err != nil {
		return err
	}

	if existing := db.GetTable(stmt.Name); existing != nil {
		switch e.ExistsPolicy {
		case RejectAlways:
			if stmt.IfNotExists {
				// IF NOT EXISTS suppresses the error: no-op commit.
				slog.Info("executor: table exists, skipped", "name", stmt.Name)
				return nil
			}
			return fmt.Errorf("%w: table %s", ErrConflict, stmt.Name)
		default:
			// Legacy reading: only an explicit IF NOT EXISTS makes the
			// existing table an error.
			if stmt.IfNotExists {
				return fmt.Errorf("%w: table %s", ErrConflict, stmt.Name)
			}
		}
	}

	table, err := e.buildTable(db, stmt.Name, plan)
	if err != nil {
		return err
	}

	if err := db.AddTable(table); err != nil {
		_ = table.Destroy()
		return fmt.Errorf("%w: table %s: %v", ErrConflict, stmt.Name, err)
	}

	slog.Info("executor: created table", "name", stmt.Name, "database", db.Name)
	return nil
}

// buildTable is the second pass: it consumes a validated plan and
// constructs the table with its columns, constraints, indexes and
// physical storage. The table is not attached to the database yet, so
// any failure rolls back by destroying it.
func (e *Executor) buildTable(db *catalog.Database, name string, plan *tablePlan) (*catalog.Table, error) {
	table := catalog.NewTable(name)

	var (
		offset       uint32
		constraintID int
		indexID      int
		physical     []catalog.ColumnInfo
	)

	abort := func(err error) (*catalog.Table, error) {
		_ = table.Destroy()
		return nil, err
	}

	for _, entry := range plan.entries {
		def := entry.def

		switch def.Kind {
		case parser.DefPrimary:
			keyCols := make([]*catalog.Column, 0, len(def.PrimaryKeys))
			for _, key := range def.PrimaryKeys {
				keyCols = append(keyCols, table.GetColumn(key))
			}

			indexName := fmt.Sprintf("INDEX_%d", indexID)
			indexID++
			constraintName := fmt.Sprintf("PK_%d", constraintID)
			constraintID++

			ix := catalog.NewIndex(indexName, catalog.IndexBTreeMultimap, def.Unique, keyCols)
			constraint := &catalog.Constraint{
				Name:       constraintName,
				Kind:       catalog.ConstraintPrimary,
				Index:      ix,
				SourceCols: keyCols,
			}

			if err := table.AddConstraint(constraint); err != nil {
				return abort(fmt.Errorf("%w: constraint %s: %v", ErrConflict, constraintName, err))
			}
			if err := table.AddIndex(ix); err != nil {
				return abort(fmt.Errorf("%w: index %s: %v", ErrConflict, indexName, err))
			}

		case parser.DefForeign:
			sources := make([]*catalog.Column, 0, len(def.ForeignSources))
			for _, key := range def.ForeignSources {
				sources = append(sources, table.GetColumn(key))
			}
			sinks := make([]*catalog.Column, 0, len(def.ForeignSinks))
			for _, key := range def.ForeignSinks {
				sinks = append(sinks, entry.referenced.GetColumn(key))
			}

			constraintName := fmt.Sprintf("FK_%d", constraintID)
			constraintID++

			constraint := &catalog.Constraint{
				Name:       constraintName,
				Kind:       catalog.ConstraintForeign,
				Referenced: entry.referenced,
				SourceCols: sources,
				SinkCols:   sinks,
			}

			if err := table.AddConstraint(constraint); err != nil {
				return abort(fmt.Errorf("%w: constraint %s: %v", ErrConflict, constraintName, err))
			}

		default:
			length := catalog.TypeSize(def.Type)
			if def.Type == catalog.TypeChar {
				length = 1
			}
			if catalog.VariableLength(def.Type) {
				length = def.Varlen
			}

			column := &catalog.Column{
				Name:    def.Name,
				Type:    def.Type,
				Offset:  offset,
				Length:  length,
				NotNull: def.NotNull,
			}
			offset++

			physical = append(physical, catalog.ColumnInfo{
				Name:     def.Name,
				Type:     def.Type,
				Length:   length,
				Nullable: !def.NotNull,
				Varlen:   def.Varlen != 0,
			})

			if err := table.AddColumn(column); err != nil {
				return abort(fmt.Errorf("%w: column %s: %v", ErrConflict, def.Name, err))
			}
		}
	}

	schema := catalog.NewSchema(physical)
	handle, err := e.tables.CreateTable(db.Name, schema)
	if err != nil {
		return abort(fmt.Errorf("%w: physical table for %s: %v", ErrResource, name, err))
	}
	table.SetSchema(schema)
	table.SetPhysicalTable(handle)

	return table, nil
}
