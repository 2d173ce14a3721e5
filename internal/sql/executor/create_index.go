package executor

import (
	"errors"
	"fmt"
	"log/slog"

	"stratadb/internal/catalog"
	"stratadb/internal/index"
	"stratadb/internal/sql/parser"
)

func (e *Executor) execCreateIndex(stmt *parser.CreateStmt) error {
	db, err := e.defaultDatabase()
	if err != nil {
		return err
	}

	table := db.GetTable(stmt.TableName)
	if table == nil {
		return fmt.Errorf("%w: table does not exist: %s", ErrValidation, stmt.TableName)
	}

	if len(stmt.IndexAttrs) == 0 {
		return fmt.Errorf("%w: no index attributes for index %s", ErrValidation, stmt.Name)
	}

	keyCols := make([]*catalog.Column, 0, len(stmt.IndexAttrs))
	keyOffsets := make([]uint32, 0, len(stmt.IndexAttrs))
	for _, attr := range stmt.IndexAttrs {
		column := table.GetColumn(attr)
		if column == nil {
			return fmt.Errorf("%w: index attribute not in table %s: %s", ErrValidation, stmt.TableName, attr)
		}
		keyCols = append(keyCols, column)
		keyOffsets = append(keyOffsets, column.Offset)
	}

	tupleSchema := table.Schema()
	keySchema, err := tupleSchema.Project(keyOffsets)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}

	handle, err := e.indexes.CreateIndex(index.Metadata{
		Name:        stmt.Name,
		Table:       stmt.TableName,
		Kind:        catalog.IndexBTreeMultimap,
		Unique:      stmt.Unique,
		KeySchema:   keySchema,
		TupleSchema: tupleSchema,
	})
	if err != nil {
		if !errors.Is(err, index.ErrEngineUnavailable) {
			return fmt.Errorf("%w: physical index %s: %v", ErrResource, stmt.Name, err)
		}
		// Engine cannot build it yet; the logical index is registered
		// unbound and completed later.
		slog.Warn("executor: index engine unavailable, registering unbound",
			"index", stmt.Name, "table", stmt.TableName)
		handle = nil
	}

	ix := catalog.NewIndex(stmt.Name, catalog.IndexBTreeMultimap, stmt.Unique, keyCols)
	if err := table.AddIndex(ix); err != nil {
		if handle != nil {
			_ = handle.Drop()
		}
		return fmt.Errorf("%w: index %s: %v", ErrConflict, stmt.Name, err)
	}
	if handle != nil {
		ix.Bind(handle)
	}

	slog.Info("executor: created index",
		"name", stmt.Name, "table", stmt.TableName, "bound", ix.Bound())
	return nil
}
