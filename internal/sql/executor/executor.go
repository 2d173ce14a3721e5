package executor

import (
	"fmt"
	"log/slog"

	"stratadb/internal/catalog"
	"stratadb/internal/index"
	"stratadb/internal/sql/parser"
	"stratadb/internal/storage"
)

// TableExistsPolicy names the CREATE TABLE existence-check behavior.
// The engine this core descends from rejected an existing table only
// when the statement said IF NOT EXISTS, which inverts conventional SQL.
// The policy is explicit so both readings stay testable.
type TableExistsPolicy uint8

const (
	// RejectIfRequested: error only when the table exists AND the
	// statement carried IF NOT EXISTS (legacy behavior, default).
	RejectIfRequested TableExistsPolicy = iota
	// RejectAlways: conventional SQL. An existing table is an error
	// unless IF NOT EXISTS was written, which turns it into a no-op.
	RejectAlways
)

// Executor turns a parsed CREATE statement into durable catalog state.
// A failed statement destroys everything it allocated and leaves the
// catalog untouched.
type Executor struct {
	cat       *catalog.Catalog
	defaultDB string

	tables  storage.TableFactory
	indexes index.Engine

	ExistsPolicy TableExistsPolicy
}

func NewExecutor(cat *catalog.Catalog, defaultDB string, tables storage.TableFactory, indexes index.Engine) *Executor {
	return &Executor{
		cat:       cat,
		defaultDB: defaultDB,
		tables:    tables,
		indexes:   indexes,
	}
}

// Execute runs one CREATE statement, true on commit. Rejections are
// reported through slog; catalog state changes only on true.
func (e *Executor) Execute(stmt *parser.CreateStmt) bool {
	if err := e.Exec(stmt); err != nil {
		slog.Error("executor: create rejected",
			"kind", stmt.Kind.String(), "name", stmt.Name, "err", err)
		return false
	}
	return true
}

// Exec is the error-returning form of Execute.
func (e *Executor) Exec(stmt *parser.CreateStmt) error {
	if stmt == nil || stmt.Name == "" {
		return fmt.Errorf("%w: statement missing name", ErrInvariant)
	}

	switch stmt.Kind {
	case parser.CreateTable:
		return e.execCreateTable(stmt)
	case parser.CreateDatabase:
		return e.execCreateDatabase(stmt)
	case parser.CreateIndex:
		return e.execCreateIndex(stmt)
	default:
		return fmt.Errorf("%w: unknown create statement kind %d", ErrInvariant, stmt.Kind)
	}
}

// defaultDatabase resolves the session database. Its absence is a
// programming error, not a user one.
func (e *Executor) defaultDatabase() (*catalog.Database, error) {
	db := e.cat.GetDatabase(e.defaultDB)
	if db == nil {
		return nil, fmt.Errorf("%w: default database absent: %s", ErrInvariant, e.defaultDB)
	}
	return db, nil
}

func (e *Executor) execCreateDatabase(stmt *parser.CreateStmt) error {
	if e.cat.GetDatabase(stmt.Name) != nil {
		return fmt.Errorf("%w: database %s", ErrConflict, stmt.Name)
	}

	db := catalog.NewDatabase(stmt.Name)
	if err := e.cat.AddDatabase(db); err != nil {
		return fmt.Errorf("%w: database %s: %v", ErrConflict, stmt.Name, err)
	}

	slog.Info("executor: created database", "name", stmt.Name)
	return nil
}
