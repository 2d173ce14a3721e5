package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Database is a named collection of tables. The mutex guards only the
// table map; it is acquired around the single mutating add and released
// before control returns to the caller.
type Database struct {
	Name string

	mu     sync.Mutex
	tables map[string]*Table
}

func NewDatabase(name string) *Database {
	return &Database{
		Name:   name,
		tables: make(map[string]*Table),
	}
}

// GetTable resolves a table by name, nil if absent.
func (db *Database) GetTable(name string) *Table {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.tables[name]
}

// AddTable commits a table into the database. The table must be fully
// built before this call; after it returns the table is visible to
// lookups by every worker.
func (db *Database) AddTable(t *Table) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.tables[t.Name]; ok {
		return fmt.Errorf("%w: %s", ErrTableExists, t.Name)
	}
	db.tables[t.Name] = t
	return nil
}

// ListTables returns table names in sorted order.
func (db *Database) ListTables() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	names := make([]string, 0, len(db.tables))
	for name := range db.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
