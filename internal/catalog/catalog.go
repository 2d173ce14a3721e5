package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog is the process-wide root mapping database names to Databases.
// One long-lived instance is created at process start and handed to the
// executor by reference, so tests can substitute their own.
type Catalog struct {
	mu        sync.Mutex
	databases map[string]*Database
}

func New() *Catalog {
	return &Catalog{databases: make(map[string]*Database)}
}

// GetDatabase resolves a database by name, nil if absent. The lock is
// held only for the lookup itself; a database could in principle be
// removed between lookup and use, which this core does not defend
// against (DROP is out of scope).
func (c *Catalog) GetDatabase(name string) *Database {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.databases[name]
}

// AddDatabase commits a database into the catalog.
func (c *Catalog) AddDatabase(db *Database) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.databases[db.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDatabaseExists, db.Name)
	}
	c.databases[db.Name] = db
	return nil
}

// ListDatabases returns database names in sorted order.
func (c *Catalog) ListDatabases() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.databases))
	for name := range c.databases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
