package catalog

import (
	"fmt"
	"sync"
)

// Table is a relation's logical schema plus its bound physical storage.
// It exclusively owns its Columns, Constraints and Indexes; the mutex
// guards the add-only mutation entry points once the table is committed
// into a Database and visible to other workers.
type Table struct {
	Name string

	mu          sync.Mutex
	columns     []*Column
	constraints []*Constraint
	indexes     []*Index

	physical PhysicalTable
	schema   *Schema
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

// SetPhysicalTable binds the storage handle obtained from the storage
// collaborator. Set exactly once, before the table is committed.
func (t *Table) SetPhysicalTable(pt PhysicalTable) { t.physical = pt }

func (t *Table) PhysicalTable() PhysicalTable { return t.physical }

// SetSchema records the physical row layout the table was created with.
func (t *Table) SetSchema(s *Schema) { t.schema = s }

func (t *Table) Schema() *Schema { return t.schema }

// AddColumn appends a column. Rejects duplicate names; the validator has
// already screened those for statement-declared columns.
func (t *Table) AddColumn(c *Column) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.columns {
		if existing.Name == c.Name {
			return fmt.Errorf("%w: %s.%s", ErrColumnExists, t.Name, c.Name)
		}
	}
	t.columns = append(t.columns, c)
	return nil
}

// GetColumn resolves a column by name, nil if absent.
func (t *Table) GetColumn(name string) *Column {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range t.columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Column(nil), t.columns...)
}

func (t *Table) AddConstraint(c *Constraint) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.constraints {
		if existing.Name == c.Name {
			return fmt.Errorf("stratadb: constraint already exists: %s.%s", t.Name, c.Name)
		}
	}
	t.constraints = append(t.constraints, c)
	return nil
}

func (t *Table) Constraints() []*Constraint {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Constraint(nil), t.constraints...)
}

// AddIndex registers a logical index. Two concurrent CREATE INDEX calls on
// the same table race here; both succeed iff they carry different names.
func (t *Table) AddIndex(ix *Index) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.indexes {
		if existing.Name == ix.Name {
			return fmt.Errorf("%w: %s.%s", ErrIndexExists, t.Name, ix.Name)
		}
	}
	t.indexes = append(t.indexes, ix)
	return nil
}

func (t *Table) GetIndex(name string) *Index {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, ix := range t.indexes {
		if ix.Name == name {
			return ix
		}
	}
	return nil
}

func (t *Table) Indexes() []*Index {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Index(nil), t.indexes...)
}

// Destroy releases everything the table owns. This is the single deletion
// path used by rollback: dropping a partially built table drops its
// physical storage and every physical index recursively.
func (t *Table) Destroy() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var firstErr error
	for _, ix := range t.indexes {
		if ix.physical == nil {
			continue
		}
		if err := ix.physical.Drop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if t.physical != nil {
		if err := t.physical.Drop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	t.columns = nil
	t.constraints = nil
	t.indexes = nil
	t.physical = nil
	return firstErr
}
