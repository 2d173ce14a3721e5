package catalog

// PhysicalTable is the storage collaborator's handle bound to a Table.
type PhysicalTable interface {
	ID() string
	Drop() error
}

// PhysicalIndex is the index-engine collaborator's handle bound to an Index.
type PhysicalIndex interface {
	ID() string
	Drop() error
}

// Column is one attribute of a table. Value object, owned by its Table.
type Column struct {
	Name    string
	Type    ValueType
	Offset  uint32
	Length  uint32
	NotNull bool
}

type ConstraintKind uint8

const (
	ConstraintPrimary ConstraintKind = iota + 1
	ConstraintForeign
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintPrimary:
		return "PRIMARY"
	case ConstraintForeign:
		return "FOREIGN"
	default:
		return "UNKNOWN"
	}
}

// Constraint is a PRIMARY or FOREIGN key rule. A PRIMARY constraint owns
// the Index built over its key columns; a FOREIGN constraint references
// a sink Table that must already exist in the Database.
type Constraint struct {
	Name       string
	Kind       ConstraintKind
	Index      *Index // PRIMARY only
	Referenced *Table // FOREIGN only
	SourceCols []*Column
	SinkCols   []*Column
}

type IndexKind uint8

const (
	IndexBTreeMultimap IndexKind = iota + 1
	IndexHash
)

func (k IndexKind) String() string {
	switch k {
	case IndexBTreeMultimap:
		return "btree_multimap"
	case IndexHash:
		return "hash"
	default:
		return "unknown"
	}
}

// Index is a key-lookup structure over a table. The physical handle may
// legitimately be absent: an unbound Index is a valid terminal state until
// the index engine can construct it (Bind completes it later).
type Index struct {
	Name     string
	Kind     IndexKind
	Unique   bool
	KeyCols  []*Column
	physical PhysicalIndex
}

func NewIndex(name string, kind IndexKind, unique bool, keyCols []*Column) *Index {
	return &Index{
		Name:    name,
		Kind:    kind,
		Unique:  unique,
		KeyCols: append([]*Column(nil), keyCols...),
	}
}

// Bind attaches the physical handle obtained from the index engine.
func (ix *Index) Bind(h PhysicalIndex) { ix.physical = h }

// Bound reports whether a physical index backs this logical index.
func (ix *Index) Bound() bool { return ix.physical != nil }

func (ix *Index) Physical() PhysicalIndex { return ix.physical }
