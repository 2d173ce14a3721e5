package parser

import "stratadb/internal/catalog"

// Statement is the root interface for all SQL statements delivered by the
// front end. This core only executes CREATE; the statement values are
// immutable once handed over.
type Statement interface {
	stmtNode()
}

type CreateKind uint8

const (
	CreateTable CreateKind = iota + 1
	CreateDatabase
	CreateIndex
)

func (k CreateKind) String() string {
	switch k {
	case CreateTable:
		return "TABLE"
	case CreateDatabase:
		return "DATABASE"
	case CreateIndex:
		return "INDEX"
	default:
		return "UNKNOWN"
	}
}

type ColumnDefKind uint8

const (
	// DefPlain declares an ordinary column carrying a value type.
	DefPlain ColumnDefKind = iota + 1
	// DefPrimary declares a PRIMARY KEY over previously declared columns.
	DefPrimary
	// DefForeign declares a FOREIGN KEY; Name holds the referenced table.
	DefForeign
)

// ColumnDef is one entry of a CREATE TABLE declaration list, tagged as a
// plain column or a key declaration.
type ColumnDef struct {
	Kind ColumnDefKind

	// Plain column: column name. Foreign key: referenced table name.
	Name string

	Type    catalog.ValueType
	NotNull bool
	Varlen  uint32 // declared length for VARCHAR/VARBINARY

	// DefPrimary
	PrimaryKeys []string
	Unique      bool

	// DefForeign
	ForeignSources []string
	ForeignSinks   []string
}

// CreateStmt is the parsed form of CREATE TABLE | DATABASE | INDEX.
type CreateStmt struct {
	Kind        CreateKind
	Name        string
	IfNotExists bool

	// CreateTable
	Columns []*ColumnDef

	// CreateIndex
	TableName  string
	IndexAttrs []string
	Unique     bool
}

func (*CreateStmt) stmtNode() {}
