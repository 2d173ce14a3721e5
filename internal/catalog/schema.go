package catalog

import "fmt"

type ValueType uint8

const (
	TypeInvalid ValueType = iota
	TypeTinyInt
	TypeSmallInt
	TypeInteger
	TypeBigInt
	TypeDouble
	TypeTimestamp
	TypeBoolean
	TypeChar
	TypeVarchar
	TypeVarbinary
)

func (t ValueType) String() string {
	switch t {
	case TypeTinyInt:
		return "TINYINT"
	case TypeSmallInt:
		return "SMALLINT"
	case TypeInteger:
		return "INTEGER"
	case TypeBigInt:
		return "BIGINT"
	case TypeDouble:
		return "DOUBLE"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeChar:
		return "CHAR"
	case TypeVarchar:
		return "VARCHAR"
	case TypeVarbinary:
		return "VARBINARY"
	default:
		return fmt.Sprintf("INVALID(%d)", uint8(t))
	}
}

// TypeSize returns the fixed byte width of a value type. Variable-length
// types report 0; their width comes from the column declaration.
func TypeSize(t ValueType) uint32 {
	switch t {
	case TypeTinyInt, TypeBoolean, TypeChar:
		return 1
	case TypeSmallInt:
		return 2
	case TypeInteger:
		return 4
	case TypeBigInt, TypeDouble, TypeTimestamp:
		return 8
	default:
		return 0
	}
}

// VariableLength reports whether a type's width is declared per column.
func VariableLength(t ValueType) bool {
	return t == TypeVarchar || t == TypeVarbinary
}

// ColumnInfo is one entry of the physical row layout.
type ColumnInfo struct {
	Name     string    `json:"name"`
	Type     ValueType `json:"type"`
	Length   uint32    `json:"length"`
	Nullable bool      `json:"nullable"`
	Varlen   bool      `json:"varlen"`
}

// Schema is the ordered physical layout of a row.
type Schema struct {
	Cols []ColumnInfo `json:"cols"`
}

func NewSchema(cols []ColumnInfo) *Schema {
	return &Schema{Cols: append([]ColumnInfo(nil), cols...)}
}

func (s *Schema) NumCols() int { return len(s.Cols) }

// Project derives a key schema from the columns at the given offsets.
func (s *Schema) Project(offsets []uint32) (*Schema, error) {
	cols := make([]ColumnInfo, 0, len(offsets))
	for _, off := range offsets {
		if int(off) >= len(s.Cols) {
			return nil, fmt.Errorf("stratadb: schema projection offset %d out of range (%d cols)", off, len(s.Cols))
		}
		cols = append(cols, s.Cols[off])
	}
	return &Schema{Cols: cols}, nil
}
