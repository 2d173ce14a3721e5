package catalog

import "errors"

var (
	ErrDatabaseExists  = errors.New("stratadb: database already exists")
	ErrTableExists     = errors.New("stratadb: table already exists")
	ErrColumnExists    = errors.New("stratadb: column already exists")
	ErrIndexExists     = errors.New("stratadb: index already exists")
	ErrDatabaseMissing = errors.New("stratadb: database not found")
	ErrTableMissing    = errors.New("stratadb: table not found")
	ErrColumnMissing   = errors.New("stratadb: column not found")
)
