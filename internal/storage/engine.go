package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"stratadb/internal/catalog"
)

var ErrBadSchema = errors.New("stratadb: storage rejected schema")

// TableFactory creates physical table storage for a schema. It is the
// storage collaborator of the DDL executor; the executor never looks
// inside the handle it returns.
type TableFactory interface {
	CreateTable(database string, schema *catalog.Schema) (catalog.PhysicalTable, error)
}

// Engine is a file-backed TableFactory. Each physical table is a meta
// file under <dataDir>/<database>/tables describing the row layout; the
// heap segments themselves belong to the storage engine proper and are
// created lazily on first insert.
type Engine struct {
	DataDir string
}

func NewEngine(dataDir string) *Engine {
	return &Engine{DataDir: dataDir}
}

type tableMeta struct {
	ID        string          `json:"id"`
	Database  string          `json:"database"`
	Schema    *catalog.Schema `json:"schema"`
	CreatedAt time.Time       `json:"created_at"`
}

func (e *Engine) tableDir(database string) string {
	return filepath.Join(e.DataDir, database, "tables")
}

func (e *Engine) CreateTable(database string, schema *catalog.Schema) (catalog.PhysicalTable, error) {
	if schema == nil || schema.NumCols() == 0 {
		return nil, fmt.Errorf("%w: empty schema", ErrBadSchema)
	}

	dir := e.tableDir(database)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	meta := tableMeta{
		ID:        id,
		Database:  database,
		Schema:    schema,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, id+".meta.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	return &TableHandle{id: id, metaPath: path}, nil
}

// TableHandle is an opaque reference to physical table storage.
type TableHandle struct {
	id       string
	metaPath string
}

var _ catalog.PhysicalTable = (*TableHandle)(nil)

func (h *TableHandle) ID() string { return h.id }

// Drop removes the on-disk state. Used by rollback; missing files are
// not an error.
func (h *TableHandle) Drop() error {
	if err := os.Remove(h.metaPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
