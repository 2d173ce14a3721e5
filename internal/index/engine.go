package index

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"stratadb/internal/catalog"
)

// ErrEngineUnavailable signals that the engine cannot build this index
// yet. The executor still registers the logical index, unbound; Bind
// completes it once the engine catches up.
var ErrEngineUnavailable = errors.New("stratadb: index engine unavailable")

// Metadata describes the index the engine is asked to build.
type Metadata struct {
	Name        string
	Table       string
	Kind        catalog.IndexKind
	Unique      bool
	KeySchema   *catalog.Schema
	TupleSchema *catalog.Schema
}

// Engine creates physical key-lookup structures. It is the index-engine
// collaborator of the DDL executor.
type Engine interface {
	CreateIndex(meta Metadata) (catalog.PhysicalIndex, error)
}

// Unavailable is an Engine that cannot construct anything. It reproduces
// the degraded mode where every logical index stays unbound.
type Unavailable struct{}

func (Unavailable) CreateIndex(Metadata) (catalog.PhysicalIndex, error) {
	return nil, ErrEngineUnavailable
}

// FileEngine persists index metadata under <dataDir>/indexes, one meta
// file per index, and hands back a droppable handle.
type FileEngine struct {
	DataDir string
}

func NewFileEngine(dataDir string) *FileEngine {
	return &FileEngine{DataDir: dataDir}
}

type indexMeta struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Table     string          `json:"table"`
	Kind      string          `json:"kind"`
	Unique    bool            `json:"unique"`
	KeySchema *catalog.Schema `json:"key_schema"`
	CreatedAt time.Time       `json:"created_at"`
}

func (e *FileEngine) CreateIndex(meta Metadata) (catalog.PhysicalIndex, error) {
	dir := filepath.Join(e.DataDir, "indexes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	m := indexMeta{
		ID:        id,
		Name:      meta.Name,
		Table:     meta.Table,
		Kind:      meta.Kind.String(),
		Unique:    meta.Unique,
		KeySchema: meta.KeySchema,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, id+".meta.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	return &Handle{id: id, metaPath: path}, nil
}

// Handle is an opaque reference to physical index state.
type Handle struct {
	id       string
	metaPath string
}

var _ catalog.PhysicalIndex = (*Handle)(nil)

func (h *Handle) ID() string { return h.id }

func (h *Handle) Drop() error {
	if err := os.Remove(h.metaPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
