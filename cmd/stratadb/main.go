package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"stratadb/internal"
	"stratadb/internal/catalog"
	"stratadb/internal/index"
	"stratadb/internal/sql/executor"
	"stratadb/internal/sql/parser"
	"stratadb/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config")
	smoke := flag.Bool("smoke", false, "Run a CREATE smoke sequence and exit")
	flag.Parse()

	cfg, err := internal.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dataDir := cfg.Catalog.DataDir
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	cat := catalog.New()
	if err := cat.AddDatabase(catalog.NewDatabase(cfg.Catalog.DefaultDatabase)); err != nil {
		log.Fatalf("Failed to create default database: %v", err)
	}

	var engine index.Engine = index.NewFileEngine(dataDir)
	if cfg.Index.Engine == "none" {
		engine = index.Unavailable{}
	}

	exec := executor.NewExecutor(cat, cfg.Catalog.DefaultDatabase, storage.NewEngine(dataDir), engine)
	if cfg.Catalog.TableExistsPolicy == "strict" {
		exec.ExistsPolicy = executor.RejectAlways
	}

	slog.Info("stratadb ddl core ready",
		"app", cfg.AppName,
		"data_dir", dataDir,
		"default_database", cfg.Catalog.DefaultDatabase)

	if *smoke {
		runSmoke(exec)
		return
	}

	// TODO: attach the statement front end (wire server) once it lands;
	// until then use -smoke to verify boot wiring.
}

// runSmoke exercises the three CREATE variants against a fresh catalog.
func runSmoke(exec *executor.Executor) {
	statements := []*parser.CreateStmt{
		{Kind: parser.CreateDatabase, Name: "sales"},
		{
			Kind: parser.CreateTable,
			Name: "orders",
			Columns: []*parser.ColumnDef{
				{Kind: parser.DefPlain, Name: "id", Type: catalog.TypeInteger, NotNull: true},
				{Kind: parser.DefPlain, Name: "cust_id", Type: catalog.TypeInteger},
				{Kind: parser.DefPrimary, PrimaryKeys: []string{"id"}, Unique: true},
			},
		},
		{
			Kind:       parser.CreateIndex,
			Name:       "idx_cust",
			TableName:  "orders",
			IndexAttrs: []string{"cust_id"},
		},
	}

	for _, stmt := range statements {
		ok := exec.Execute(stmt)
		slog.Info("smoke: statement done", "kind", stmt.Kind.String(), "name", stmt.Name, "ok", ok)
	}
}
