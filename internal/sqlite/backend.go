package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "catalog.db"

// Catalog is the SQLite-backed catalog store. All writes go through one
// transaction per logical change; the field validator and the ordering and
// cycle checks run inside that transaction so an invalid state never
// becomes externally visible.
type Catalog struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *slog.Logger
}

// NewCatalog creates an unattached catalog. Call Attach with a Config to
// open or create the database.
func NewCatalog() *Catalog {
	return &Catalog{log: slog.Default()}
}

// Attach opens the catalog database under config.DataDir, creating the
// directory, the schema and the catalog id stamp on first use.
// Returns ErrAlreadyAttached if called while attached.
func (c *Catalog) Attach(config types.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		filepath.Join(config.DataDir, dbFileName))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("executing schema: %w", err)
		}
	}

	if err := stampCatalogID(db); err != nil {
		db.Close()
		return fmt.Errorf("stamping catalog id: %w", err)
	}

	c.db = db
	c.config = config
	c.attached = true
	c.log.Info("catalog attached", "data_dir", config.DataDir)
	return nil
}

// Detach closes the database. Idempotent; after Detach all operations
// return ErrCatalogDetached.
func (c *Catalog) Detach() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return nil
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return err
		}
		c.db = nil
	}
	c.attached = false
	c.log.Info("catalog detached", "data_dir", c.config.DataDir)
	return nil
}

// CatalogID returns the instance id stamped when the database was created.
func (c *Catalog) CatalogID() (string, error) {
	db, err := c.handle()
	if err != nil {
		return "", err
	}
	var id string
	if err := db.QueryRow("SELECT catalog_id FROM catalog_info").Scan(&id); err != nil {
		return "", fmt.Errorf("reading catalog id: %w", err)
	}
	return id, nil
}

// handle returns the open database, or ErrCatalogDetached.
func (c *Catalog) handle() (*sql.DB, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.attached {
		return nil, types.ErrCatalogDetached
	}
	return c.db, nil
}

// stampCatalogID inserts the catalog_info row on first attach.
func stampCatalogID(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM catalog_info").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := db.Exec(
		"INSERT INTO catalog_info (catalog_id, created_at) VALUES (?, ?)",
		generateUUID(), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// generateUUID generates a UUID v7, falling back to v4 if v7 fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// dbtx is the intersection of *sql.DB and *sql.Tx used by helpers that run
// both inside and outside transactions.
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
