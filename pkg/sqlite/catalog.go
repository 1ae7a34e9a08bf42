// Package sqlite exposes the SQLite-backed catalog implementation.
package sqlite

import (
	"github.com/mesh-intelligence/nvgcat/internal/sqlite"
	"github.com/mesh-intelligence/nvgcat/pkg/catalog"
)

var _ catalog.Catalog = (*sqlite.Catalog)(nil)

// NewCatalog returns a detached SQLite catalog. Call Attach with a valid
// configuration before use.
func NewCatalog() catalog.Catalog {
	return sqlite.NewCatalog()
}
