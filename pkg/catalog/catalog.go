// Package catalog defines the operation surface of the archive metadata
// catalog. The interface below is the sole write/read path: every entry,
// identity, association and reference-table mutation passes through it, and
// no other path mutates state.
package catalog

import (
	"github.com/mesh-intelligence/nvgcat/pkg/manifest"
	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// Catalog is the storage-backed catalog. Reads may run with unbounded
// concurrency; each write is one transaction, committing the whole logical
// change or none of it.
type Catalog interface {
	// Attach opens or creates the catalog database described by config.
	// Returns ErrAlreadyAttached while attached.
	Attach(config types.Config) error

	// Detach closes the backend. Idempotent; afterwards all operations
	// return ErrCatalogDetached.
	Detach() error

	// CatalogID returns the instance id stamped at creation.
	CatalogID() (string, error)

	// Entries. Paths are unique and immutable; deleting an entry cascades
	// to its associations, title aliases and language links.
	InsertEntry(e *types.Entry) (int64, error)
	UpdateEntry(e *types.Entry) error
	GetEntry(id int64) (*types.Entry, error)
	GetEntryByPath(path string) (*types.Entry, error)
	DeleteEntry(id int64) error

	// Identity graph. Identities are created on first reference and never
	// deleted; only the alias-of link mutates, guarded by a cycle check.
	InsertIdentity(name string, aliasOf *int64) (int64, error)
	GetIdentity(id int64) (*types.Identity, error)
	SetAliasOf(id int64, target *int64) error
	ResolveRoot(id int64) (*types.Identity, error)
	AliasesOf(id int64) ([]types.Identity, error)

	// Role associations, ordered per (entry, role) group.
	AddAssociation(entryID int64, name string, role types.Role, index *int) (*types.Association, error)
	DeleteAssociations(entryID, identityID int64, role types.Role) (int64, error)
	NextIndex(entryID int64, role types.Role) (int, error)
	OrderedAssociations(entryID int64) ([]types.Association, error)
	NamesForRole(entryID int64, role types.Role) (string, error)

	// Title aliases.
	AddTitleAlias(entryID int64, title string) error
	TitleAliases(entryID int64) ([]string, error)
	DeleteTitleAliases(entryID int64) (int64, error)

	// Reference tables.
	InsertLanguage(tag, description string) (string, error)
	UpdateLanguage(tag, description string) error
	DeleteLanguage(tag string) error
	Languages() ([]types.Language, error)
	InsertTypeCategory(description string, id int64) (int64, error)
	InsertPublicationCategory(description string, id int64) (int64, error)
	TypeCategories() ([]types.TypeCategory, error)
	PublicationCategories() ([]types.PublicationCategory, error)

	// Search, read-only, with _ and % wildcards.
	SearchPaths(pattern string) ([]types.PathMatch, error)
	SearchTitles(pattern string) ([]types.TitleMatch, error)
	SearchIdentities(pattern string) ([]types.IdentityMatch, error)

	// Manifest rendering and version inference.
	RenderManifest(entryID int64) (string, error)
	EntryVersion(entryID int64) (manifest.Version, error)
}
