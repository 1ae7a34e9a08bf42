// Package sqlite implements the SQLite storage backend for the nvgcat
// catalog: the entry, identity, association and reference tables, the
// validation and ordering rules enforced on every write, and manifest
// assembly for the renderer.
package sqlite

// Schema DDL. Lookup references from entries (type_id, publication_id) use
// 0 for "unset" and are checked explicitly by the write path; the join
// tables carry real foreign keys.
const (
	createCatalogInfo = `CREATE TABLE IF NOT EXISTS catalog_info (
    catalog_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createEntries = `CREATE TABLE IF NOT EXISTS entries (
    entry_id INTEGER PRIMARY KEY AUTOINCREMENT,
    filepath TEXT NOT NULL UNIQUE,
    file_size INTEGER NOT NULL DEFAULT 0,
    title TEXT NOT NULL DEFAULT '',
    company TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL DEFAULT 0,
    type_id INTEGER NOT NULL DEFAULT 0,
    subtype TEXT NOT NULL DEFAULT '',
    title_screen TEXT NOT NULL DEFAULT '',
    cheat_mode TEXT NOT NULL DEFAULT '',
    protected TEXT NOT NULL DEFAULT '',
    problems TEXT NOT NULL DEFAULT '',
    upload_date TEXT NOT NULL DEFAULT '',
    uploader TEXT NOT NULL DEFAULT '',
    comments TEXT NOT NULL DEFAULT '',
    original_title TEXT NOT NULL DEFAULT '',
    publication_id INTEGER NOT NULL DEFAULT 0,
    publisher_code TEXT NOT NULL DEFAULT '',
    barcode TEXT NOT NULL DEFAULT '',
    dl_code TEXT NOT NULL DEFAULT '',
    memory_required INTEGER NOT NULL DEFAULT 0,
    protection TEXT NOT NULL DEFAULT '',
    run_command TEXT NOT NULL DEFAULT ''
);`

	createIdentities = `CREATE TABLE IF NOT EXISTS identities (
    identity_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    alias_of INTEGER REFERENCES identities(identity_id)
);`

	createAssociations = `CREATE TABLE IF NOT EXISTS associations (
    entry_id INTEGER NOT NULL REFERENCES entries(entry_id),
    identity_id INTEGER NOT NULL REFERENCES identities(identity_id),
    role TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (entry_id, identity_id, role),
    UNIQUE (entry_id, role, position)
);`

	createTitleAliases = `CREATE TABLE IF NOT EXISTS title_aliases (
    entry_id INTEGER NOT NULL REFERENCES entries(entry_id),
    title TEXT NOT NULL,
    PRIMARY KEY (entry_id, title)
);`

	createLanguages = `CREATE TABLE IF NOT EXISTS languages (
    tag TEXT PRIMARY KEY,
    description TEXT NOT NULL
);`

	createEntryLanguages = `CREATE TABLE IF NOT EXISTS entry_languages (
    entry_id INTEGER NOT NULL REFERENCES entries(entry_id),
    tag TEXT NOT NULL REFERENCES languages(tag),
    PRIMARY KEY (entry_id, tag)
);`

	createTypeCategories = `CREATE TABLE IF NOT EXISTS type_categories (
    category_id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL
);`

	createPublicationCategories = `CREATE TABLE IF NOT EXISTS publication_categories (
    category_id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL
);`
)

// schemaDDL lists every table creation statement in dependency order.
var schemaDDL = []string{
	createCatalogInfo,
	createEntries,
	createIdentities,
	createAssociations,
	createTitleAliases,
	createLanguages,
	createEntryLanguages,
	createTypeCategories,
	createPublicationCategories,
}
