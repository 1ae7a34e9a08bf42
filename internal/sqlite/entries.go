// Entry writes. Every insert or update runs the field validator inside the
// same transaction as the row change, so either the whole change commits or
// none of it does.
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/mesh-intelligence/nvgcat/pkg/manifest"
	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// entryColumns is the column list shared by the entry hydrate helpers.
const entryColumns = `entry_id, filepath, file_size, title, company, year,
    type_id, subtype, title_screen, cheat_mode, protected, problems,
    upload_date, uploader, comments, original_title, publication_id,
    publisher_code, barcode, dl_code, memory_required, protection, run_command`

// InsertEntry validates and stores a new entry, returning its assigned id.
// Languages are normalized to canonical tag casing and must already be
// defined in the languages reference table.
func (c *Catalog) InsertEntry(e *types.Entry) (int64, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}
	if e.Filepath == "" {
		return 0, &types.ValidationError{Rule: "filepath required"}
	}

	tags, err := normalizeTags(e.Languages)
	if err != nil {
		return 0, err
	}
	e.Languages = tags

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// A new entry has no aliases or associations yet.
	if err := c.validateEntryTx(tx, e, manifest.Evidence{}); err != nil {
		return 0, err
	}

	var exists int
	err = tx.QueryRow("SELECT 1 FROM entries WHERE filepath = ?", e.Filepath).Scan(&exists)
	if err == nil {
		return 0, &types.ValidationError{Rule: "duplicate filepath", Detail: e.Filepath}
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("checking filepath uniqueness: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO entries (filepath, file_size, title, company, year,
        type_id, subtype, title_screen, cheat_mode, protected, problems,
        upload_date, uploader, comments, original_title, publication_id,
        publisher_code, barcode, dl_code, memory_required, protection, run_command)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Filepath, e.FileSize, e.Title, e.Company, e.Year,
		e.TypeID, e.Subtype, e.TitleScreen, e.CheatMode, e.Protected, e.Problems,
		e.UploadDate, e.Uploader, e.Comments, e.OriginalTitle, e.PublicationID,
		e.PublisherCode, e.Barcode, e.DLCode, e.MemoryRequired, e.Protection, e.RunCommand)
	if err != nil {
		return 0, fmt.Errorf("inserting entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading entry id: %w", err)
	}

	if err := replaceEntryLanguages(tx, id, e.Languages); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing entry: %w", err)
	}
	e.EntryID = id
	c.log.Info("entry inserted", "entry_id", id, "filepath", e.Filepath)
	return id, nil
}

// UpdateEntry validates and stores the new field state of an existing entry.
// The filepath is immutable: a differing non-empty path is rejected. The
// validator sees the entry's real alias and association evidence.
func (c *Catalog) UpdateEntry(e *types.Entry) error {
	db, err := c.handle()
	if err != nil {
		return err
	}

	tags, err := normalizeTags(e.Languages)
	if err != nil {
		return err
	}
	e.Languages = tags

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var storedPath string
	err = tx.QueryRow("SELECT filepath FROM entries WHERE entry_id = ?", e.EntryID).Scan(&storedPath)
	if err == sql.ErrNoRows {
		return types.NotFound("entry", e.EntryID)
	}
	if err != nil {
		return fmt.Errorf("loading entry %d: %w", e.EntryID, err)
	}
	if e.Filepath != "" && e.Filepath != storedPath {
		return &types.ValidationError{
			Rule:   "filepath is immutable",
			Detail: fmt.Sprintf("entry %d is %s", e.EntryID, storedPath),
		}
	}
	e.Filepath = storedPath

	ev, err := entryEvidence(tx, e.EntryID)
	if err != nil {
		return err
	}
	if err := c.validateEntryTx(tx, e, ev); err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE entries SET file_size = ?, title = ?, company = ?, year = ?,
        type_id = ?, subtype = ?, title_screen = ?, cheat_mode = ?, protected = ?,
        problems = ?, upload_date = ?, uploader = ?, comments = ?, original_title = ?,
        publication_id = ?, publisher_code = ?, barcode = ?, dl_code = ?,
        memory_required = ?, protection = ?, run_command = ? WHERE entry_id = ?`,
		e.FileSize, e.Title, e.Company, e.Year,
		e.TypeID, e.Subtype, e.TitleScreen, e.CheatMode, e.Protected,
		e.Problems, e.UploadDate, e.Uploader, e.Comments, e.OriginalTitle,
		e.PublicationID, e.PublisherCode, e.Barcode, e.DLCode,
		e.MemoryRequired, e.Protection, e.RunCommand, e.EntryID)
	if err != nil {
		return fmt.Errorf("updating entry %d: %w", e.EntryID, err)
	}

	if _, err := tx.Exec("DELETE FROM entry_languages WHERE entry_id = ?", e.EntryID); err != nil {
		return fmt.Errorf("clearing entry languages: %w", err)
	}
	if err := replaceEntryLanguages(tx, e.EntryID, e.Languages); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry update: %w", err)
	}
	c.log.Info("entry updated", "entry_id", e.EntryID, "filepath", storedPath)
	return nil
}

// GetEntry retrieves an entry by id.
func (c *Catalog) GetEntry(id int64) (*types.Entry, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}
	return getEntry(db, "entry_id = ?", id)
}

// GetEntryByPath retrieves an entry by its archive path.
func (c *Catalog) GetEntryByPath(path string) (*types.Entry, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}
	return getEntry(db, "filepath = ?", path)
}

// DeleteEntry removes an entry and cascades to its associations, title
// aliases and language links. Identities are never deleted.
func (c *Catalog) DeleteEntry(id int64) error {
	db, err := c.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM entries WHERE entry_id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return types.NotFound("entry", id)
	}
	if err != nil {
		return fmt.Errorf("checking entry existence: %w", err)
	}

	for _, stmt := range []string{
		"DELETE FROM associations WHERE entry_id = ?",
		"DELETE FROM title_aliases WHERE entry_id = ?",
		"DELETE FROM entry_languages WHERE entry_id = ?",
		"DELETE FROM entries WHERE entry_id = ?",
	} {
		if _, err := tx.Exec(stmt, id); err != nil {
			return fmt.Errorf("deleting entry %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry deletion: %w", err)
	}
	c.log.Info("entry deleted", "entry_id", id)
	return nil
}

// validateEntryTx resolves the entry's publication and type categories and
// runs the cross-field validator against the given evidence.
func (c *Catalog) validateEntryTx(tx dbtx, e *types.Entry, ev manifest.Evidence) error {
	pubDesc := ""
	if e.PublicationID != 0 {
		var err error
		pubDesc, err = lookupDescription(tx, "publication_categories", e.PublicationID)
		if err != nil {
			return err
		}
	}
	if e.TypeID != 0 {
		if _, err := lookupDescription(tx, "type_categories", e.TypeID); err != nil {
			return err
		}
	}
	if err := manifest.ValidateEntry(e, ev, pubDesc); err != nil {
		c.log.Warn("entry rejected", "entry_id", e.EntryID, "filepath", e.Filepath, "err", err)
		return err
	}
	return nil
}

// entryEvidence gathers the alias and association facts used by version
// inference for an existing entry.
func entryEvidence(tx dbtx, entryID int64) (manifest.Evidence, error) {
	var ev manifest.Evidence
	var n int

	err := tx.QueryRow("SELECT COUNT(*) FROM title_aliases WHERE entry_id = ?", entryID).Scan(&n)
	if err != nil {
		return ev, fmt.Errorf("counting title aliases: %w", err)
	}
	ev.HasTitleAliases = n > 0

	err = tx.QueryRow("SELECT COUNT(*) FROM associations WHERE entry_id = ?", entryID).Scan(&n)
	if err != nil {
		return ev, fmt.Errorf("counting associations: %w", err)
	}
	ev.HasAssociations = n > 0

	err = tx.QueryRow("SELECT COUNT(*) FROM associations WHERE entry_id = ? AND role = ?",
		entryID, string(types.RoleDesigner)).Scan(&n)
	if err != nil {
		return ev, fmt.Errorf("counting designer associations: %w", err)
	}
	ev.HasDesigner = n > 0

	return ev, nil
}

// replaceEntryLanguages inserts the entry's language links. Each tag must
// exist in the languages reference table.
func replaceEntryLanguages(tx dbtx, entryID int64, tags []string) error {
	for _, tag := range tags {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM languages WHERE tag = ?", tag).Scan(&exists)
		if err == sql.ErrNoRows {
			return types.NotFound("language", tag)
		}
		if err != nil {
			return fmt.Errorf("checking language %s: %w", tag, err)
		}
		if _, err := tx.Exec("INSERT INTO entry_languages (entry_id, tag) VALUES (?, ?)",
			entryID, tag); err != nil {
			return fmt.Errorf("linking language %s: %w", tag, err)
		}
	}
	return nil
}

// normalizeTags folds every tag to canonical casing, rejecting malformed
// tags and dropping duplicates.
func normalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized, err := types.NormalizeLanguageTag(tag)
		if err != nil {
			return nil, err
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	sort.Strings(out)
	return out, nil
}

// lookupDescription fetches a category description by id, reporting a
// NotFoundError for a dangling reference.
func lookupDescription(tx dbtx, table string, id int64) (string, error) {
	kind := "type category"
	if table == "publication_categories" {
		kind = "publication category"
	}
	var desc string
	err := tx.QueryRow("SELECT description FROM "+table+" WHERE category_id = ?", id).Scan(&desc)
	if err == sql.ErrNoRows {
		return "", types.NotFound(kind, id)
	}
	if err != nil {
		return "", fmt.Errorf("looking up %s %d: %w", kind, id, err)
	}
	return desc, nil
}

// getEntry hydrates one entry matching the given predicate.
func getEntry(q dbtx, where string, arg any) (*types.Entry, error) {
	row := q.QueryRow("SELECT "+entryColumns+" FROM entries WHERE "+where, arg)
	e, err := hydrateEntry(row)
	if err == sql.ErrNoRows {
		return nil, types.NotFound("entry", arg)
	}
	if err != nil {
		return nil, fmt.Errorf("getting entry %v: %w", arg, err)
	}
	if err := loadEntryLanguages(q, e); err != nil {
		return nil, err
	}
	return e, nil
}

// hydrateEntry scans an entry row into a types.Entry.
func hydrateEntry(row *sql.Row) (*types.Entry, error) {
	var e types.Entry
	err := row.Scan(&e.EntryID, &e.Filepath, &e.FileSize, &e.Title, &e.Company, &e.Year,
		&e.TypeID, &e.Subtype, &e.TitleScreen, &e.CheatMode, &e.Protected, &e.Problems,
		&e.UploadDate, &e.Uploader, &e.Comments, &e.OriginalTitle, &e.PublicationID,
		&e.PublisherCode, &e.Barcode, &e.DLCode, &e.MemoryRequired, &e.Protection, &e.RunCommand)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// loadEntryLanguages fills the entry's Languages slice in tag order.
func loadEntryLanguages(q dbtx, e *types.Entry) error {
	rows, err := q.Query("SELECT tag FROM entry_languages WHERE entry_id = ? ORDER BY tag", e.EntryID)
	if err != nil {
		return fmt.Errorf("loading entry languages: %w", err)
	}
	defer rows.Close()

	e.Languages = nil
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("scanning entry language: %w", err)
		}
		e.Languages = append(e.Languages, tag)
	}
	return rows.Err()
}
