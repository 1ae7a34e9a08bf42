// Reference-table maintenance: language tags, file type categories and
// publication categories are mutable lookup tables, not hard-coded
// constants, since new tags and categories are added over time.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// InsertLanguage defines a language tag and its description. The tag is
// folded to canonical casing; a malformed or duplicate tag is rejected.
func (c *Catalog) InsertLanguage(tag, description string) (string, error) {
	db, err := c.handle()
	if err != nil {
		return "", err
	}
	normalized, err := types.NormalizeLanguageTag(tag)
	if err != nil {
		return "", err
	}
	if description == "" {
		return "", &types.ValidationError{Rule: "language description required"}
	}

	var exists int
	err = db.QueryRow("SELECT 1 FROM languages WHERE tag = ?", normalized).Scan(&exists)
	if err == nil {
		return "", &types.ValidationError{Rule: "duplicate language tag", Detail: normalized}
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("checking language uniqueness: %w", err)
	}

	if _, err := db.Exec("INSERT INTO languages (tag, description) VALUES (?, ?)",
		normalized, description); err != nil {
		return "", fmt.Errorf("inserting language: %w", err)
	}
	return normalized, nil
}

// UpdateLanguage gives an existing language tag a new description.
func (c *Catalog) UpdateLanguage(tag, description string) error {
	db, err := c.handle()
	if err != nil {
		return err
	}
	normalized, err := types.NormalizeLanguageTag(tag)
	if err != nil {
		return err
	}

	res, err := db.Exec("UPDATE languages SET description = ? WHERE tag = ?", description, normalized)
	if err != nil {
		return fmt.Errorf("updating language: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.NotFound("language", normalized)
	}
	return nil
}

// DeleteLanguage removes a language tag. Removal is rejected while any entry
// still uses the tag.
func (c *Catalog) DeleteLanguage(tag string) error {
	db, err := c.handle()
	if err != nil {
		return err
	}
	normalized, err := types.NormalizeLanguageTag(tag)
	if err != nil {
		return err
	}

	var inUse int
	if err := db.QueryRow("SELECT COUNT(*) FROM entry_languages WHERE tag = ?",
		normalized).Scan(&inUse); err != nil {
		return fmt.Errorf("checking language usage: %w", err)
	}
	if inUse > 0 {
		return &types.ValidationError{
			Rule:   "language tag in use",
			Detail: fmt.Sprintf("%s is used by %d entries", normalized, inUse),
		}
	}

	res, err := db.Exec("DELETE FROM languages WHERE tag = ?", normalized)
	if err != nil {
		return fmt.Errorf("deleting language: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.NotFound("language", normalized)
	}
	return nil
}

// Languages returns every defined language in tag order.
func (c *Catalog) Languages() ([]types.Language, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT tag, description FROM languages ORDER BY tag")
	if err != nil {
		return nil, fmt.Errorf("fetching languages: %w", err)
	}
	defer rows.Close()

	var langs []types.Language
	for rows.Next() {
		var l types.Language
		if err := rows.Scan(&l.Tag, &l.Description); err != nil {
			return nil, fmt.Errorf("scanning language: %w", err)
		}
		langs = append(langs, l)
	}
	return langs, rows.Err()
}

// InsertTypeCategory defines a file type description. With id 0 the store
// assigns the next available id.
func (c *Catalog) InsertTypeCategory(description string, id int64) (int64, error) {
	return c.insertCategory("type_categories", description, id)
}

// InsertPublicationCategory defines a publication description. With id 0
// the store assigns the next available id.
func (c *Catalog) InsertPublicationCategory(description string, id int64) (int64, error) {
	return c.insertCategory("publication_categories", description, id)
}

// TypeCategories returns every file type category in id order.
func (c *Catalog) TypeCategories() ([]types.TypeCategory, error) {
	rows, err := c.categoryRows("type_categories")
	if err != nil {
		return nil, err
	}
	out := make([]types.TypeCategory, len(rows))
	for i, r := range rows {
		out[i] = types.TypeCategory{CategoryID: r.id, Description: r.desc}
	}
	return out, nil
}

// PublicationCategories returns every publication category in id order.
func (c *Catalog) PublicationCategories() ([]types.PublicationCategory, error) {
	rows, err := c.categoryRows("publication_categories")
	if err != nil {
		return nil, err
	}
	out := make([]types.PublicationCategory, len(rows))
	for i, r := range rows {
		out[i] = types.PublicationCategory{CategoryID: r.id, Description: r.desc}
	}
	return out, nil
}

func (c *Catalog) insertCategory(table, description string, id int64) (int64, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}
	if description == "" {
		return 0, &types.ValidationError{Rule: "category description required"}
	}

	var res sql.Result
	if id != 0 {
		res, err = db.Exec("INSERT INTO "+table+" (category_id, description) VALUES (?, ?)",
			id, description)
	} else {
		res, err = db.Exec("INSERT INTO "+table+" (description) VALUES (?)", description)
	}
	if err != nil {
		return 0, fmt.Errorf("inserting into %s: %w", table, err)
	}
	return res.LastInsertId()
}

type categoryRow struct {
	id   int64
	desc string
}

func (c *Catalog) categoryRows(table string) ([]categoryRow, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT category_id, description FROM " + table + " ORDER BY category_id")
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", table, err)
	}
	defer rows.Close()

	var out []categoryRow
	for rows.Next() {
		var r categoryRow
		if err := rows.Scan(&r.id, &r.desc); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
