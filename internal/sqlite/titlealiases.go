package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// AddTitleAlias records an alternate title for an entry. (entry, title) is
// unique; a duplicate is rejected.
func (c *Catalog) AddTitleAlias(entryID int64, title string) error {
	db, err := c.handle()
	if err != nil {
		return err
	}
	if title == "" {
		return &types.ValidationError{Rule: "title alias required"}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM entries WHERE entry_id = ?", entryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return types.NotFound("entry", entryID)
	}
	if err != nil {
		return fmt.Errorf("checking entry existence: %w", err)
	}

	err = tx.QueryRow("SELECT 1 FROM title_aliases WHERE entry_id = ? AND title = ?",
		entryID, title).Scan(&exists)
	if err == nil {
		return &types.ValidationError{
			Rule:   "duplicate title alias",
			Detail: fmt.Sprintf("%q on entry %d", title, entryID),
		}
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking title alias uniqueness: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO title_aliases (entry_id, title) VALUES (?, ?)",
		entryID, title); err != nil {
		return fmt.Errorf("inserting title alias: %w", err)
	}
	return tx.Commit()
}

// TitleAliases returns an entry's alternate titles in title order.
func (c *Catalog) TitleAliases(entryID int64) ([]string, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}
	return titleAliases(db, entryID)
}

// DeleteTitleAliases removes all alternate titles for an entry, returning
// the number removed.
func (c *Catalog) DeleteTitleAliases(entryID int64) (int64, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}
	res, err := db.Exec("DELETE FROM title_aliases WHERE entry_id = ?", entryID)
	if err != nil {
		return 0, fmt.Errorf("deleting title aliases: %w", err)
	}
	return res.RowsAffected()
}

func titleAliases(q dbtx, entryID int64) ([]string, error) {
	rows, err := q.Query("SELECT title FROM title_aliases WHERE entry_id = ? ORDER BY title", entryID)
	if err != nil {
		return nil, fmt.Errorf("fetching title aliases: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning title alias: %w", err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}
