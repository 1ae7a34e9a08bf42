// Search is read-only pattern matching over entries, titles and identities.
// Patterns use two wildcards: _ matches one character, % matches any run.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// SearchPaths matches entry paths against a pattern, ordered by path.
func (c *Catalog) SearchPaths(pattern string) ([]types.PathMatch, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT entry_id, filepath, title FROM entries WHERE filepath LIKE ? ORDER BY filepath",
		pattern)
	if err != nil {
		return nil, fmt.Errorf("searching paths: %w", err)
	}
	defer rows.Close()

	var matches []types.PathMatch
	for rows.Next() {
		var m types.PathMatch
		if err := rows.Scan(&m.EntryID, &m.Filepath, &m.Title); err != nil {
			return nil, fmt.Errorf("scanning path match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// SearchTitles matches canonical titles unioned with title aliases, each row
// tagged by origin. A canonical title always precedes its own aliases: the
// result is ordered by entry id, then alias flag, then title.
func (c *Catalog) SearchTitles(pattern string) ([]types.TitleMatch, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT entry_id, title, is_alias FROM (
        SELECT entry_id, title, 0 AS is_alias FROM entries WHERE title LIKE ?
        UNION ALL
        SELECT entry_id, title, 1 AS is_alias FROM title_aliases WHERE title LIKE ?
        ) ORDER BY entry_id, is_alias, title`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching titles: %w", err)
	}
	defer rows.Close()

	var matches []types.TitleMatch
	for rows.Next() {
		var m types.TitleMatch
		var isAlias int
		if err := rows.Scan(&m.EntryID, &m.Title, &isAlias); err != nil {
			return nil, fmt.Errorf("scanning title match: %w", err)
		}
		m.IsAlias = isAlias != 0
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// SearchIdentities matches identity names, returning one row per (identity,
// role) pair. Identities without any credit still appear once, with an
// empty role.
func (c *Catalog) SearchIdentities(pattern string) ([]types.IdentityMatch, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT DISTINCT i.identity_id, i.name, COALESCE(a.role, '')
        FROM identities i LEFT JOIN associations a ON a.identity_id = i.identity_id
        WHERE i.name LIKE ? ORDER BY i.identity_id, a.role`, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching identities: %w", err)
	}
	defer rows.Close()

	var matches []types.IdentityMatch
	for rows.Next() {
		var m types.IdentityMatch
		var role string
		if err := rows.Scan(&m.IdentityID, &m.Name, &role); err != nil {
			return nil, fmt.Errorf("scanning identity match: %w", err)
		}
		m.Role = types.Role(role)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
