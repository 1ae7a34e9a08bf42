// Role associations: which identities are credited on an entry, under which
// role, in which display order.
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/nvgcat/pkg/manifest"
	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// AddAssociation credits an identity on an entry under a role. The identity
// is created on first reference to its display name. With index nil the
// credit is appended past the current maximum index for the (entry, role)
// group. The entry's field-state version must already be at least 3.00.
func (c *Catalog) AddAssociation(entryID int64, name string, role types.Role, index *int) (*types.Association, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, &types.ValidationError{Rule: "unknown role", Detail: string(role)}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	entry, err := getEntry(tx, "entry_id = ?", entryID)
	if err != nil {
		return nil, err
	}

	var aliasCount int
	if err := tx.QueryRow("SELECT COUNT(*) FROM title_aliases WHERE entry_id = ?",
		entryID).Scan(&aliasCount); err != nil {
		return nil, fmt.Errorf("counting title aliases: %w", err)
	}
	if err := manifest.CheckAssociationInsert(entry, aliasCount > 0); err != nil {
		c.log.Warn("association rejected", "entry_id", entryID, "role", role, "err", err)
		return nil, err
	}

	identityID, err := ensureIdentity(tx, name)
	if err != nil {
		return nil, err
	}

	var dup int
	err = tx.QueryRow("SELECT 1 FROM associations WHERE entry_id = ? AND identity_id = ? AND role = ?",
		entryID, identityID, string(role)).Scan(&dup)
	if err == nil {
		return nil, &types.ValidationError{
			Rule:   "duplicate association",
			Detail: fmt.Sprintf("identity %d already credited as %s on entry %d", identityID, role, entryID),
		}
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking association uniqueness: %w", err)
	}

	pos := 0
	if index != nil {
		pos = *index
		err = tx.QueryRow("SELECT 1 FROM associations WHERE entry_id = ? AND role = ? AND position = ?",
			entryID, string(role), pos).Scan(&dup)
		if err == nil {
			return nil, &types.ValidationError{
				Rule:   "duplicate association index",
				Detail: fmt.Sprintf("index %d already taken for role %s on entry %d", pos, role, entryID),
			}
		}
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("checking index uniqueness: %w", err)
		}
	} else {
		pos, err = nextIndex(tx, entryID, role)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec("INSERT INTO associations (entry_id, identity_id, role, position) VALUES (?, ?, ?, ?)",
		entryID, identityID, string(role), pos)
	if err != nil {
		return nil, fmt.Errorf("inserting association: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing association: %w", err)
	}

	return &types.Association{
		EntryID:    entryID,
		IdentityID: identityID,
		Role:       role,
		Index:      pos,
		Name:       name,
	}, nil
}

// DeleteAssociations removes credits from an entry. identityID 0 matches any
// identity and role "" matches any role; the count of removed credits is
// returned.
func (c *Catalog) DeleteAssociations(entryID int64, identityID int64, role types.Role) (int64, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}

	query := "DELETE FROM associations WHERE entry_id = ?"
	args := []any{entryID}
	if identityID != 0 {
		query += " AND identity_id = ?"
		args = append(args, identityID)
	}
	if role != "" {
		query += " AND role = ?"
		args = append(args, string(role))
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting associations: %w", err)
	}
	return res.RowsAffected()
}

// NextIndex returns the display index the next credit for (entry, role)
// would receive: one past the current maximum, or 0 when none exist.
func (c *Catalog) NextIndex(entryID int64, role types.Role) (int, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}
	return nextIndex(db, entryID, role)
}

// OrderedAssociations returns every credit on an entry sorted by (role rank,
// index). The ordering fixes both the name-join order within a role and the
// role order in rendering.
func (c *Catalog) OrderedAssociations(entryID int64) ([]types.Association, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT a.entry_id, a.identity_id, a.role, a.position, i.name
        FROM associations a JOIN identities i ON i.identity_id = a.identity_id
        WHERE a.entry_id = ?`, entryID)
	if err != nil {
		return nil, fmt.Errorf("fetching associations: %w", err)
	}
	defer rows.Close()

	var assocs []types.Association
	for rows.Next() {
		var a types.Association
		var role string
		if err := rows.Scan(&a.EntryID, &a.IdentityID, &role, &a.Index, &a.Name); err != nil {
			return nil, fmt.Errorf("scanning association: %w", err)
		}
		a.Role = types.Role(role)
		assocs = append(assocs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating associations: %w", err)
	}

	sort.SliceStable(assocs, func(i, j int) bool {
		if assocs[i].Role != assocs[j].Role {
			return assocs[i].Role.Rank() < assocs[j].Role.Rank()
		}
		return assocs[i].Index < assocs[j].Index
	})
	return assocs, nil
}

// NamesForRole joins the display names credited under one role on an entry
// with ", " in index order. Names are used as stored; associations are not
// re-resolved through the alias graph at render time.
func (c *Catalog) NamesForRole(entryID int64, role types.Role) (string, error) {
	db, err := c.handle()
	if err != nil {
		return "", err
	}
	return namesForRole(db, entryID, role)
}

func namesForRole(q dbtx, entryID int64, role types.Role) (string, error) {
	rows, err := q.Query(`SELECT i.name
        FROM associations a JOIN identities i ON i.identity_id = a.identity_id
        WHERE a.entry_id = ? AND a.role = ? ORDER BY a.position`, entryID, string(role))
	if err != nil {
		return "", fmt.Errorf("fetching %s names: %w", role, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", fmt.Errorf("scanning name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating names: %w", err)
	}
	return strings.Join(names, ", "), nil
}

// nextIndex computes 1 + max(position) for the (entry, role) group, or 0.
func nextIndex(q dbtx, entryID int64, role types.Role) (int, error) {
	var max sql.NullInt64
	err := q.QueryRow("SELECT MAX(position) FROM associations WHERE entry_id = ? AND role = ?",
		entryID, string(role)).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("computing next index: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}
