// Identity graph operations. The alias-of relation is a forest with
// out-degree at most one per node; root resolution, alias collection and the
// pre-commit cycle check are plain traversals over the identities table.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// maxAliasHops bounds every alias-chain walk. The acyclic invariant makes
// the real bound the identity count; the cutoff guards against a violated
// invariant in the stored data.
const maxAliasHops = 65536

// InsertIdentity stores a new identity, optionally already aliased to an
// existing one, and returns its assigned id.
func (c *Catalog) InsertIdentity(name string, aliasOf *int64) (int64, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}
	if name == "" {
		return 0, &types.ValidationError{Rule: "identity name required"}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if aliasOf != nil {
		if _, err := getIdentity(tx, *aliasOf); err != nil {
			return 0, err
		}
	}

	res, err := tx.Exec("INSERT INTO identities (name, alias_of) VALUES (?, ?)", name, aliasOf)
	if err != nil {
		return 0, fmt.Errorf("inserting identity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading identity id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing identity: %w", err)
	}
	c.log.Info("identity inserted", "identity_id", id, "name", name)
	return id, nil
}

// GetIdentity retrieves an identity by id.
func (c *Catalog) GetIdentity(id int64) (*types.Identity, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}
	return getIdentity(db, id)
}

// SetAliasOf updates an identity's alias-of target. Passing nil detaches the
// identity, making it a root. The edit is rejected with a CycleError, before
// commit, if walking from the proposed target toward its root reaches the
// identity being edited.
func (c *Catalog) SetAliasOf(id int64, target *int64) error {
	db, err := c.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := getIdentity(tx, id); err != nil {
		return err
	}
	if target != nil {
		if _, err := getIdentity(tx, *target); err != nil {
			return err
		}
		if err := checkAliasCycle(tx, id, *target); err != nil {
			c.log.Warn("alias edit rejected", "identity_id", id, "target", *target, "err", err)
			return err
		}
	}

	if _, err := tx.Exec("UPDATE identities SET alias_of = ? WHERE identity_id = ?", target, id); err != nil {
		return fmt.Errorf("updating alias target: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing alias edit: %w", err)
	}
	return nil
}

// ResolveRoot walks alias-of links from id to the identity with no further
// target. Fails only if id does not exist; idempotent under repetition.
func (c *Catalog) ResolveRoot(id int64) (*types.Identity, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}
	return resolveRoot(db, id)
}

// AliasesOf returns the full alias set of an identity: the resolved root
// plus every identity that transitively aliases it, collected layer by
// layer. Each layer is ordered by id.
func (c *Catalog) AliasesOf(id int64) ([]types.Identity, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	root, err := resolveRoot(db, id)
	if err != nil {
		return nil, err
	}

	result := []types.Identity{*root}
	frontier := []int64{root.IdentityID}
	for layer := 0; len(frontier) > 0; layer++ {
		if layer > maxAliasHops {
			return nil, fmt.Errorf("alias graph exceeds %d layers from identity %d", maxAliasHops, id)
		}
		next, err := aliasLayer(db, frontier)
		if err != nil {
			return nil, err
		}
		result = append(result, next...)
		frontier = frontier[:0]
		for _, ident := range next {
			frontier = append(frontier, ident.IdentityID)
		}
	}
	return result, nil
}

// aliasLayer fetches the identities whose alias-of target lies in the
// current frontier, ordered by id.
func aliasLayer(q dbtx, frontier []int64) ([]types.Identity, error) {
	placeholders := make([]string, len(frontier))
	args := make([]any, len(frontier))
	for i, id := range frontier {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := q.Query(
		"SELECT identity_id, name, alias_of FROM identities WHERE alias_of IN ("+
			strings.Join(placeholders, ", ")+") ORDER BY identity_id", args...)
	if err != nil {
		return nil, fmt.Errorf("collecting alias layer: %w", err)
	}
	defer rows.Close()

	var layer []types.Identity
	for rows.Next() {
		ident, err := scanIdentity(rows)
		if err != nil {
			return nil, err
		}
		layer = append(layer, *ident)
	}
	return layer, rows.Err()
}

// checkAliasCycle walks from the proposed target toward its root and fails
// with a CycleError if the walk reaches the identity being edited.
func checkAliasCycle(tx dbtx, id, target int64) error {
	current := target
	for hops := 0; ; hops++ {
		if hops > maxAliasHops {
			return fmt.Errorf("alias chain from identity %d exceeds %d hops", target, maxAliasHops)
		}
		if current == id {
			return &types.CycleError{IdentityID: id, TargetID: target}
		}
		ident, err := getIdentity(tx, current)
		if err != nil {
			return err
		}
		if ident.AliasOf == nil {
			return nil
		}
		current = *ident.AliasOf
	}
}

// resolveRoot is the traversal behind ResolveRoot, usable inside and outside
// transactions.
func resolveRoot(q dbtx, id int64) (*types.Identity, error) {
	ident, err := getIdentity(q, id)
	if err != nil {
		return nil, err
	}
	for hops := 0; ident.AliasOf != nil; hops++ {
		if hops > maxAliasHops {
			return nil, fmt.Errorf("alias chain from identity %d exceeds %d hops", id, maxAliasHops)
		}
		ident, err = getIdentity(q, *ident.AliasOf)
		if err != nil {
			return nil, err
		}
	}
	return ident, nil
}

// ensureIdentity resolves a display name to an identity id, creating a new
// root identity on first reference. Name matching is exact.
func ensureIdentity(tx dbtx, name string) (int64, error) {
	if name == "" {
		return 0, &types.ValidationError{Rule: "identity name required"}
	}
	var id int64
	err := tx.QueryRow("SELECT identity_id FROM identities WHERE name = ? ORDER BY identity_id LIMIT 1",
		name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up identity %q: %w", name, err)
	}

	res, err := tx.Exec("INSERT INTO identities (name, alias_of) VALUES (?, NULL)", name)
	if err != nil {
		return 0, fmt.Errorf("creating identity %q: %w", name, err)
	}
	return res.LastInsertId()
}

// getIdentity hydrates one identity row.
func getIdentity(q dbtx, id int64) (*types.Identity, error) {
	var ident types.Identity
	var aliasOf sql.NullInt64
	err := q.QueryRow("SELECT identity_id, name, alias_of FROM identities WHERE identity_id = ?",
		id).Scan(&ident.IdentityID, &ident.Name, &aliasOf)
	if err == sql.ErrNoRows {
		return nil, types.NotFound("identity", id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting identity %d: %w", id, err)
	}
	if aliasOf.Valid {
		ident.AliasOf = &aliasOf.Int64
	}
	return &ident, nil
}

// scanIdentity hydrates an identity from a multi-row result.
func scanIdentity(rows *sql.Rows) (*types.Identity, error) {
	var ident types.Identity
	var aliasOf sql.NullInt64
	if err := rows.Scan(&ident.IdentityID, &ident.Name, &aliasOf); err != nil {
		return nil, fmt.Errorf("scanning identity: %w", err)
	}
	if aliasOf.Valid {
		ident.AliasOf = &aliasOf.Int64
	}
	return &ident, nil
}
