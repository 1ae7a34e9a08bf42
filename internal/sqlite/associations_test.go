// Association tests: version precondition, index assignment, uniqueness,
// ordering, name joining.
package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// insertV3Entry inserts an entry whose field state already infers 3.00.
func insertV3Entry(t *testing.T, c *Catalog, path string) int64 {
	t.Helper()
	id, err := c.InsertEntry(&types.Entry{Filepath: path, MemoryRequired: 64})
	require.NoError(t, err)
	return id
}

func TestAddAssociation(t *testing.T) {
	c := setupCatalog(t)
	entryID := insertV3Entry(t, c, "games/assoc.zip")

	first, err := c.AddAssociation(entryID, "Paco Suarez", types.RoleAuthor, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "Paco Suarez", first.Name)

	second, err := c.AddAssociation(entryID, "Paco Portalo", types.RoleAuthor, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Index)

	// Same name reuses the identity rather than creating another.
	other := insertV3Entry(t, c, "games/assoc2.zip")
	again, err := c.AddAssociation(other, "Paco Suarez", types.RoleAuthor, nil)
	require.NoError(t, err)
	assert.Equal(t, first.IdentityID, again.IdentityID)

	t.Run("explicit index", func(t *testing.T) {
		idx := 5
		a, err := c.AddAssociation(entryID, "Carlos Granados", types.RoleAuthor, &idx)
		require.NoError(t, err)
		assert.Equal(t, 5, a.Index)

		// The next appended credit lands past the gap.
		next, err := c.NextIndex(entryID, types.RoleAuthor)
		require.NoError(t, err)
		assert.Equal(t, 6, next)
	})

	t.Run("taken index rejected", func(t *testing.T) {
		idx := 0
		_, err := c.AddAssociation(entryID, "Camilo Cela", types.RoleAuthor, &idx)
		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
		assert.Equal(t, "duplicate association index", verr.Rule)
	})

	t.Run("duplicate credit rejected", func(t *testing.T) {
		_, err := c.AddAssociation(entryID, "Paco Suarez", types.RoleAuthor, nil)
		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "duplicate association", verr.Rule)
	})

	t.Run("same identity under another role allowed", func(t *testing.T) {
		_, err := c.AddAssociation(entryID, "Paco Suarez", types.RoleMusician, nil)
		require.NoError(t, err)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := c.AddAssociation(entryID, "Someone", types.Role("COMPOSER"), nil)
		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "unknown role", verr.Rule)
	})

	t.Run("unknown entry rejected", func(t *testing.T) {
		_, err := c.AddAssociation(9999, "Someone", types.RoleAuthor, nil)
		var nferr *types.NotFoundError
		require.True(t, errors.As(err, &nferr))
	})
}

func TestAddAssociationRequiresV300(t *testing.T) {
	c := setupCatalog(t)

	// A plain 2.00 entry cannot take credits.
	id, err := c.InsertEntry(&types.Entry{Filepath: "games/v2.zip", Title: "Gauntlet"})
	require.NoError(t, err)

	_, err = c.AddAssociation(id, "US Gold", types.RolePublisher, nil)
	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)

	// A title alias is 3.00 evidence, after which credits are accepted.
	require.NoError(t, c.AddTitleAlias(id, "Gauntlet I"))
	_, err = c.AddAssociation(id, "US Gold", types.RolePublisher, nil)
	require.NoError(t, err)
}

func TestOrderedAssociations(t *testing.T) {
	c := setupCatalog(t)
	entryID := insertV3Entry(t, c, "games/order.zip")

	// Insert in scrambled role order; reads come back in rendering order.
	_, err := c.AddAssociation(entryID, "McArtist", types.RoleArtist, nil)
	require.NoError(t, err)
	_, err = c.AddAssociation(entryID, "Second Author", types.RoleAuthor, nil)
	require.NoError(t, err)
	_, err = c.AddAssociation(entryID, "Ocean", types.RolePublisher, nil)
	require.NoError(t, err)

	// Force "First Author" ahead of "Second Author" by explicit index.
	require.NoError(t, func() error {
		_, err := c.DeleteAssociations(entryID, 0, types.RoleAuthor)
		return err
	}())
	one := 1
	_, err = c.AddAssociation(entryID, "Second Author", types.RoleAuthor, &one)
	require.NoError(t, err)
	zero := 0
	_, err = c.AddAssociation(entryID, "First Author", types.RoleAuthor, &zero)
	require.NoError(t, err)

	assocs, err := c.OrderedAssociations(entryID)
	require.NoError(t, err)
	require.Len(t, assocs, 4)
	assert.Equal(t, types.RolePublisher, assocs[0].Role)
	assert.Equal(t, "First Author", assocs[1].Name)
	assert.Equal(t, "Second Author", assocs[2].Name)
	assert.Equal(t, types.RoleArtist, assocs[3].Role)
}

func TestNamesForRole(t *testing.T) {
	c := setupCatalog(t)
	entryID := insertV3Entry(t, c, "games/names.zip")

	for _, name := range []string{"Paco Suarez", "Paco Portalo", "Carlos Granados", "Camilo Cela"} {
		_, err := c.AddAssociation(entryID, name, types.RoleAuthor, nil)
		require.NoError(t, err)
	}

	names, err := c.NamesForRole(entryID, types.RoleAuthor)
	require.NoError(t, err)
	assert.Equal(t, "Paco Suarez, Paco Portalo, Carlos Granados, Camilo Cela", names)

	empty, err := c.NamesForRole(entryID, types.RoleMusician)
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestDeleteAssociations(t *testing.T) {
	c := setupCatalog(t)
	entryID := insertV3Entry(t, c, "games/delassoc.zip")

	pub, err := c.AddAssociation(entryID, "Ocean", types.RolePublisher, nil)
	require.NoError(t, err)
	_, err = c.AddAssociation(entryID, "Ocean", types.RoleDeveloper, nil)
	require.NoError(t, err)
	_, err = c.AddAssociation(entryID, "Jon Ritman", types.RoleAuthor, nil)
	require.NoError(t, err)

	t.Run("narrowed by identity and role", func(t *testing.T) {
		n, err := c.DeleteAssociations(entryID, pub.IdentityID, types.RolePublisher)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("wildcards delete the rest", func(t *testing.T) {
		n, err := c.DeleteAssociations(entryID, 0, "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("nothing left", func(t *testing.T) {
		n, err := c.DeleteAssociations(entryID, 0, "")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
