package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), "role %q", r)
	}
	assert.False(t, Role("COMPOSER").Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("publisher").Valid(), "roles are case sensitive")
}

func TestRoleRank(t *testing.T) {
	// Rendering order: publisher group first, musician last.
	assert.Equal(t, 0, RolePublisher.Rank())
	assert.Equal(t, len(Roles)-1, RoleMusician.Rank())
	assert.Less(t, RoleCracker.Rank(), RoleAuthor.Rank())
	assert.Less(t, RoleAuthor.Rank(), RoleDesigner.Rank())

	// Unknown roles sort last.
	assert.Equal(t, len(Roles), Role("COMPOSER").Rank())
}
