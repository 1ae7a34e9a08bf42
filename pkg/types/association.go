package types

// Role names a way an identity can be credited on an entry. The declaration
// order below is the order role groups appear in a rendered manifest.
type Role string

const (
	RolePublisher    Role = "PUBLISHER"
	RoleReReleasedBy Role = "RE-RELEASED BY"
	RoleCracker      Role = "CRACKER"
	RoleDeveloper    Role = "DEVELOPER"
	RoleAuthor       Role = "AUTHOR"
	RoleDesigner     Role = "DESIGNER"
	RoleArtist       Role = "ARTIST"
	RoleMusician     Role = "MUSICIAN"
)

// Roles lists every valid role in manifest rendering order.
var Roles = []Role{
	RolePublisher,
	RoleReReleasedBy,
	RoleCracker,
	RoleDeveloper,
	RoleAuthor,
	RoleDesigner,
	RoleArtist,
	RoleMusician,
}

// roleRank maps each role to its position in rendering order.
var roleRank = func() map[Role]int {
	m := make(map[Role]int, len(Roles))
	for i, r := range Roles {
		m[r] = i
	}
	return m
}()

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank returns the role's position in rendering order, or len(Roles) for an
// unrecognized role so that unknown roles sort last.
func (r Role) Rank() int {
	if rank, ok := roleRank[r]; ok {
		return rank
	}
	return len(Roles)
}

// Association credits one identity on one entry under one role. Index is the
// zero-based display position within the (entry, role) group; it fixes the
// order names are joined in the rendered manifest. (EntryID, IdentityID,
// Role) and (EntryID, Role, Index) are both unique.
type Association struct {
	EntryID    int64 `json:"entry_id"`
	IdentityID int64 `json:"identity_id"`
	Role       Role  `json:"role"`
	Index      int   `json:"index"`

	// Name is the associated identity's display name, populated on reads
	// that join the identity table.
	Name string `json:"name,omitempty"`
}
