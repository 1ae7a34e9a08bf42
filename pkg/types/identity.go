package types

// Identity is a credited person or organization. An identity may be recorded
// under several names; AliasOf points at the identity this one is an
// alternate name for. The alias-of relation forms an acyclic forest with
// out-degree at most one per node. Identity ids are immutable once assigned;
// only the alias link may change.
type Identity struct {
	IdentityID int64  `json:"identity_id"`
	Name       string `json:"name"` // Display name, stored verbatim.
	AliasOf    *int64 `json:"alias_of,omitempty"` // nil for a root identity.
}

// IsRoot reports whether the identity has no further alias-of target.
func (i *Identity) IsRoot() bool {
	return i.AliasOf == nil
}
