package types

// PathMatch is one result of a path search.
type PathMatch struct {
	EntryID  int64  `json:"entry_id"`
	Filepath string `json:"filepath"`
	Title    string `json:"title,omitempty"`
}

// TitleMatch is one result of a title search. IsAlias distinguishes rows
// matched through the title alias table from canonical entry titles.
type TitleMatch struct {
	EntryID int64  `json:"entry_id"`
	Title   string `json:"title"`
	IsAlias bool   `json:"is_alias"`
}

// IdentityMatch is one result of an identity search: one row per
// (identity, role) pair. Role is empty for an identity with no credits.
type IdentityMatch struct {
	IdentityID int64  `json:"identity_id"`
	Name       string `json:"name"`
	Role       Role   `json:"role,omitempty"`
}
