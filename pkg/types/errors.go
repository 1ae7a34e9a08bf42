package types

import (
	"errors"
	"fmt"
)

// Catalog lifecycle errors.
var (
	ErrCatalogDetached = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
)

// ValidationError rejects a write that violates a cross-field rule. Rule
// names the rule that failed; Detail carries the offending values. The write
// is rolled back in full.
type ValidationError struct {
	Rule   string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return "validation failed: " + e.Rule
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Rule, e.Detail)
}

// CycleError rejects an alias-of edit that would close a cycle in the
// identity graph. IdentityID is the identity being edited; TargetID is the
// proposed alias-of target whose chain reaches back to IdentityID.
type CycleError struct {
	IdentityID int64
	TargetID   int64
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("alias cycle: identity %d cannot alias %d, whose chain resolves back to %d",
		e.IdentityID, e.TargetID, e.IdentityID)
}

// NotFoundError reports a reference to a nonexistent entry, identity or
// reference-table row.
type NotFoundError struct {
	Kind string // "entry", "identity", "language", ...
	Ref  string // id or key that was looked up
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Ref)
}

// NotFound builds a NotFoundError from any printable reference.
func NotFound(kind string, ref any) *NotFoundError {
	return &NotFoundError{Kind: kind, Ref: fmt.Sprint(ref)}
}

// RenderError reports a manifest render attempted on an entry whose inferred
// version is inconsistent. The renderer never guesses a layout.
type RenderError struct {
	EntryID int64
	Reason  string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render manifest for entry %d: %s", e.EntryID, e.Reason)
}
