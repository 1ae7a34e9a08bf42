// Package types defines the catalog entities (entries, identities,
// associations, title aliases, reference tables), the typed error values,
// and the Config used to attach a storage backend.
package types
