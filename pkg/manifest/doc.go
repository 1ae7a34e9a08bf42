// Package manifest implements the file_id.diz schema engine: inference of
// the manifest version that applies to an entry, the cross-field validation
// rules keyed off that version, and bit-exact rendering of the manifest text
// for versions 2.00, 3.00 and 3.10. Everything in this package is pure and
// deterministic; storage concerns live in internal/sqlite.
package manifest
