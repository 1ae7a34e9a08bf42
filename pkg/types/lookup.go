package types

import (
	"regexp"
	"strings"
)

// languageTagRegexp is the canonical IETF tag shape accepted by the catalog:
// a two-letter lowercase language code, optionally followed by a hyphen and
// a two-letter uppercase country code (e.g. "en", "en-US", "pt-BR").
var languageTagRegexp = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// Language maps an IETF language tag to its description.
type Language struct {
	Tag         string `json:"tag"`         // e.g. "en", "pt-BR". Primary key.
	Description string `json:"description"` // e.g. "English", "Portuguese (Brazilian)".
}

// TypeCategory describes a file type (e.g. "Arcade game", "Utility").
type TypeCategory struct {
	CategoryID  int64  `json:"category_id"`
	Description string `json:"description"`
}

// PublicationCategory describes how a package was published
// (e.g. "Commercial", "Freeware", "Crack", "Type-in").
type PublicationCategory struct {
	CategoryID  int64  `json:"category_id"`
	Description string `json:"description"`
}

// NormalizeLanguageTag folds a tag to canonical casing (language code lower,
// country code upper) and returns it. A tag that does not match the
// canonical shape after folding is rejected with a ValidationError.
func NormalizeLanguageTag(tag string) (string, error) {
	normalized := tag
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		normalized = strings.ToLower(tag[:i]) + "-" + strings.ToUpper(tag[i+1:])
	} else {
		normalized = strings.ToLower(tag)
	}
	if !languageTagRegexp.MatchString(normalized) {
		return "", &ValidationError{
			Rule:   "language tag format",
			Detail: "tag " + tag + " is not of the form xx or xx-YY",
		}
	}
	return normalized, nil
}
