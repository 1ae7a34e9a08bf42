// Manifest assembly: gathers an entry's row, aliases, ordered credits and
// reference-table descriptions, then hands the resolved record to the
// rendering engine.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/nvgcat/pkg/manifest"
	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// RenderManifest produces the canonical manifest text for an entry. Fails
// with a RenderError when the entry's inferred version is inconsistent.
func (c *Catalog) RenderManifest(entryID int64) (string, error) {
	data, err := c.resolveEntry(entryID)
	if err != nil {
		return "", err
	}
	return manifest.Render(*data)
}

// EntryVersion reports the manifest version inferred for an entry from its
// field state plus alias and association existence.
func (c *Catalog) EntryVersion(entryID int64) (manifest.Version, error) {
	db, err := c.handle()
	if err != nil {
		return manifest.Inconsistent, err
	}

	entry, err := getEntry(db, "entry_id = ?", entryID)
	if err != nil {
		return manifest.Inconsistent, err
	}
	ev, err := entryEvidence(db, entryID)
	if err != nil {
		return manifest.Inconsistent, err
	}
	return manifest.Infer(entry, ev), nil
}

// resolveEntry assembles everything the renderer needs for one entry.
func (c *Catalog) resolveEntry(entryID int64) (*manifest.RenderData, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	entry, err := getEntry(db, "entry_id = ?", entryID)
	if err != nil {
		return nil, err
	}

	aliases, err := titleAliases(db, entryID)
	if err != nil {
		return nil, err
	}

	credits := make(map[types.Role]string, len(types.Roles))
	for _, role := range types.Roles {
		names, err := namesForRole(db, entryID, role)
		if err != nil {
			return nil, err
		}
		if names != "" {
			credits[role] = names
		}
	}

	descs, err := languageDescriptions(db, entry.Languages)
	if err != nil {
		return nil, err
	}

	typeDesc := ""
	if entry.TypeID != 0 {
		typeDesc, err = lookupDescription(db, "type_categories", entry.TypeID)
		if err != nil {
			return nil, err
		}
	}
	pubDesc := ""
	if entry.PublicationID != 0 {
		pubDesc, err = lookupDescription(db, "publication_categories", entry.PublicationID)
		if err != nil {
			return nil, err
		}
	}

	return &manifest.RenderData{
		Entry:           entry,
		TitleAliases:    aliases,
		Credits:         credits,
		LanguageDescs:   descs,
		TypeDesc:        typeDesc,
		PublicationDesc: pubDesc,
	}, nil
}

// languageDescriptions resolves language tags to their descriptions.
func languageDescriptions(q dbtx, tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	descs := make([]string, 0, len(tags))
	for _, tag := range tags {
		var desc string
		err := q.QueryRow("SELECT description FROM languages WHERE tag = ?", tag).Scan(&desc)
		if err != nil {
			return nil, fmt.Errorf("resolving language %s: %w", tag, err)
		}
		descs = append(descs, desc)
	}
	return descs, nil
}
