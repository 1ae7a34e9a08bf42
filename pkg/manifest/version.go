package manifest

import "github.com/mesh-intelligence/nvgcat/pkg/types"

// Version is a manifest schema version. Inconsistent marks an entry whose
// populated fields cannot all belong to one version.
type Version int

const (
	Inconsistent Version = iota
	V200                 // original fixed layout
	V300                 // extended layout with credits and publication data
	V310                 // V300 plus designer credits, barcode and DL code
)

// String formats the version to two decimal places as it appears in the
// manifest banner.
func (v Version) String() string {
	switch v {
	case V200:
		return "2.00"
	case V300:
		return "3.00"
	case V310:
		return "3.10"
	default:
		return "INCONSISTENT"
	}
}

// Evidence carries the facts about an entry that live outside its own row:
// whether title aliases exist and whether role associations exist, including
// a designer credit specifically.
type Evidence struct {
	HasTitleAliases bool
	HasAssociations bool
	HasDesigner     bool
}

// Infer determines which manifest version applies to an entry. The base is
// 2.00; any 3.00-era field promotes to 3.00, and any 3.10-era field promotes
// further to 3.10. An entry at 3.00 or above that still populates a legacy
// 2.00-only field (COMPANY or PROTECTED) is Inconsistent.
func Infer(e *types.Entry, ev Evidence) Version {
	v := V200

	if ev.HasTitleAliases || e.OriginalTitle != "" || ev.HasAssociations ||
		e.PublicationID != 0 || e.PublisherCode != "" || e.MemoryRequired != 0 ||
		e.Protection != "" || e.RunCommand != "" {
		v = V300
	}

	if v >= V300 && (ev.HasDesigner || e.Barcode != "" || e.DLCode != "") {
		v = V310
	}

	if v >= V300 && (e.Company != "" || e.Protected != "") {
		return Inconsistent
	}
	return v
}
