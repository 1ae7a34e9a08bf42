package manifest

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// allowedMemory is the set of valid MEMORY REQUIRED values in kilobytes.
var allowedMemory = map[int]bool{64: true, 128: true, 256: true}

// ValidateEntry enforces the cross-field rules on an entry insert or update.
// pubDesc is the description of the entry's publication category ("" when no
// category is set). It returns a ValidationError naming the failed rule; the
// caller rolls back the surrounding transaction so no partial state commits.
func ValidateEntry(e *types.Entry, ev Evidence, pubDesc string) error {
	if v := Infer(e, ev); v == Inconsistent {
		return &types.ValidationError{
			Rule:   "inconsistent version",
			Detail: "legacy COMPANY/PROTECTED fields populated alongside version 3.00 fields",
		}
	}

	if cheatModeSet(e.CheatMode) && !crackVariant(pubDesc) {
		return &types.ValidationError{
			Rule:   "cheat mode requires a crack publication",
			Detail: fmt.Sprintf("cheat mode %q with publication %q", e.CheatMode, pubDesc),
		}
	}

	if e.MemoryRequired != 0 && !allowedMemory[e.MemoryRequired] {
		return &types.ValidationError{
			Rule:   "memory required",
			Detail: fmt.Sprintf("%dK is not one of 64K, 128K or 256K", e.MemoryRequired),
		}
	}

	if !e.ValidUploadDate() {
		return &types.ValidationError{
			Rule:   "upload date format",
			Detail: fmt.Sprintf("%q is not DD/MM/YYYY", e.UploadDate),
		}
	}

	return nil
}

// CheckAssociationInsert enforces the precondition for adding a role credit:
// the entry's version, computed from field state with association evidence
// excluded (association existence would make the check circular), must be at
// least 3.00.
func CheckAssociationInsert(e *types.Entry, hasTitleAliases bool) error {
	ev := Evidence{HasTitleAliases: hasTitleAliases}
	if v := Infer(e, ev); v < V300 {
		return &types.ValidationError{
			Rule:   "associations require version 3.00",
			Detail: fmt.Sprintf("entry %d field state infers version %s", e.EntryID, v),
		}
	}
	return nil
}

// cheatModeSet reports whether the cheat-mode flag counts as affirmed.
// "-" and "No" are the historical spellings of "not applicable" and "no".
func cheatModeSet(v string) bool {
	return v != "" && v != "-" && !strings.EqualFold(v, "No")
}

// crackVariant reports whether a publication category description names a
// crack release (e.g. "Crack", "Cracked commercial").
func crackVariant(pubDesc string) bool {
	return strings.Contains(strings.ToLower(pubDesc), "crack")
}
