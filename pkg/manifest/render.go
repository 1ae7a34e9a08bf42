package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// Separator rule widths. Historical manifests drew a 71-dash rule around the
// 2.00 layout and a 79-dash rule around the 3.00/3.10 layout.
const (
	ruleWidthV2 = 71
	ruleWidthV3 = 79
)

// bannerFormat is the manifest header line. The first verb is the platform
// token (CPC or PCW), the second the version to two decimal places.
const bannerFormat = "** AMSTRAD %s SOFTWARE AT FTP.NVG.NTNU.NO : file_id.diz FILE V %s **"

// RenderData is a fully resolved entry: the row itself plus everything the
// renderer needs that lives in other tables, already joined and ordered.
type RenderData struct {
	Entry        *types.Entry
	TitleAliases []string // ordered alternate titles

	// Credits holds, per role, the associated display names joined with
	// ", " in index order. Roles with no credits are absent or empty.
	Credits map[types.Role]string

	LanguageDescs   []string // descriptions of the entry's language tags
	TypeDesc        string   // description of the entry's type category
	PublicationDesc string   // description of the publication category
}

// evidence derives version-inference evidence from the resolved data.
func (d *RenderData) evidence() Evidence {
	ev := Evidence{HasTitleAliases: len(d.TitleAliases) > 0}
	for role, names := range d.Credits {
		if names == "" {
			continue
		}
		ev.HasAssociations = true
		if role == types.RoleDesigner {
			ev.HasDesigner = true
		}
	}
	return ev
}

// Render produces the canonical manifest text for a resolved entry. It fails
// with a RenderError when the inferred version is inconsistent; the renderer
// never guesses a layout.
func Render(d RenderData) (string, error) {
	e := d.Entry
	v := Infer(e, d.evidence())
	if v == Inconsistent {
		return "", &types.RenderError{
			EntryID: e.EntryID,
			Reason:  "inferred manifest version is inconsistent",
		}
	}

	banner := fmt.Sprintf(bannerFormat, platformToken(e.Filepath), v)
	if v < V300 {
		return renderV2(d, banner), nil
	}
	return renderV3(d, v, banner), nil
}

// platformToken derives the banner platform from the archive path prefix.
// Everything outside the pcw/ tree is CPC software.
func platformToken(filepath string) string {
	if filepath == "pcw" || strings.HasPrefix(filepath, "pcw/") {
		return "PCW"
	}
	return "CPC"
}

// fieldLine lays out one manifest line: the label (with its colon) padded to
// sixteen columns, one space, then the value.
func fieldLine(label, value string) string {
	return fmt.Sprintf("%-16s %s", label+":", value)
}

// uploadedValue formats the UPLOADED line value. Unknown date and unknown
// uploader each render as "?".
func uploadedValue(e *types.Entry) string {
	date := e.UploadDate
	if date == "" {
		date = "?"
	}
	uploader := e.Uploader
	if uploader == "" {
		uploader = "?"
	}
	return date + " by " + uploader
}

// languageValue joins the language descriptions alphabetically with ", ".
func languageValue(descs []string) string {
	sorted := make([]string, len(descs))
	copy(sorted, descs)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// renderV2 emits the fixed 2.00 layout: every line present, absent values
// rendered as "?" for COMPANY, YEAR, TYPE and COMMENTS and as "-" elsewhere.
func renderV2(d RenderData, banner string) string {
	e := d.Entry

	unknown := func(v string) string { // "?" placeholder fields
		if v == "" {
			return "?"
		}
		return v
	}
	absent := func(v string) string { // "-" placeholder fields
		if v == "" {
			return "-"
		}
		return v
	}

	year := ""
	if e.Year != 0 {
		year = fmt.Sprintf("%d", e.Year)
	}

	rule := strings.Repeat("-", ruleWidthV2)
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(fieldLine("TITLE", absent(e.Title)) + "\n")
	b.WriteString(fieldLine("COMPANY", unknown(e.Company)) + "\n")
	b.WriteString(fieldLine("YEAR", unknown(year)) + "\n")
	b.WriteString(fieldLine("LANGUAGE", absent(languageValue(d.LanguageDescs))) + "\n")
	b.WriteString(fieldLine("TYPE", unknown(d.TypeDesc)) + "\n")
	b.WriteString(fieldLine("SUBTYPE", absent(e.Subtype)) + "\n")
	b.WriteString(fieldLine("TITLE SCREEN", absent(e.TitleScreen)) + "\n")
	b.WriteString(fieldLine("CHEAT MODE", absent(e.CheatMode)) + "\n")
	b.WriteString(fieldLine("PROTECTED", absent(e.Protected)) + "\n")
	b.WriteString(fieldLine("PROBLEMS", absent(e.Problems)) + "\n")
	b.WriteString(fieldLine("UPLOADED", uploadedValue(e)) + "\n")
	b.WriteString(fieldLine("COMMENTS", unknown(e.Comments)) + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// renderV3 emits the 3.00/3.10 layout: only populated lines appear (UPLOADED
// always does), 3.10-era lines only at version 3.10, banner centered over
// the 79-dash rule.
func renderV3(d RenderData, v Version, banner string) string {
	e := d.Entry

	year := ""
	if e.Year != 0 {
		year = fmt.Sprintf("%d", e.Year)
	}
	memory := ""
	if e.MemoryRequired != 0 {
		memory = fmt.Sprintf("%dK", e.MemoryRequired)
	}

	lines := []struct {
		label      string
		value      string
		minVersion Version
		always     bool
	}{
		{label: "TITLE", value: e.Title, minVersion: V300},
		{label: "ALSO KNOWN AS", value: strings.Join(d.TitleAliases, "; "), minVersion: V300},
		{label: "ORIGINAL TITLE", value: e.OriginalTitle, minVersion: V300},
		{label: "YEAR", value: year, minVersion: V300},
		{label: "PUBLISHER", value: d.Credits[types.RolePublisher], minVersion: V300},
		{label: "RE-RELEASED BY", value: d.Credits[types.RoleReReleasedBy], minVersion: V300},
		{label: "PUBLICATION", value: d.PublicationDesc, minVersion: V300},
		{label: "PUBLISHER CODE", value: e.PublisherCode, minVersion: V300},
		{label: "BARCODE", value: e.Barcode, minVersion: V310},
		{label: "DL CODE", value: e.DLCode, minVersion: V310},
		{label: "CRACKER", value: d.Credits[types.RoleCracker], minVersion: V300},
		{label: "DEVELOPER", value: d.Credits[types.RoleDeveloper], minVersion: V300},
		{label: "AUTHOR", value: d.Credits[types.RoleAuthor], minVersion: V300},
		{label: "DESIGNER", value: d.Credits[types.RoleDesigner], minVersion: V310},
		{label: "ARTIST", value: d.Credits[types.RoleArtist], minVersion: V300},
		{label: "MUSICIAN", value: d.Credits[types.RoleMusician], minVersion: V300},
		{label: "LANGUAGE", value: languageValue(d.LanguageDescs), minVersion: V300},
		{label: "MEMORY REQUIRED", value: memory, minVersion: V300},
		{label: "TYPE", value: d.TypeDesc, minVersion: V300},
		{label: "SUBTYPE", value: e.Subtype, minVersion: V300},
		{label: "TITLE SCREEN", value: e.TitleScreen, minVersion: V300},
		{label: "CHEAT MODE", value: e.CheatMode, minVersion: V300},
		{label: "PROTECTION", value: e.Protection, minVersion: V300},
		{label: "PROBLEMS", value: e.Problems, minVersion: V300},
		{label: "RUN COMMAND", value: e.RunCommand, minVersion: V300},
		{label: "UPLOADED", value: uploadedValue(e), minVersion: V300, always: true},
		{label: "COMMENTS", value: e.Comments, minVersion: V300},
	}

	rule := strings.Repeat("-", ruleWidthV3)
	indent := strings.Repeat(" ", (ruleWidthV3-len(banner))/2)

	var b strings.Builder
	b.WriteString(indent + banner + "\n")
	b.WriteString(rule + "\n")
	for _, l := range lines {
		if l.minVersion > v {
			continue
		}
		if l.value == "" && !l.always {
			continue
		}
		b.WriteString(fieldLine(l.label, l.value) + "\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}
