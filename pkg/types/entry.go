package types

import "regexp"

// uploadDateRegexp matches the DD/MM/YYYY date format used in the UPLOADED
// manifest line. An empty UploadDate means the date is unknown.
var uploadDateRegexp = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Entry describes one archived package. The zero value of every optional
// field ("" for text, 0 for numbers) means the field is absent; the manifest
// version inference and the renderer both rely on that convention.
type Entry struct {
	EntryID  int64  `json:"entry_id"` // Assigned by the store on insert; immutable.
	Filepath string `json:"filepath"` // Unique, immutable path within the archive.
	FileSize int64  `json:"file_size"`

	// Fields present since manifest version 2.00.
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"` // Legacy; deprecated from version 3.00.
	Year        int      `json:"year,omitempty"`    // Year of release; 0 = unknown.
	Languages   []string `json:"languages,omitempty"`
	TypeID      int64    `json:"type_id,omitempty"` // Reference to a TypeCategory; 0 = unset.
	Subtype     string   `json:"subtype,omitempty"`
	TitleScreen string   `json:"title_screen,omitempty"`
	CheatMode   string   `json:"cheat_mode,omitempty"`
	Protected   string   `json:"protected,omitempty"` // Legacy; deprecated from version 3.00.
	Problems    string   `json:"problems,omitempty"`
	UploadDate  string   `json:"upload_date,omitempty"` // DD/MM/YYYY; "" = unknown.
	Uploader    string   `json:"uploader,omitempty"`
	Comments    string   `json:"comments,omitempty"`

	// Fields introduced in manifest version 3.00.
	OriginalTitle  string `json:"original_title,omitempty"`
	PublicationID  int64  `json:"publication_id,omitempty"` // Reference to a PublicationCategory; 0 = unset.
	PublisherCode  string `json:"publisher_code,omitempty"`
	MemoryRequired int    `json:"memory_required,omitempty"` // In kilobytes; 0 = unset.
	Protection     string `json:"protection,omitempty"`
	RunCommand     string `json:"run_command,omitempty"`

	// Fields introduced in manifest version 3.10.
	Barcode string `json:"barcode,omitempty"`
	DLCode  string `json:"dl_code,omitempty"`
}

// ValidUploadDate reports whether the entry's upload date is either unknown
// or in the DD/MM/YYYY format.
func (e *Entry) ValidUploadDate() bool {
	return e.UploadDate == "" || uploadDateRegexp.MatchString(e.UploadDate)
}

// TitleAlias is an alternate title for an entry. (EntryID, Title) is unique.
type TitleAlias struct {
	EntryID int64  `json:"entry_id"`
	Title   string `json:"title"`
}
