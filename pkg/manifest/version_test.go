package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "2.00", V200.String())
	assert.Equal(t, "3.00", V300.String())
	assert.Equal(t, "3.10", V310.String())
	assert.Equal(t, "INCONSISTENT", Inconsistent.String())
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name  string
		entry types.Entry
		ev    Evidence
		want  Version
	}{
		{
			name:  "empty entry is 2.00",
			entry: types.Entry{Filepath: "games/x.zip"},
			want:  V200,
		},
		{
			name:  "legacy fields alone stay 2.00",
			entry: types.Entry{Title: "Gauntlet", Company: "US Gold", Protected: "Yes", Year: 1986},
			want:  V200,
		},
		{
			name:  "title alias promotes to 3.00",
			entry: types.Entry{Title: "Gauntlet"},
			ev:    Evidence{HasTitleAliases: true},
			want:  V300,
		},
		{
			name:  "original title promotes to 3.00",
			entry: types.Entry{OriginalTitle: "Fres Fighter II Turbo"},
			want:  V300,
		},
		{
			name: "association promotes to 3.00",
			ev:   Evidence{HasAssociations: true},
			want: V300,
		},
		{
			name:  "publication promotes to 3.00",
			entry: types.Entry{PublicationID: 2},
			want:  V300,
		},
		{
			name:  "publisher code promotes to 3.00",
			entry: types.Entry{PublisherCode: "SOFT 184"},
			want:  V300,
		},
		{
			name:  "memory promotes to 3.00",
			entry: types.Entry{MemoryRequired: 128},
			want:  V300,
		},
		{
			name:  "protection promotes to 3.00",
			entry: types.Entry{Protection: "None"},
			want:  V300,
		},
		{
			name:  "run command promotes to 3.00",
			entry: types.Entry{RunCommand: `RUN"DISC`},
			want:  V300,
		},
		{
			name:  "designer credit promotes to 3.10",
			entry: types.Entry{OriginalTitle: "X"},
			ev:    Evidence{HasAssociations: true, HasDesigner: true},
			want:  V310,
		},
		{
			name:  "barcode with a 3.00 trigger promotes to 3.10",
			entry: types.Entry{Protection: "None", Barcode: "5013156300073"},
			want:  V310,
		},
		{
			name:  "dl code with a 3.00 trigger promotes to 3.10",
			entry: types.Entry{MemoryRequired: 64, DLCode: "DL 12345"},
			want:  V310,
		},
		{
			name:  "barcode alone does not promote past 2.00",
			entry: types.Entry{Title: "Gauntlet", Barcode: "5013156300073"},
			want:  V200,
		},
		{
			name:  "legacy company at 3.00 is inconsistent",
			entry: types.Entry{Company: "US Gold", MemoryRequired: 64},
			want:  Inconsistent,
		},
		{
			name:  "legacy protected at 3.10 is inconsistent",
			entry: types.Entry{Protected: "Yes", Protection: "Speedlock", Barcode: "123"},
			want:  Inconsistent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(&tt.entry, tt.ev))
		})
	}
}
