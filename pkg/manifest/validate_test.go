package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    types.Entry
		ev       Evidence
		pubDesc  string
		wantRule string // "" means valid
	}{
		{
			name:  "plain 2.00 entry passes",
			entry: types.Entry{Title: "Gauntlet", Company: "US Gold"},
		},
		{
			name:     "inconsistent version rejected",
			entry:    types.Entry{Company: "US Gold", MemoryRequired: 64},
			wantRule: "inconsistent version",
		},
		{
			name:    "cheat mode with crack publication passes",
			entry:   types.Entry{CheatMode: "Yes", PublicationID: 3},
			pubDesc: "Cracked commercial",
		},
		{
			name:     "cheat mode with freeware publication rejected",
			entry:    types.Entry{CheatMode: "Yes", PublicationID: 1},
			pubDesc:  "Freeware",
			wantRule: "cheat mode requires a crack publication",
		},
		{
			name:     "cheat mode without publication rejected",
			entry:    types.Entry{CheatMode: "Yes"},
			wantRule: "cheat mode requires a crack publication",
		},
		{
			name:    "cheat mode dash is not affirmed",
			entry:   types.Entry{CheatMode: "-"},
			pubDesc: "",
		},
		{
			name:    "cheat mode No is not affirmed",
			entry:   types.Entry{CheatMode: "No"},
			pubDesc: "",
		},
		{
			name:  "memory 64 passes",
			entry: types.Entry{MemoryRequired: 64},
		},
		{
			name:  "memory 128 passes",
			entry: types.Entry{MemoryRequired: 128},
		},
		{
			name:  "memory 256 passes",
			entry: types.Entry{MemoryRequired: 256},
		},
		{
			name:     "memory 100 rejected",
			entry:    types.Entry{MemoryRequired: 100},
			wantRule: "memory required",
		},
		{
			name:  "well-formed upload date passes",
			entry: types.Entry{UploadDate: "14/10/2002"},
		},
		{
			name:     "malformed upload date rejected",
			entry:    types.Entry{UploadDate: "2002-10-14"},
			wantRule: "upload date format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(&tt.entry, tt.ev, tt.pubDesc)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}
			var verr *types.ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
			assert.Equal(t, tt.wantRule, verr.Rule)
		})
	}
}

func TestCheckAssociationInsert(t *testing.T) {
	t.Run("rejected below 3.00", func(t *testing.T) {
		e := types.Entry{EntryID: 7, Title: "Gauntlet"}
		err := CheckAssociationInsert(&e, false)
		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("title aliases count as evidence", func(t *testing.T) {
		e := types.Entry{EntryID: 7, Title: "Gauntlet"}
		assert.NoError(t, CheckAssociationInsert(&e, true))
	})

	t.Run("3.00 field state passes", func(t *testing.T) {
		e := types.Entry{EntryID: 7, MemoryRequired: 64}
		assert.NoError(t, CheckAssociationInsert(&e, false))
	})
}
