package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguageTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    string
		wantErr bool
	}{
		{name: "plain language", tag: "en", want: "en"},
		{name: "language with country", tag: "pt-BR", want: "pt-BR"},
		{name: "casing folded", tag: "EN-us", want: "en-US"},
		{name: "all upper folded", tag: "FR", want: "fr"},
		{name: "three letter language rejected", tag: "eng", wantErr: true},
		{name: "one letter country rejected", tag: "en-U", wantErr: true},
		{name: "trailing hyphen rejected", tag: "en-", wantErr: true},
		{name: "empty rejected", tag: "", wantErr: true},
		{name: "digits rejected", tag: "e1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLanguageTag(tt.tag)
			if tt.wantErr {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
