package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUploadDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{date: "", want: true}, // unknown date is valid
		{date: "14/10/2002", want: true},
		{date: "01/01/1999", want: true},
		{date: "2002-10-14", want: false},
		{date: "14/10/02", want: false},
		{date: "1/1/2002", want: false},
		{date: "14/10/2002 ", want: false},
	}

	for _, tt := range tests {
		e := Entry{UploadDate: tt.date}
		assert.Equal(t, tt.want, e.ValidUploadDate(), "date %q", tt.date)
	}
}

func TestIdentityIsRoot(t *testing.T) {
	root := Identity{IdentityID: 1, Name: "Ocean"}
	assert.True(t, root.IsRoot())

	target := int64(1)
	alias := Identity{IdentityID: 2, Name: "Ocean Software Ltd", AliasOf: &target}
	assert.False(t, alias.IsRoot())
}
