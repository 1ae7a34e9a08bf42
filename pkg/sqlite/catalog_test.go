package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

func TestNewCatalog(t *testing.T) {
	cat := NewCatalog()
	require.NotNil(t, cat)

	require.NoError(t, cat.Attach(types.Config{DataDir: t.TempDir()}))
	defer cat.Detach()

	id, err := cat.CatalogID()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
