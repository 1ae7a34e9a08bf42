// Reference table tests: languages, type categories, publication categories.
package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

func TestLanguages(t *testing.T) {
	c := setupCatalog(t)

	tag, err := c.InsertLanguage("EN", "English")
	require.NoError(t, err)
	assert.Equal(t, "en", tag, "tag casing normalized")

	tag, err = c.InsertLanguage("pt-br", "Portuguese (Brazilian)")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", tag)

	langs, err := c.Languages()
	require.NoError(t, err)
	assert.Equal(t, []types.Language{
		{Tag: "en", Description: "English"},
		{Tag: "pt-BR", Description: "Portuguese (Brazilian)"},
	}, langs)

	t.Run("duplicate tag rejected", func(t *testing.T) {
		_, err := c.InsertLanguage("en", "English again")
		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "duplicate language tag", verr.Rule)
	})

	t.Run("malformed tag rejected", func(t *testing.T) {
		_, err := c.InsertLanguage("english", "English")
		var verr *types.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("update description", func(t *testing.T) {
		require.NoError(t, c.UpdateLanguage("EN", "English (UK)"))
		langs, err := c.Languages()
		require.NoError(t, err)
		assert.Equal(t, "English (UK)", langs[0].Description)
	})

	t.Run("update unknown tag", func(t *testing.T) {
		err := c.UpdateLanguage("de", "German")
		var nferr *types.NotFoundError
		assert.True(t, errors.As(err, &nferr))
	})

	t.Run("delete in-use tag rejected", func(t *testing.T) {
		_, err := c.InsertEntry(&types.Entry{Filepath: "games/en.zip", Languages: []string{"en"}})
		require.NoError(t, err)

		err = c.DeleteLanguage("en")
		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "language tag in use", verr.Rule)
	})

	t.Run("delete unused tag", func(t *testing.T) {
		require.NoError(t, c.DeleteLanguage("pt-BR"))
		err := c.DeleteLanguage("pt-BR")
		var nferr *types.NotFoundError
		assert.True(t, errors.As(err, &nferr))
	})
}

func TestCategories(t *testing.T) {
	c := setupCatalog(t)

	t.Run("auto-assigned ids", func(t *testing.T) {
		first, err := c.InsertTypeCategory("Arcade game", 0)
		require.NoError(t, err)
		second, err := c.InsertTypeCategory("Utility", 0)
		require.NoError(t, err)
		assert.Greater(t, second, first)
	})

	t.Run("explicit id", func(t *testing.T) {
		id, err := c.InsertPublicationCategory("Crack", 40)
		require.NoError(t, err)
		assert.Equal(t, int64(40), id)
	})

	t.Run("listing in id order", func(t *testing.T) {
		_, err := c.InsertPublicationCategory("Commercial", 1)
		require.NoError(t, err)

		pubs, err := c.PublicationCategories()
		require.NoError(t, err)
		require.Len(t, pubs, 2)
		assert.Equal(t, "Commercial", pubs[0].Description)
		assert.Equal(t, "Crack", pubs[1].Description)

		typesList, err := c.TypeCategories()
		require.NoError(t, err)
		assert.Len(t, typesList, 2)
	})

	t.Run("empty description rejected", func(t *testing.T) {
		_, err := c.InsertTypeCategory("", 0)
		var verr *types.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}
