package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{DataDir: "/tmp/catalog"}.Validate())
	assert.ErrorIs(t, Config{}.Validate(), ErrDataDirEmpty)
}
