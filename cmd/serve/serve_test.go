package serve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCommandMetadata(t *testing.T) {
	assert.Equal(t, "serve", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.Run)
}
