package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("p@ssw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "p@ssw0rd", hash)

	assert.True(t, CheckPasswordHash("p@ssw0rd", hash))
	assert.False(t, CheckPasswordHash("p@ssword", hash))
	assert.False(t, CheckPasswordHash("p@ssw0rd", "not-a-hash"))
}
