package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("Abcd1234")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcd1234", hash)

	assert.True(t, CheckPassword(hash, "Abcd1234"))
	assert.False(t, CheckPassword(hash, "abcd1234"))
	assert.False(t, CheckPassword("not-a-hash", "Abcd1234"))

	// salted
	again, _ := HashPassword("Abcd1234")
	assert.NotEqual(t, hash, again)
}
