package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)

	assert.True(t, Verify(hash, "secret123"))
	assert.False(t, Verify(hash, "wrong"))
	assert.False(t, Verify("not-a-hash", "secret123"))
}
