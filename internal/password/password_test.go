package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, Verify("secret1", hash))
	assert.False(t, Verify("secret2", hash))
}

func TestHashIsSaltedPerCall(t *testing.T) {
	first, err := Hash("same-password")
	assert.NoError(t, err)
	second, err := Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("whatever", ""))
	assert.False(t, Verify("whatever", "not-a-bcrypt-hash"))
	assert.False(t, Verify("whatever", "$2a$10$tooshort"))
}
