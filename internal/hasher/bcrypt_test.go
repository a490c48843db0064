package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "pw123")

	assert.True(t, h.Verify("pw123", digest))
	assert.False(t, h.Verify("pw124", digest))
}

func TestBcrypt_HashesAreSalted(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("pw123")
	require.NoError(t, err)
	second, err := h.Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("pw123", first))
	assert.True(t, h.Verify("pw123", second))
}

func TestBcrypt_Verify_MalformedDigestFailsClosed(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	assert.False(t, h.Verify("pw123", ""))
	assert.False(t, h.Verify("pw123", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("pw123", strings.Repeat("$", 60)))
}

func TestNewBcrypt_CostOutOfRangeUsesDefault(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(100).cost)
	assert.Equal(t, 10, NewBcrypt(10).cost)
}
