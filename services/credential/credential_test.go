package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hashed, err := Hash("Secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1", hashed)

	assert.True(t, Verify("Secret1", hashed))
	assert.False(t, Verify("secret1", hashed))
	assert.False(t, Verify("", hashed))
}

func TestHashIsSaltedPerCall(t *testing.T) {
	first, err := Hash("Secret1")
	require.NoError(t, err)
	second, err := Hash("Secret1")
	require.NoError(t, err)

	// Same plaintext, different salt, different output; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("Secret1", first))
	assert.True(t, Verify("Secret1", second))
}
