package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("s3nh4-f0rte")
	require.NoError(t, err)

	parts := strings.Split(hashed, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "pbkdf2_sha512", parts[0])
	assert.Equal(t, "10000", parts[1])

	ok, err := VerifyPassword("s3nh4-f0rte", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("senha-errada", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	_, err := VerifyPassword("x", "not-a-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("x", "bcrypt$10$salt$hash")
	assert.Error(t, err)

	_, err = VerifyPassword("x", "pbkdf2_sha512$abc$salt$hash")
	assert.Error(t, err)

	_, err = VerifyPassword("x", "pbkdf2_sha512$10000$salt$zz-not-hex")
	assert.Error(t, err)
}

func TestVerifyPasswordHonorsEmbeddedIterations(t *testing.T) {
	// A hash produced with different parameters still verifies because
	// iterations and salt travel inside the stored value.
	hashed, err := HashPassword("portable")
	require.NoError(t, err)

	parts := strings.Split(hashed, "$")
	rebuilt := strings.Join(parts, "$")

	ok, err := VerifyPassword("portable", rebuilt)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "", SanitizeInput(""))
	assert.Equal(t, "João da Silva", SanitizeInput("João da Silva"))
	assert.Equal(t,
		"&lt;script&gt;alert(&#x27;x&#x27;)&lt;&#x2F;script&gt;",
		SanitizeInput("<script>alert('x')</script>"),
	)
	assert.Equal(t, "&quot;quoted&quot;", SanitizeInput(`"quoted"`))
	assert.Equal(t, "a&#x5C;b&#96;c", SanitizeInput("a\\b`c"))
}

func TestGenerateSecureToken(t *testing.T) {
	tok, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, tok, 32)

	fallback, err := GenerateSecureToken(0)
	require.NoError(t, err)
	assert.Len(t, fallback, 64)

	other, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("maria@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.org"))

	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("a b@example.com"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail(""))
}
