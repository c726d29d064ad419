package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := Generate("secret", "ops", RoleAdmin, "trivia-api", 5)
	require.NoError(t, err)

	sub, role, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)
	assert.Equal(t, RoleAdmin, role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("secret", "ops", RoleAdmin, "trivia-api", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("secret", "ops", RoleAdmin, "trivia-api", -1)
	require.NoError(t, err)

	_, _, err = Parse("secret", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "ops", RoleAdmin, "trivia-api", 5)
	assert.Error(t, err)

	_, _, err = Parse("", "x.y.z")
	assert.Error(t, err)
}
