package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/hotel-pos/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "alice", "staff", "hotel-pos-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "staff", claims.Role)
	assert.NotEmpty(t, claims.TokenID(), "cada token debe llevar jti")
	assert.False(t, claims.ExpiresAtTime().IsZero())
}

func TestGenerate_JTIUnico(t *testing.T) {
	a, err := pkgjwt.Generate(testSecret, testUserID, "alice", "staff", "x", 60)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, testUserID, "alice", "staff", "x", 60)
	require.NoError(t, err)

	ca, _ := pkgjwt.Parse(testSecret, a)
	cb, _ := pkgjwt.Parse(testSecret, b)
	assert.NotEqual(t, ca.TokenID(), cb.TokenID())
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", "admin", "x", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", "admin", "x", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", "admin", "x", 60)
	assert.Error(t, err)
}
