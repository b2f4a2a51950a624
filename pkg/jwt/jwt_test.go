package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConservaClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "supermercado-test", pkgjwt.Claims{
		SessionID: "sid-1", UserID: 7, Username: "ana", Role: "admin",
	}, time.Hour)
	require.NoError(t, err)

	c, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", c.SessionID)
	assert.Equal(t, int64(7), c.UserID)
	assert.Equal(t, "ana", c.Username)
	assert.Equal(t, "admin", c.Role)
	assert.Equal(t, "7", c.Subject)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "x", pkgjwt.Claims{SessionID: "s", UserID: 1}, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "x", pkgjwt.Claims{SessionID: "s", UserID: 1}, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "x", pkgjwt.Claims{SessionID: "s"}, time.Hour)
	assert.Error(t, err)
}
