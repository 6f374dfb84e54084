package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
)

func TestJWTService_GenerateVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 1)

	token, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", 1)

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)

	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeTokenInvalid, authErr.Type)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 1).Generate(42)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 1).Verify(token)
	require.Error(t, err)

	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeTokenInvalid, authErr.Type)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)

	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeTokenExpired, authErr.Type)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	require.NoError(t, hasher.Verify("secret123", hash))
	require.Error(t, hasher.Verify("wrong", hash))
	require.Error(t, hasher.Verify("secret123", "not-a-hash"))
}
