package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

func approvedUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Jane Doe", "jane@example.com", "stored-hash", "Acme", "", "doc.pdf")
	require.NoError(t, err)
	require.NoError(t, u.Approve())
	require.NoError(t, u.SetID(7))
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	account := approvedUser(t)
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "jane@example.com", email)
			return account, nil
		},
	}
	tokens := &mockTokenService{
		GenerateFunc: func(userID uint) (string, error) {
			assert.Equal(t, uint(7), userID)
			return "signed-token", nil
		},
	}

	uc := NewLoginUseCase(repo, &mockPasswordHasher{}, tokens, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Email: " Jane@Example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, uint(7), result.User.ID)
}

func TestLoginUseCase_Execute_IndistinguishableCredentialFailures(t *testing.T) {
	unknownRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("User not found")
		},
	}
	knownRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return approvedUser(t), nil
		},
	}
	wrongPassword := &mockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.NewUnauthorizedError("mismatch")
		},
	}

	ucUnknown := NewLoginUseCase(unknownRepo, &mockPasswordHasher{}, &mockTokenService{}, logger.NewLogger())
	ucWrongPass := NewLoginUseCase(knownRepo, wrongPassword, &mockTokenService{}, logger.NewLogger())

	_, errUnknown := ucUnknown.Execute(context.Background(), LoginCommand{Email: "ghost@example.com", Password: "whatever"})
	_, errWrongPass := ucWrongPass.Execute(context.Background(), LoginCommand{Email: "jane@example.com", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error(),
		"unknown email and wrong password must be indistinguishable")
}

func TestLoginUseCase_Execute_PendingApproval(t *testing.T) {
	pending, err := user.NewUser("Jane Doe", "jane@example.com", "stored-hash", "Acme", "", "doc.pdf")
	require.NoError(t, err)
	require.NoError(t, pending.SetID(9))

	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return pending, nil
		},
	}
	issued := false
	tokens := &mockTokenService{
		GenerateFunc: func(userID uint) (string, error) {
			issued = true
			return "token", nil
		},
	}

	uc := NewLoginUseCase(repo, &mockPasswordHasher{}, tokens, logger.NewLogger())

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "jane@example.com", Password: "secret123"})
	require.Error(t, err)

	authErr := errors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Contains(t, authErr.Error(), "pending approval")
	assert.False(t, issued, "a pending user must not receive a token")
}

func TestLoginUseCase_Execute_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenService{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
