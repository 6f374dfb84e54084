package usecases

import (
	"context"
	"strings"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *UserResult
}

// LoginUseCase verifies credentials and issues a token. An unknown email and
// a wrong password produce the same error so callers cannot enumerate
// accounts.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("Email and password are required")
	}

	account, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to look up user for login", "email", email, "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if !account.IsApproved() {
		return nil, errors.NewPendingApprovalError(account.Status().String())
	}

	token, err := uc.tokens.Generate(account.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "email", account.Email())

	return &LoginResult{
		Token: token,
		User:  NewUserResult(account),
	}, nil
}
