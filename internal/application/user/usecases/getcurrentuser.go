package usecases

import (
	"context"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

// GetCurrentUserUseCase resolves the authenticated user's own profile.
type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*UserResult, error) {
	account, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return NewUserResult(account), nil
}
