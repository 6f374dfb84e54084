package usecases

import (
	"context"

	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

// GetUserUseCase resolves a single account for the admin panel.
type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*userusecases.UserResult, error) {
	account, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return userusecases.NewUserResult(account), nil
}
