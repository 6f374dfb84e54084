package usecases

import (
	"context"

	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type ListUsersQuery struct {
	// Status filters by approval state when set. Empty means all users.
	Status string
}

// ListUsersUseCase lists accounts for the admin panel, newest first.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*userusecases.UserResult, error) {
	var statusFilter *uservo.ApprovalStatus
	if query.Status != "" {
		status, err := uservo.ParseApprovalStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		statusFilter = &status
	}

	accounts, err := uc.userRepo.List(ctx, statusFilter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	results := make([]*userusecases.UserResult, 0, len(accounts))
	for _, account := range accounts {
		results = append(results, userusecases.NewUserResult(account))
	}
	return results, nil
}
