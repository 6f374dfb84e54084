package usecases

import (
	"context"

	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type ChangeApprovalCommand struct {
	UserID uint
	Target uservo.ApprovalStatus
	// Reason is recorded in the log on rejections. It is not persisted.
	Reason string
}

// ChangeApprovalUseCase applies a single approve or reject transition.
// Approving an already-approved account is an error, not a no-op, and the
// same for rejections; the opposite transition is always allowed.
type ChangeApprovalUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeApprovalUseCase(userRepo user.Repository, logger logger.Interface) *ChangeApprovalUseCase {
	return &ChangeApprovalUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ChangeApprovalUseCase) Execute(ctx context.Context, cmd ChangeApprovalCommand) (*userusecases.UserResult, error) {
	account, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	switch cmd.Target {
	case uservo.StatusApproved:
		if err := account.Approve(); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	case uservo.StatusRejected:
		if err := account.Reject(); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	default:
		return nil, errors.NewValidationError("target status must be approved or rejected")
	}

	if err := uc.userRepo.UpdateStatus(ctx, account); err != nil {
		uc.logger.Errorw("failed to persist approval transition", "user_id", cmd.UserID, "target", cmd.Target.String(), "error", err)
		return nil, err
	}

	fields := []interface{}{"user_id", account.ID(), "email", account.Email(), "status", account.Status().String()}
	if cmd.Reason != "" {
		fields = append(fields, "reason", cmd.Reason)
	}
	uc.logger.Infow("user approval status changed", fields...)

	return userusecases.NewUserResult(account), nil
}
