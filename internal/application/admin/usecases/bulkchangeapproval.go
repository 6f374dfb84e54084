package usecases

import (
	"context"

	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type BulkChangeApprovalCommand struct {
	UserIDs []uint
	Target  uservo.ApprovalStatus
	Reason  string
}

type BulkChangeApprovalResult struct {
	Changed []*userusecases.UserResult
	Count   int
}

// BulkChangeApprovalUseCase applies an approval transition to every pending
// account among the given ids. Accounts already decided are skipped silently;
// only the rows actually changed are reported back.
type BulkChangeApprovalUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewBulkChangeApprovalUseCase(userRepo user.Repository, logger logger.Interface) *BulkChangeApprovalUseCase {
	return &BulkChangeApprovalUseCase{userRepo: userRepo, logger: logger}
}

func (uc *BulkChangeApprovalUseCase) Execute(ctx context.Context, cmd BulkChangeApprovalCommand) (*BulkChangeApprovalResult, error) {
	if len(cmd.UserIDs) == 0 {
		return nil, errors.NewBadRequestError("ids must be a non-empty list")
	}
	if cmd.Target != uservo.StatusApproved && cmd.Target != uservo.StatusRejected {
		return nil, errors.NewValidationError("target status must be approved or rejected")
	}

	changed, err := uc.userRepo.BulkUpdateStatus(ctx, cmd.UserIDs, cmd.Target)
	if err != nil {
		uc.logger.Errorw("bulk approval transition failed", "target", cmd.Target.String(), "error", err)
		return nil, err
	}

	results := make([]*userusecases.UserResult, 0, len(changed))
	for _, account := range changed {
		results = append(results, userusecases.NewUserResult(account))
	}

	fields := []interface{}{"target", cmd.Target.String(), "requested", len(cmd.UserIDs), "changed", len(results)}
	if cmd.Reason != "" {
		fields = append(fields, "reason", cmd.Reason)
	}
	uc.logger.Infow("bulk approval transition applied", fields...)

	return &BulkChangeApprovalResult{Changed: results, Count: len(results)}, nil
}
