package usecases

import (
	"context"

	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]*userusecases.UserResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*userusecases.UserResult, error)
}

type ChangeApprovalExecutor interface {
	Execute(ctx context.Context, cmd ChangeApprovalCommand) (*userusecases.UserResult, error)
}

type BulkChangeApprovalExecutor interface {
	Execute(ctx context.Context, cmd BulkChangeApprovalCommand) (*BulkChangeApprovalResult, error)
}
