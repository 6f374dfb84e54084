package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

func pendingUser(t *testing.T, id uint) *user.User {
	t.Helper()
	u, err := user.NewUser("Jane Doe", "jane@example.com", "hash", "Acme", "", "doc.pdf")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestChangeApprovalUseCase_Execute_Approve(t *testing.T) {
	account := pendingUser(t, 5)
	var persisted *user.User
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return account, nil
		},
		UpdateStatusFunc: func(ctx context.Context, u *user.User) error {
			persisted = u
			return nil
		},
	}

	uc := NewChangeApprovalUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeApprovalCommand{UserID: 5, Target: uservo.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, "approved", result.ApprovalStatus)
	require.NotNil(t, persisted)
	assert.True(t, persisted.IsApproved())
}

func TestChangeApprovalUseCase_Execute_AlreadyApproved(t *testing.T) {
	account := pendingUser(t, 5)
	require.NoError(t, account.Approve())

	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return account, nil
		},
	}
	uc := NewChangeApprovalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeApprovalCommand{UserID: 5, Target: uservo.StatusApproved})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestChangeApprovalUseCase_Execute_AlreadyRejected(t *testing.T) {
	account := pendingUser(t, 5)
	require.NoError(t, account.Reject())

	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return account, nil
		},
	}
	uc := NewChangeApprovalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeApprovalCommand{UserID: 5, Target: uservo.StatusRejected})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestChangeApprovalUseCase_Execute_RejectThenApprove(t *testing.T) {
	account := pendingUser(t, 5)
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return account, nil
		},
	}
	uc := NewChangeApprovalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeApprovalCommand{UserID: 5, Target: uservo.StatusRejected, Reason: "incomplete documents"})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), ChangeApprovalCommand{UserID: 5, Target: uservo.StatusApproved})
	require.NoError(t, err, "a rejected account may still be approved")
	assert.Equal(t, "approved", result.ApprovalStatus)
}

func TestChangeApprovalUseCase_Execute_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("User not found")
		},
	}
	uc := NewChangeApprovalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeApprovalCommand{UserID: 99, Target: uservo.StatusApproved})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestBulkChangeApprovalUseCase_Execute(t *testing.T) {
	t.Run("empty id list is rejected", func(t *testing.T) {
		uc := NewBulkChangeApprovalUseCase(&mockUserRepository{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), BulkChangeApprovalCommand{UserIDs: nil, Target: uservo.StatusApproved})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("reports only rows actually changed", func(t *testing.T) {
		changed := pendingUser(t, 2)
		require.NoError(t, changed.Approve())

		repo := &mockUserRepository{
			BulkUpdateStatusFunc: func(ctx context.Context, ids []uint, target uservo.ApprovalStatus) ([]*user.User, error) {
				assert.Equal(t, []uint{1, 2, 3}, ids)
				assert.Equal(t, uservo.StatusApproved, target)
				// only id 2 was still pending
				return []*user.User{changed}, nil
			},
		}
		uc := NewBulkChangeApprovalUseCase(repo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), BulkChangeApprovalCommand{
			UserIDs: []uint{1, 2, 3},
			Target:  uservo.StatusApproved,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
		require.Len(t, result.Changed, 1)
		assert.Equal(t, uint(2), result.Changed[0].ID)
	})
}
