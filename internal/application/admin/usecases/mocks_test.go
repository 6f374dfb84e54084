package usecases

import (
	"context"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*user.User, error)
	ListFunc             func(ctx context.Context, status *uservo.ApprovalStatus) ([]*user.User, error)
	UpdateStatusFunc     func(ctx context.Context, u *user.User) error
	BulkUpdateStatusFunc func(ctx context.Context, ids []uint, target uservo.ApprovalStatus) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, status *uservo.ApprovalStatus) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateStatus(ctx context.Context, u *user.User) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) BulkUpdateStatus(ctx context.Context, ids []uint, target uservo.ApprovalStatus) ([]*user.User, error) {
	if m.BulkUpdateStatusFunc != nil {
		return m.BulkUpdateStatusFunc(ctx, ids, target)
	}
	return nil, nil
}
