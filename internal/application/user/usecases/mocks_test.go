package usecases

import (
	"context"
	"io"

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

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
}

func (m *mockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	return "token", nil
}

type mockDocumentStore struct {
	StoreFunc  func(ctx context.Context, originalName string, body io.Reader, contentType string, size int64) (string, string, error)
	RemoveFunc func(ctx context.Context, key string) error
}

func (m *mockDocumentStore) Store(ctx context.Context, originalName string, body io.Reader, contentType string, size int64) (string, string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, originalName, body, contentType, size)
	}
	return "https://files.example.com/" + originalName, "signup-documents/" + originalName, nil
}

func (m *mockDocumentStore) Remove(ctx context.Context, key string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, key)
	}
	return nil
}
