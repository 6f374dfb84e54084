package mappers

import (
	"fmt"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/models"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
)

type UserMapper struct{}

func NewUserMapper() UserMapper {
	return UserMapper{}
}

func (UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:             u.ID(),
		Name:           u.Name(),
		Email:          u.Email(),
		PasswordHash:   u.PasswordHash(),
		CompanyName:    u.CompanyName(),
		Role:           u.Role().String(),
		ApprovalStatus: u.Status().String(),
		FileURL:        u.FileURL(),
		FileName:       u.FileName(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}

func (UserMapper) ToDomain(m *models.UserModel) (*user.User, error) {
	role := auth.UserRole(m.Role)
	status := uservo.ApprovalStatus(m.ApprovalStatus)

	u, err := user.Reconstruct(
		m.ID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.CompanyName,
		role,
		status,
		m.FileURL,
		m.FileName,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map user %d: %w", m.ID, err)
	}
	return u, nil
}
