package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/mappers"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/models"
	apperrors "github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

// UserRepository implements the user repository interface on top of GORM.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts a new user and writes the generated ID back to the entity.
func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Email already registered")
		}
		r.logger.Errorw("failed to create user in database", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

// FindByID retrieves a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByEmail retrieves a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		r.logger.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns users newest first, optionally filtered by approval status.
func (r *UserRepository) List(ctx context.Context, status *uservo.ApprovalStatus) ([]*user.User, error) {
	var rows []models.UserModel

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("approval_status = ?", status.String())
	}

	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, nil
}

// UpdateStatus persists the approval state of the aggregate.
func (r *UserRepository) UpdateStatus(ctx context.Context, entity *user.User) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"approval_status": entity.Status().String(),
			"updated_at":      entity.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user status", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update user status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}

	r.logger.Infow("user status updated", "id", entity.ID(), "status", entity.Status().String())
	return nil
}

// BulkUpdateStatus transitions every listed pending user to the target status
// and returns the users actually changed. Rows that are missing or already
// decided are skipped silently.
func (r *UserRepository) BulkUpdateStatus(ctx context.Context, ids []uint, target uservo.ApprovalStatus) ([]*user.User, error) {
	var changedIDs []uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the pending subset first so a concurrent single approval
		// cannot slip between the select and the update.
		if err := tx.Model(&models.UserModel{}).
			Where("id IN ? AND approval_status = ?", ids, uservo.StatusPending.String()).
			Clauses(lockForUpdate()).
			Pluck("id", &changedIDs).Error; err != nil {
			return fmt.Errorf("failed to select pending users: %w", err)
		}
		if len(changedIDs) == 0 {
			return nil
		}

		if err := tx.Model(&models.UserModel{}).
			Where("id IN ?", changedIDs).
			Updates(map[string]interface{}{
				"approval_status": target.String(),
				"updated_at":      time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to bulk update users: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("bulk status update failed", "target", target.String(), "error", err)
		return nil, err
	}

	if len(changedIDs) == 0 {
		return []*user.User{}, nil
	}

	var rows []models.UserModel
	if err := r.db.WithContext(ctx).Where("id IN ?", changedIDs).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to reload updated users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	r.logger.Infow("bulk user status update", "target", target.String(), "changed", len(users))
	return users, nil
}
