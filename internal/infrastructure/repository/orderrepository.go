package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/order"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/mappers"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/models"
	apperrors "github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

// OrderRepository is the read-only GORM adapter for shipment orders.
type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

// FindByAWB retrieves an order by its AWB number.
func (r *OrderRepository) FindByAWB(ctx context.Context, awbNumber string) (*order.Order, error) {
	var model models.OrderModel

	if err := r.db.WithContext(ctx).Where("awb_number = ?", awbNumber).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Order not found for this AWB number")
		}
		r.logger.Errorw("failed to get order by AWB", "awb_number", awbNumber, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
