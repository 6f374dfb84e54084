package mappers

import (
	"fmt"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/order"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/models"
)

type OrderMapper struct{}

func NewOrderMapper() OrderMapper {
	return OrderMapper{}
}

func (OrderMapper) ToDomain(m *models.OrderModel) (*order.Order, error) {
	o, err := order.Reconstruct(
		m.ID,
		m.AWBNumber,
		m.UserID,
		order.Location{Country: m.PickupCountry, Pincode: m.PickupPincode},
		order.Location{Country: m.DestinationCountry, Pincode: m.DestinationPincode},
		m.WeightKg,
		m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map order %d: %w", m.ID, err)
	}
	return o, nil
}
