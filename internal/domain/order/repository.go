package order

import "context"

// Repository is the read-side port for shipment orders.
type Repository interface {
	// FindByAWB returns a not-found error when no order carries the AWB number.
	FindByAWB(ctx context.Context, awbNumber string) (*Order, error)
}
