// Package order models the shipment orders tickets attach to. Orders are
// created by the wider booking system; this service reads them to resolve
// AWB numbers and never mutates them.
package order

import (
	"fmt"
	"time"
)

type Order struct {
	id          uint
	awbNumber   string
	userID      uint
	pickup      Location
	destination Location
	weightKg    float64
	createdAt   time.Time
}

// Location is a country plus postal code pair.
type Location struct {
	Country string
	Pincode string
}

func Reconstruct(id uint, awbNumber string, userID uint, pickup, destination Location, weightKg float64, createdAt time.Time) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if awbNumber == "" {
		return nil, fmt.Errorf("awb number is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("order owner is required")
	}

	return &Order{
		id:          id,
		awbNumber:   awbNumber,
		userID:      userID,
		pickup:      pickup,
		destination: destination,
		weightKg:    weightKg,
		createdAt:   createdAt,
	}, nil
}

func (o *Order) ID() uint              { return o.id }
func (o *Order) AWBNumber() string     { return o.awbNumber }
func (o *Order) UserID() uint          { return o.userID }
func (o *Order) Pickup() Location      { return o.pickup }
func (o *Order) Destination() Location { return o.destination }
func (o *Order) WeightKg() float64     { return o.weightKg }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }

// IsOwnedBy reports whether the given user booked this shipment.
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.userID == userID
}
