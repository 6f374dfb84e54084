package models

import "time"

// OrderModel is the persistence model for shipment orders. Rows are written
// by the booking system; this service only reads them to resolve AWB numbers.
type OrderModel struct {
	ID                 uint    `gorm:"primaryKey"`
	AWBNumber          string  `gorm:"column:awb_number;uniqueIndex;size:50;not null"`
	UserID             uint    `gorm:"not null;index"`
	PickupCountry      string  `gorm:"size:100"`
	PickupPincode      string  `gorm:"size:20"`
	DestinationCountry string  `gorm:"size:100"`
	DestinationPincode string  `gorm:"size:20"`
	WeightKg           float64 `gorm:"column:weight_kg"`
	CreatedAt          time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
