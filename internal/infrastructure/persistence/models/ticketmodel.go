package models

import (
	"time"

	"gorm.io/datatypes"
)

// TicketModel is the persistence model for support tickets. The conversation
// lives in the Messages JSON column; appends to it go through a single
// server-side JSON_ARRAY_APPEND update, never a read-modify-write.
type TicketModel struct {
	ID               uint           `gorm:"primaryKey"`
	AWBNumber        string         `gorm:"column:awb_number;uniqueIndex;size:50;not null"`
	OrderID          uint           `gorm:"not null;index"`
	UserID           uint           `gorm:"not null;index"`
	Category         string         `gorm:"size:100;not null"`
	Subcategory      string         `gorm:"size:100;not null"`
	Status           string         `gorm:"size:20;not null;default:open;index"`
	Messages         datatypes.JSON `gorm:"not null"`
	UnreadAdminCount int            `gorm:"not null;default:0"`
	UnreadUserCount  int            `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}
