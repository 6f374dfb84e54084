package models

import "time"

// UserModel is the database persistence model for user accounts.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:100;not null"`
	Email          string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string `gorm:"size:255;not null"`
	CompanyName    string `gorm:"size:200"`
	Role           string `gorm:"size:20;not null;default:user"`
	ApprovalStatus string `gorm:"size:20;not null;default:pending;index"`
	FileURL        string `gorm:"size:500"`
	FileName       string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
