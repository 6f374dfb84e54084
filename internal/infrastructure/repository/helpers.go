package repository

import "gorm.io/gorm/clause"

// lockForUpdate builds a SELECT ... FOR UPDATE clause for transactional reads.
func lockForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
