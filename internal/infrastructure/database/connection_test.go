package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hardik-Dharmik/shipping-b/internal/shared/config"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     3306,
		Username: "portal",
		Password: "secret",
		Database: "shipping",
	}

	dsn := buildDSN(cfg)

	assert.Contains(t, dsn, "portal:secret@tcp(db.internal:3306)/shipping")
	assert.Contains(t, dsn, "parseTime=true")
	// Repositories read RowsAffected to tell "row absent" from "row already
	// in the target state" (e.g. resetting an unread counter that is already
	// zero). That only holds when the driver reports matched rows.
	assert.Contains(t, dsn, "clientFoundRows=true")
}
