package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
)

// ParseUintParam reads a numeric path parameter and rejects zero and
// non-numeric values with a validation error.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
