package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"certdesk/internal/shared/errors"
)

// ParseUintParam parses a positive integer ID from a URL path parameter.
// entityName is used in error messages (e.g., "task", "region").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID: %q", entityName, raw),
		)
	}

	return uint(value), nil
}

// ParseIntParam parses an integer from a URL path parameter (regions are
// plain integers, not database IDs, so zero is allowed through to the
// capacity layer which rejects unknown regions itself).
func ParseIntParam(c *gin.Context, paramName, entityName string) (int, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " is required")
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s: %q", entityName, raw),
		)
	}

	return value, nil
}
