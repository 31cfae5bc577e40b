package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is used when ?limit is missing or invalid.
	DefaultLimit = 10
	// MaxLimit caps ?limit.
	MaxLimit = 100
)

// parseLimit reads ?limit, falling back to DefaultLimit and capping at
// MaxLimit.
func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit // Max limit
	}
	return limit
}
