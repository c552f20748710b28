package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	AdminPageSize   = 20 // Admin user listing default
	MaxPageSize     = 100
	DefaultPage     = 1 // Pages are 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// TotalPages computes ceil(totalItems / size) for pagination envelopes.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// ParsePaginationParams extracts and validates pagination parameters from the request.
// defaultSize lets endpoints override the page size default (admin user listing uses 20).
func ParsePaginationParams(c *gin.Context, defaultSize int) (page, size int) {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("limit", strconv.Itoa(defaultSize))
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = defaultSize
	}

	return page, size
}
