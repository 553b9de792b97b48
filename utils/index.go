package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}
	return query
}

// Paginate is ApplyPagination for in-memory slices.
func Paginate[T any](rows []T, limit, page *int) []T {
	if limit == nil || *limit <= 0 || page == nil || *page < 1 {
		return rows
	}
	start := *limit * (*page - 1)
	if start >= len(rows) {
		return []T{}
	}
	end := start + *limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, r := range constantValues {
		if r == value {
			return true
		}
	}
	return false
}

func Ptr[T any](v T) *T {
	return &v
}
