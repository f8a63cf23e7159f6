package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SuccessResponse wraps every payload in the shared envelope:
// status code, message, optional data.
func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
		"data":       data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
		"error":      errMsg,
	})
}

func PagedResponse(c *fiber.Ctx, rows any, limit, page *int, totalCount int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"statusCode": fiber.StatusOK,
		"message":    "Success",
		"data": fiber.Map{
			"rows":       rows,
			"limit":      limit,
			"page":       page,
			"totalCount": totalCount,
		},
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

func Ptr[T any](v T) *T {
	return &v
}
