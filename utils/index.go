package utils

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorResponse writes the wire error shape: {"error": message}. The
// underlying error is logged, never leaked to the caller.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationResponse writes field-level validation failures:
// {"messages": {field: message}}.
func ValidationResponse(c *fiber.Ctx, messages map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"messages": messages,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ApplyPagination slices the query when both page and per_page are positive
// integers. Anything absent or malformed leaves the query untouched so the
// caller gets the complete set.
func ApplyPagination(query *gorm.DB, page, perPage string) *gorm.DB {
	p, errPage := strconv.Atoi(page)
	pp, errPerPage := strconv.Atoi(perPage)
	if errPage != nil || errPerPage != nil || p < 1 || pp < 1 {
		return query
	}
	return query.Limit(pp).Offset(pp * (p - 1))
}

func Ptr[T any](v T) *T {
	return &v
}
