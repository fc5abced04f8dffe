package handlers

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	applog "github.com/Vincent-WangCH/Project-list-backend/internal/log"
	"github.com/Vincent-WangCH/Project-list-backend/internal/repos"
)

// ErrorHandler translates errors escaping the handlers into HTTP responses.
// Storage sentinels get their documented status and a generic message;
// everything else is a 500 that only shows detail outside production.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		applog.Error(c, "server.error", err, nil)

		status := fiber.StatusInternalServerError
		msg := "Internal server error"
		switch {
		case errors.Is(err, repos.ErrNotFound):
			status, msg = fiber.StatusNotFound, "Item not found"
		case errors.Is(err, repos.ErrAlreadyExists):
			status, msg = fiber.StatusBadRequest, "Item already exists"
		case errors.Is(err, repos.ErrInvalidReference):
			status, msg = fiber.StatusBadRequest, "Invalid reference"
		case errors.Is(err, repos.ErrConstraint):
			status, msg = fiber.StatusBadRequest, "Invalid item data"
		default:
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status, msg = fe.Code, fe.Message
			}
		}

		body := fiber.Map{"error": msg}
		if !production && status == fiber.StatusInternalServerError {
			body["details"] = err.Error()
			body["stack"] = string(debug.Stack())
		}
		return c.Status(status).JSON(body)
	}
}

// NotFoundHandler answers anything no route matched.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "Route not found",
		"message": c.Method() + " " + c.Path() + " does not exist",
	})
}
