package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitstack/fittrack/internal/middleware"
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// getUserID extracts the account id from context (set by auth middleware)
func getUserID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || id == "" {
		return "", fmt.Errorf("user not found in context")
	}
	return id, nil
}

// serviceError maps store sentinel errors to HTTP responses. Anything
// unrecognized becomes a 500 with the operation name as the error type.
func serviceError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, services.ErrSessionEnded):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, op)
	case errors.Is(err, services.ErrTierMismatch):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnprocessableEntity, op)
	case errors.Is(err, services.ErrSetMismatch):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, op)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, op)
}

// parseCSVQuery extracts a query parameter that may appear multiple
// times or carry comma-separated values, deduplicated.
func parseCSVQuery(c *fiber.Ctx, name string) []string {
	valueMap := make(map[string]struct{})

	args := c.Context().QueryArgs()
	for key, value := range args.All() {
		if string(key) == name {
			for _, v := range strings.Split(string(value), ",") {
				v = strings.TrimSpace(v)
				if v != "" {
					valueMap[v] = struct{}{}
				}
			}
		}
	}

	if len(valueMap) == 0 {
		return nil
	}

	values := make([]string, 0, len(valueMap))
	for k := range valueMap {
		values = append(values, k)
	}
	return values
}
