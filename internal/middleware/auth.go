package middleware

import (
	"fmt"

	"github.com/fitstack/fittrack/internal/config"
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/types"
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the context local holding the authenticated account id.
const UserIDKey = "userID"

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, []string{"admin"}, "data.authorization.admin")
	}
}

// AuthUser validates that the request has user role authorization
func AuthUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, []string{"user"}, "data.authorization.user")
	}
}

// authorize performs the authorization check. The Authorizer client is
// initialized lazily from the first authenticated request, since the
// redirect URL depends on how the service is reached.
func authorize(c *fiber.Ctx, cfg *config.Config, roles []string, errorType string) error {
	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    errorType,
			}
		}
	}

	// Get session cookie
	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	// Validate session
	user, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	// Set the account id in context for the handlers
	c.Locals(UserIDKey, user.ID)

	return c.Next()
}
