package middleware

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/types"
)

// SessionCookie is the Authorizer session cookie name.
const SessionCookie = "cookie_session"

const principalKey = "principal"

// SessionValidator resolves a session cookie into a principal.
type SessionValidator interface {
	ValidateSession(ctx context.Context, cookie string) (*catalog.Principal, error)
}

// Authenticate validates the session cookie and stores the principal for the
// handlers. A request without a valid session is refused with 403.
// A nil validator means authentication is disabled and every request is refused.
func Authenticate(validator SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if validator == nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Authentication is disabled",
				Type:    "catalog.authorization",
			}
		}

		// Get session cookie
		session := c.Cookies(SessionCookie)
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Authorizer cookie %q not found", SessionCookie),
				Type:    "catalog.authorization",
			}
		}

		principal, err := validator.ValidateSession(c.UserContext(), session)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "catalog.authorization",
			}
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// Principal returns the principal stored by Authenticate, or nil.
func Principal(c *fiber.Ctx) *catalog.Principal {
	p, _ := c.Locals(principalKey).(*catalog.Principal)
	return p
}

// SessionInitializer prepares a SessionValidator once the request origin is known.
type SessionInitializer interface {
	Init(ctx context.Context, redirectURL string) error
}

// InitSession initializes the session backend on the first request, using the
// request origin as the redirect URL.
func InitSession(initializer SessionInitializer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Protocol() + "://" + c.Hostname()
		if err := initializer.Init(c.UserContext(), origin); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    "catalog.authorization",
			}
		}
		return c.Next()
	}
}
