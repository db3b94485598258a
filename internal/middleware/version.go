package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-catalog/internal/types"
)

// APIVersion is the version served when the client does not ask for one.
const APIVersion = "1.0.0"

// SupportedMajor is the only API major version this server answers.
const SupportedMajor = "1"

// VersionMiddleware parses the X-Api-Version header, stores the full version in
// context and refuses majors the server does not implement.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := strings.TrimPrefix(strings.TrimSpace(c.Get("X-Api-Version", APIVersion)), "v")

		// Support version aliases
		switch strings.Count(version, ".") {
		case 0:
			version += ".0.0"
		case 1:
			version += ".0"
		}

		if major, _, _ := strings.Cut(version, "."); major != SupportedMajor {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: fmt.Sprintf("Unsupported API version %q", c.Get("X-Api-Version")),
				Type:    "version",
			}
		}

		// Store version in context
		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
