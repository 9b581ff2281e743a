package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header is the HTTP header carrying the API key.
const Header = "X-Api-Key"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check entirely.
	ApiKey string
}

// New returns a middleware that validates the API key header.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		key := c.Get(Header)
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		return c.Next()
	}
}
