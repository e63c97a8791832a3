package exts

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// EnsureAdmin only lets requests carrying the configured admin token through.
// With no token configured the admin endpoints stay closed.
func EnsureAdmin(c *fiber.Ctx) error {
	token := viper.GetString("security.admin_token")
	provided := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")

	if len(token) == 0 || subtle.ConstantTimeCompare([]byte(token), []byte(provided)) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "admin token is required")
	}

	return c.Next()
}
