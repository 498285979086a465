package jwtclaimsreader

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// IsAdmin tells if the request carries a valid admin flag. It relies on the
// token left in the request locals by the jwt middleware.
func IsAdmin(c *fiber.Ctx) bool {
	t, ok := c.Locals("user").(*jwt.Token)
	if !ok || !t.Valid {
		return false
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, ok := claims["admin"].(bool)
	return ok && admin
}
