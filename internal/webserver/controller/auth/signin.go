package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SignIn sets the admin flag if the password matches the configured one
func (a *Controller) SignIn(c *fiber.Ctx) error {
	password := c.FormValue("password")
	if a.config.AdminPassword == "" || subtle.ConstantTimeCompare([]byte(password), []byte(a.config.AdminPassword)) != 1 {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title":            "Log in",
			"Error":            "Wrong password",
			"DisableLoginLink": true,
		}, "layout")
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(fmt.Sprintf("/%s/store-manager/books", c.Params("lang")))
}

// GenerateToken signs an admin flag valid until expiration
func GenerateToken(expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin": true,
		"exp":   jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
