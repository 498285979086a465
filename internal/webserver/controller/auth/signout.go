package auth

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SignOut clears the admin flag and goes back to the home page
func (a *Controller) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-(time.Hour * 2)),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(fmt.Sprintf("/%s", c.Params("lang")))
}
