package book

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

var flashMessages = map[string]string{
	"book-deleted": "Book deleted successfully!",
	"book-updated": "Book updated successfully!",
}

func setFlash(c *fiber.Ctx, key string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    key,
		Path:     "/",
		HTTPOnly: true,
	})
}

// popFlash returns the message left by the previous request, if any, and clears it
func popFlash(c *fiber.Ctx) string {
	key := c.Cookies(flashCookie)
	if key == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:    flashCookie,
		Path:    "/",
		Expires: time.Now().Add(-(time.Hour * 2)),
	})
	return flashMessages[key]
}
