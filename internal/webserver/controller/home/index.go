package home

import (
	"github.com/gofiber/fiber/v2"
)

// Index renders the home page with the latest books added to the catalog.
// The page is still served when the API is unreachable.
func (h *Controller) Index(c *fiber.Ctx) error {
	templateVars := fiber.Map{
		"Title": "BookStore",
	}

	books, err := h.repository.Latest(c.UserContext())
	if err != nil {
		h.logger.WithField("request_id", c.Locals("requestid")).WithError(err).Warn("error retrieving latest books")
		templateVars["Error"] = "Could not retrieve the latest books"
	}
	templateVars["Books"] = books

	return c.Render("home/index", templateVars, "layout")
}
