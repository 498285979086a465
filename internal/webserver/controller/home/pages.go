package home

import "github.com/gofiber/fiber/v2"

func (h *Controller) About(c *fiber.Ctx) error {
	return c.Render("home/about", fiber.Map{
		"Title": "About us",
	}, "layout")
}

func (h *Controller) Contact(c *fiber.Ctx) error {
	return c.Render("home/contact", fiber.Map{
		"Title": "Contact",
	}, "layout")
}
