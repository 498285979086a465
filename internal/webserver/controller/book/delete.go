package book

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/bookstore/backoffice/internal/bookapi"
)

// Delete removes a book through the API and goes back to the list, which
// fetches the catalog again
func (b *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := b.repository.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, bookapi.ErrNotFound) {
			return fiber.ErrNotFound
		}
		b.log(c).WithError(err).WithField("book_id", id).Error("error deleting book")
		return fiber.ErrBadGateway
	}

	b.log(c).WithField("book_id", id).Info("book deleted")
	setFlash(c, "book-deleted")

	target := fmt.Sprintf("/%s/store-manager/books", c.Params("lang"))
	if search := c.FormValue("search"); search != "" {
		target += "?" + url.Values{"search": {search}}.Encode()
	}
	return c.Redirect(target)
}
