package book

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bookstore/backoffice/internal/bookapi"
)

// Update gathers information coming from the edit form and sends it to the API
func (b *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	form := formFromRequest(c)
	templateVars := editFormVars(c, id, form, b.now())

	if errs := form.Validate(b.now()); len(errs) > 0 {
		templateVars["Errors"] = errs
		return c.Status(fiber.StatusBadRequest).Render("book/edit", templateVars, "layout")
	}

	book, err := form.Book()
	if err != nil {
		return fiber.ErrBadRequest
	}

	if _, err = b.repository.Update(c.UserContext(), id, book); err != nil {
		if errors.Is(err, bookapi.ErrNotFound) {
			return fiber.ErrNotFound
		}
		b.log(c).WithError(err).WithField("book_id", id).Error("error updating book")
		templateVars["SubmitError"] = "Error updating the book, please try again"
		return c.Status(fiber.StatusBadGateway).Render("book/edit", templateVars, "layout")
	}

	setFlash(c, "book-updated")
	return c.Redirect(fmt.Sprintf("/%s/store-manager/books", c.Params("lang")))
}
