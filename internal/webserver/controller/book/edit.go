package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bookstore/backoffice/internal/bookapi"
	"github.com/bookstore/backoffice/internal/model"
)

// Edit renders the edit form prefilled with the current values of the book
func (b *Controller) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	book, err := b.repository.Get(c.UserContext(), id)
	if errors.Is(err, bookapi.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		b.log(c).WithError(err).WithField("book_id", id).Error("error retrieving book")
		return fiber.ErrBadGateway
	}

	return c.Render("book/edit", editFormVars(c, id, model.FormFromBook(book), b.now()), "layout")
}

func editFormVars(c *fiber.Ctx, id int, form model.BookForm, now time.Time) fiber.Map {
	return fiber.Map{
		"Title":       "Edit book",
		"ID":          id,
		"Form":        form,
		"Errors":      map[string]model.FieldError{},
		"MinYear":     model.MinYear,
		"MaxYear":     model.MaxYear(now),
		"Action":      fmt.Sprintf("/%s/store-manager/edit-book/%d", c.Params("lang"), id),
		"SubmitLabel": "Save changes",
	}
}
