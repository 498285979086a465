package book

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookstore/backoffice/internal/model"
)

// Create gathers information coming from the add book form and sends the new book to the API
func (b *Controller) Create(c *fiber.Ctx) error {
	form := formFromRequest(c)
	templateVars := newFormVars(c, form, b.now())

	if errs := form.Validate(b.now()); len(errs) > 0 {
		templateVars["Errors"] = errs
		return c.Status(fiber.StatusBadRequest).Render("book/new", templateVars, "layout")
	}

	book, err := form.Book()
	if err != nil {
		return fiber.ErrBadRequest
	}

	created, err := b.repository.Create(c.UserContext(), book)
	if err != nil {
		b.log(c).WithError(err).Error("error adding book")
		templateVars["SubmitError"] = "Error adding the book, please try again"
		return c.Status(fiber.StatusBadGateway).Render("book/new", templateVars, "layout")
	}

	b.log(c).WithField("book_id", created.ID).Info("book added")

	templateVars = newFormVars(c, model.BookForm{}, b.now())
	templateVars["CreatedTitle"] = created.Title
	return c.Render("book/new", templateVars, "layout")
}
