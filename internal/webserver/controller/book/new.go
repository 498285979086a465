package book

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bookstore/backoffice/internal/model"
)

// New renders the add book form
func (b *Controller) New(c *fiber.Ctx) error {
	return c.Render("book/new", newFormVars(c, model.BookForm{}, b.now()), "layout")
}

func newFormVars(c *fiber.Ctx, form model.BookForm, now time.Time) fiber.Map {
	return fiber.Map{
		"Title":       "Add a new book",
		"Form":        form,
		"Errors":      map[string]model.FieldError{},
		"MinYear":     model.MinYear,
		"MaxYear":     model.MaxYear(now),
		"Action":      fmt.Sprintf("/%s/store-manager/add-book", c.Params("lang")),
		"SubmitLabel": "Add book",
	}
}

func formFromRequest(c *fiber.Ctx) model.BookForm {
	return model.BookForm{
		Title:  c.FormValue("title"),
		Author: c.FormValue("author"),
		ISBN:   c.FormValue("isbn"),
		Year:   c.FormValue("year"),
		Price:  c.FormValue("price"),
	}
}
