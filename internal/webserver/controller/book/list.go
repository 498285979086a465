package book

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bookstore/backoffice/internal/model"
	"github.com/bookstore/backoffice/internal/result"
	"github.com/bookstore/backoffice/internal/webserver/view"
)

// List renders the public catalog
func (b *Controller) List(c *fiber.Ctx) error {
	return b.list(c, false)
}

// Manage renders the catalog along with the actions to add, edit and delete books
func (b *Controller) Manage(c *fiber.Ctx) error {
	return b.list(c, true)
}

func (b *Controller) list(c *fiber.Ctx, manage bool) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	search := c.Query("search")

	templateVars := fiber.Map{
		"Title":   "Books",
		"Manage":  manage,
		"Search":  search,
		"URL":     view.URL(c),
		"Message": popFlash(c),
	}

	books, err := b.repository.List(c.UserContext())
	if err != nil {
		b.log(c).WithError(err).Error("error retrieving books")
		templateVars["Error"] = "Could not retrieve the books"
		return c.Status(fiber.StatusBadGateway).Render("book/list", templateVars, "layout")
	}

	params := map[string]string{}
	if search != "" {
		params["search"] = search
	}

	results := result.Paginate(model.Filter(books, search), page, model.ResultsPerPage)
	templateVars["Books"] = results.Hits()
	templateVars["Total"] = results.TotalHits()
	templateVars["Offset"] = results.Offset()
	templateVars["Paginator"] = view.Pagination(model.MaxPagesNavigator, results, params)

	return c.Render("book/list", templateVars, "layout")
}
