package view

import (
	"fmt"

	"github.com/bookstore/backoffice/internal/result"
)

// Page holds the URL of a results page, and if that page is the current one being shown
type Page struct {
	Number    int
	Link      string
	IsCurrent bool
}

// PagesNavigator contains the links to a window of pages around the current one, as well
// as links to the previous and next pages from the current one
type PagesNavigator struct {
	Pages        []Page
	PreviousLink string
	NextLink     string
}

// Pagination builds a navigator showing at most size pages. Extra query string
// parameters, like the search terms, are kept in every link.
func Pagination[T any](size int, results result.Paginated[T], params map[string]string) PagesNavigator {
	var nav PagesNavigator
	totalPages := results.TotalPages()
	if totalPages <= 1 {
		return nav
	}

	start, end := 1, totalPages
	if totalPages > size {
		start = results.Page() - size/2
		if start < 1 {
			start = 1
		}
		end = start + size - 1
		if end > totalPages {
			end = totalPages
			start = end - size + 1
		}
	}

	query := make(map[string]string, len(params)+1)
	for k, v := range params {
		query[k] = v
	}
	link := func(page int) string {
		query["page"] = fmt.Sprintf("%d", page)
		return fmt.Sprintf("?%s", ToQueryString(query))
	}

	nav.Pages = make([]Page, 0, end-start+1)
	for i := start; i <= end; i++ {
		nav.Pages = append(nav.Pages, Page{
			Number:    i,
			Link:      link(i),
			IsCurrent: i == results.Page(),
		})
	}
	if results.Page() > 1 {
		nav.PreviousLink = link(results.Page() - 1)
	}
	if results.Page() < totalPages {
		nav.NextLink = link(results.Page() + 1)
	}
	return nav
}
