package model

import "strings"

// Filter returns, in their original order, the books whose title, author or ISBN
// contain the query, ignoring case. A blank query matches every book.
func Filter(books []Book, query string) []Book {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return books
	}

	filtered := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) ||
			strings.Contains(strings.ToLower(b.ISBN), query) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
