package model_test

import (
	"testing"
	"time"

	"github.com/bookstore/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func validForm() model.BookForm {
	return model.BookForm{
		Title:  "The Go Programming Language",
		Author: "Alan Donovan",
		ISBN:   "978-0-13-419044-0",
		Year:   "2015",
		Price:  "350.00",
	}
}

func TestValidate(t *testing.T) {
	var cases = []struct {
		name          string
		modify        func(f *model.BookForm)
		field         string
		expectedError string
	}{
		{"Empty title", func(f *model.BookForm) { f.Title = "" }, "title", "Please enter the book title"},
		{"Blank title", func(f *model.BookForm) { f.Title = "   " }, "title", "Please enter the book title"},
		{"Short title", func(f *model.BookForm) { f.Title = "A" }, "title", "Title must be at least 2 characters long"},
		{"Empty author", func(f *model.BookForm) { f.Author = "" }, "author", "Please enter the author name"},
		{"Title made only of markup", func(f *model.BookForm) { f.Title = "<b></b>" }, "title", "Please enter the book title"},
		{"Title made only of a script", func(f *model.BookForm) { f.Title = "<script>x</script>" }, "title", "Please enter the book title"},
		{"Title too short once markup is removed", func(f *model.BookForm) { f.Title = "<i>A</i>" }, "title", "Title must be at least 2 characters long"},
		{"Author too short once markup is removed", func(f *model.BookForm) { f.Author = "<i>A</i>" }, "author", "Author name must be at least 2 characters long"},
		{"Short author", func(f *model.BookForm) { f.Author = " B " }, "author", "Author name must be at least 2 characters long"},
		{"Empty ISBN", func(f *model.BookForm) { f.ISBN = "" }, "isbn", "Please enter the ISBN"},
		{"ISBN with letters", func(f *model.BookForm) { f.ISBN = "978-0-13-41904X" }, "isbn", "ISBN can only contain digits and hyphens"},
		{"ISBN with spaces", func(f *model.BookForm) { f.ISBN = "978 0 13" }, "isbn", "ISBN can only contain digits and hyphens"},
		{"Empty year", func(f *model.BookForm) { f.Year = "" }, "year", "Please enter the publication year"},
		{"Year not a number", func(f *model.BookForm) { f.Year = "nineteen" }, "year", "Year must be a number"},
		{"Year too old", func(f *model.BookForm) { f.Year = "999" }, "year", "Year must be between 1000 and 2026"},
		{"Year too far in the future", func(f *model.BookForm) { f.Year = "2027" }, "year", "Year must be between 1000 and 2026"},
		{"Empty price", func(f *model.BookForm) { f.Price = "" }, "price", "Please enter the price"},
		{"Price not a number", func(f *model.BookForm) { f.Price = "cheap" }, "price", "Price must be a number"},
		{"Price NaN", func(f *model.BookForm) { f.Price = "NaN" }, "price", "Price must be a number"},
		{"Zero price", func(f *model.BookForm) { f.Price = "0" }, "price", "Price must be greater than 0"},
		{"Negative price", func(f *model.BookForm) { f.Price = "-10" }, "price", "Price must be greater than 0"},
		{"Price too high", func(f *model.BookForm) { f.Price = "1000000" }, "price", "Price cannot be higher than 999,999"},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			form := validForm()
			tcase.modify(&form)

			errs := form.Validate(now)

			assert.Len(t, errs, 1)
			assert.Equal(t, tcase.expectedError, errs[tcase.field].String())
		})
	}
}

func TestValidateAcceptsBoundaries(t *testing.T) {
	form := validForm()
	form.Title = "Go"
	form.Author = "Al"
	form.ISBN = "1234567890"
	form.Year = "1000"
	form.Price = "0.01"
	assert.Empty(t, form.Validate(now))

	form.Year = "2026"
	form.Price = "999999"
	assert.Empty(t, form.Validate(now))
}

func TestValidateReportsEveryField(t *testing.T) {
	errs := map[string]string{}
	for field, fieldError := range (model.BookForm{}).Validate(now) {
		errs[field] = fieldError.Key
	}

	assert.Equal(t, map[string]string{
		"title":  "Please enter the book title",
		"author": "Please enter the author name",
		"isbn":   "Please enter the ISBN",
		"year":   "Please enter the publication year",
		"price":  "Please enter the price",
	}, errs)
}

func TestFormToBook(t *testing.T) {
	form := model.BookForm{
		Title:  "  <b>Tom & Jerry</b> ",
		Author: "<script>alert(1)</script>Hanna",
		ISBN:   " 978-3-16-148410-0 ",
		Year:   "1940",
		Price:  "199.5",
	}

	book, err := form.Book()
	require.NoError(t, err)

	assert.Equal(t, "Tom & Jerry", book.Title)
	assert.Equal(t, "Hanna", book.Author)
	assert.Equal(t, "978-3-16-148410-0", book.ISBN)
	assert.Equal(t, 1940, book.Year)
	assert.Equal(t, 199.5, book.Price)
}

func TestFormFromBook(t *testing.T) {
	form := model.FormFromBook(model.Book{
		ID:     4,
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "9780441013593",
		Year:   1965,
		Price:  420.5,
	})

	assert.Equal(t, model.BookForm{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "9780441013593",
		Year:   "1965",
		Price:  "420.5",
	}, form)
	assert.Empty(t, form.Validate(now))
}

func TestValidationMessagesKeepNumbersAsText(t *testing.T) {
	form := validForm()
	form.Year = "3000"
	form.Price = "2000000"

	errs := form.Validate(now)

	assert.Equal(t, model.FieldError{Key: "Year must be between %s and %s", Values: []any{"1000", "2026"}}, errs["year"])
	assert.Equal(t, model.FieldError{Key: "Price cannot be higher than %s", Values: []any{"999,999"}}, errs["price"])
}
