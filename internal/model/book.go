package model

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

const (
	MinYear           = 1000
	MaxPrice          = 999999
	MinTextLength     = 2
	ISBNPattern       = `^[0-9-]+$`
	ResultsPerPage    = 10
	MaxPagesNavigator = 5
)

var (
	validate  = validator.New()
	sanitizer = bluemonday.StrictPolicy()
	isbnChars = regexp.MustCompile(ISBNPattern)
)

func init() {
	validate.RegisterValidation("isbnchars", func(fl validator.FieldLevel) bool {
		return isbnChars.MatchString(fl.Field().String())
	})
}

// Book is the catalog record exposed by the books API
type Book struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	Year      int       `json:"year"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// BookForm holds the book fields exactly as they were typed in the form,
// so a rejected submission can be shown back to the user untouched
type BookForm struct {
	Title  string
	Author string
	ISBN   string
	Year   string
	Price  string
}

// FormFromBook returns a form prefilled with the values of an existing book
func FormFromBook(b Book) BookForm {
	return BookForm{
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
		Year:   strconv.Itoa(b.Year),
		Price:  strconv.FormatFloat(b.Price, 'f', -1, 64),
	}
}

// MaxYear is the latest publication year accepted at the given moment
func MaxYear(now time.Time) int {
	return now.Year() + 1
}

// FieldError is a validation message key along with the values it is formatted
// with. Values are already formatted as text, so printers do not regroup digits.
type FieldError struct {
	Key    string
	Values []any
}

func (e FieldError) String() string {
	return fmt.Sprintf(e.Key, e.Values...)
}

func fieldError(key string, values ...any) FieldError {
	return FieldError{Key: key, Values: values}
}

// Validate checks all form fields to ensure they are in the required format.
// Markup is stripped from title and author before checking them. Only the first
// failing rule of each field is reported.
func (f BookForm) Validate(now time.Time) map[string]FieldError {
	errs := map[string]FieldError{}
	minLength := strconv.Itoa(MinTextLength)

	title := stripTags(f.Title)
	switch {
	case title == "":
		errs["title"] = fieldError("Please enter the book title")
	case validate.Var(title, "min="+minLength) != nil:
		errs["title"] = fieldError("Title must be at least %s characters long", minLength)
	}

	author := stripTags(f.Author)
	switch {
	case author == "":
		errs["author"] = fieldError("Please enter the author name")
	case validate.Var(author, "min="+minLength) != nil:
		errs["author"] = fieldError("Author name must be at least %s characters long", minLength)
	}

	isbn := strings.TrimSpace(f.ISBN)
	switch {
	case isbn == "":
		errs["isbn"] = fieldError("Please enter the ISBN")
	case validate.Var(isbn, "isbnchars") != nil:
		errs["isbn"] = fieldError("ISBN can only contain digits and hyphens")
	}

	if year := strings.TrimSpace(f.Year); year == "" {
		errs["year"] = fieldError("Please enter the publication year")
	} else if yearNum, err := strconv.Atoi(year); err != nil {
		errs["year"] = fieldError("Year must be a number")
	} else if validate.Var(yearNum, fmt.Sprintf("gte=%d,lte=%d", MinYear, MaxYear(now))) != nil {
		errs["year"] = fieldError("Year must be between %s and %s", strconv.Itoa(MinYear), strconv.Itoa(MaxYear(now)))
	}

	if price := strings.TrimSpace(f.Price); price == "" {
		errs["price"] = fieldError("Please enter the price")
	} else if priceNum, err := strconv.ParseFloat(price, 64); err != nil || math.IsNaN(priceNum) || math.IsInf(priceNum, 0) {
		errs["price"] = fieldError("Price must be a number")
	} else if validate.Var(priceNum, "gt=0") != nil {
		errs["price"] = fieldError("Price must be greater than 0")
	} else if validate.Var(priceNum, fmt.Sprintf("lte=%d", MaxPrice)) != nil {
		errs["price"] = fieldError("Price cannot be higher than %s", humanize.Comma(MaxPrice))
	}

	return errs
}

// Book converts a validated form into a book ready to be sent to the API.
// Markup is stripped from the free text fields.
func (f BookForm) Book() (Book, error) {
	year, err := strconv.Atoi(strings.TrimSpace(f.Year))
	if err != nil {
		return Book{}, fmt.Errorf("parsing year: %w", err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return Book{}, fmt.Errorf("parsing price: %w", err)
	}

	return Book{
		Title:  stripTags(f.Title),
		Author: stripTags(f.Author),
		ISBN:   strings.TrimSpace(f.ISBN),
		Year:   year,
		Price:  price,
	}, nil
}

func stripTags(text string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(text)))
}
