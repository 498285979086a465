package bookapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the API does not know the requested book
var ErrNotFound = errors.New("book not found")

// StatusError is returned when the API answers with a non successful status code
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: unexpected status code %d: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: unexpected status code %d", e.Op, e.Code)
}

// Is makes a 404 answer match ErrNotFound
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}
