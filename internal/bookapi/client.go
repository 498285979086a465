// Package bookapi talks to the bookstore REST API, which owns the catalog.
// Calls are never retried.
package bookapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"

	"github.com/bookstore/backoffice/internal/model"
)

const maxRedirects = 2

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	BaseURL string
	Prefix  string
	Timeout time.Duration
}

type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	prefix     string
	timeout    time.Duration
}

// payload is the body accepted by the create and update endpoints
type payload struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	ISBN   string  `json:"isbn"`
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewClient returns a client for the API reachable at cfg.BaseURL
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		httpClient: &fasthttp.Client{
			Name:                "bookstore-backoffice",
			MaxIdleConnDuration: time.Minute,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		prefix:  "/" + strings.Trim(cfg.Prefix, "/"),
		timeout: cfg.Timeout,
	}
}

// List returns every book in the catalog
func (c *Client) List(ctx context.Context) ([]model.Book, error) {
	books := []model.Book{}
	if err := c.do(ctx, "list books", http.MethodGet, c.prefix+"/books", nil, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

// Latest returns the newest books added to the catalog
func (c *Client) Latest(ctx context.Context) ([]model.Book, error) {
	books := []model.Book{}
	if err := c.do(ctx, "latest books", http.MethodGet, c.prefix+"/books/new", nil, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (c *Client) Get(ctx context.Context, id int) (model.Book, error) {
	var book model.Book
	err := c.do(ctx, "get book", http.MethodGet, fmt.Sprintf("%s/books/%d", c.prefix, id), nil, &book)
	return book, err
}

// Create stores a new book and returns it as saved by the API
func (c *Client) Create(ctx context.Context, book model.Book) (model.Book, error) {
	var created model.Book
	err := c.do(ctx, "create book", http.MethodPost, c.prefix+"/books/", toPayload(book), &created)
	return created, err
}

func (c *Client) Update(ctx context.Context, id int, book model.Book) (model.Book, error) {
	var updated model.Book
	err := c.do(ctx, "update book", http.MethodPut, fmt.Sprintf("%s/books/%d", c.prefix, id), toPayload(book), &updated)
	return updated, err
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, "delete book", http.MethodDelete, fmt.Sprintf("%s/books/%d", c.prefix, id), nil, nil)
}

// Ping checks that the API health endpoint answers successfully
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, target any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	req.SetTimeout(timeout)

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", op, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(encoded)
	}

	if err := c.httpClient.DoRedirects(req, resp, maxRedirects); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return statusError(op, status, resp.Body())
	}

	if target == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}

func statusError(op string, code int, body []byte) error {
	e := &StatusError{Op: op, Code: code}
	var decoded errorBody
	if err := json.Unmarshal(body, &decoded); err == nil {
		e.Message = decoded.Error
		if e.Message == "" {
			e.Message = decoded.Message
		}
	}
	return e
}

func toPayload(b model.Book) payload {
	return payload{
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
		Year:   b.Year,
		Price:  b.Price,
	}
}
