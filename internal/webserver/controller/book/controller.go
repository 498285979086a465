package book

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/bookstore/backoffice/internal/model"
)

// BooksRepository is implemented by the books API client
type BooksRepository interface {
	List(ctx context.Context) ([]model.Book, error)
	Get(ctx context.Context, id int) (model.Book, error)
	Create(ctx context.Context, book model.Book) (model.Book, error)
	Update(ctx context.Context, id int, book model.Book) (model.Book, error)
	Delete(ctx context.Context, id int) error
}

type Controller struct {
	repository BooksRepository
	logger     logrus.FieldLogger
	now        func() time.Time
}

// NewController returns a new instance of the books controller
func NewController(repository BooksRepository, logger logrus.FieldLogger, now func() time.Time) *Controller {
	return &Controller{
		repository: repository,
		logger:     logger,
		now:        now,
	}
}

func (b *Controller) log(c *fiber.Ctx) logrus.FieldLogger {
	return b.logger.WithField("request_id", c.Locals("requestid"))
}
