package home

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bookstore/backoffice/internal/model"
)

// LatestBooks is implemented by the books API client
type LatestBooks interface {
	Latest(ctx context.Context) ([]model.Book, error)
}

type Controller struct {
	repository LatestBooks
	logger     logrus.FieldLogger
}

func NewController(repository LatestBooks, logger logrus.FieldLogger) *Controller {
	return &Controller{
		repository: repository,
		logger:     logger,
	}
}
