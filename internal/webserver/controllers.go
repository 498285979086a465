package webserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"github.com/bookstore/backoffice/internal/i18n"
	"github.com/bookstore/backoffice/internal/webserver/controller/auth"
	"github.com/bookstore/backoffice/internal/webserver/controller/book"
	"github.com/bookstore/backoffice/internal/webserver/controller/home"
)

// BooksAPI is the set of operations the back office needs from the books REST API
type BooksAPI interface {
	book.BooksRepository
	home.LatestBooks
}

type Controllers struct {
	Auth                         *auth.Controller
	Books                        *book.Controller
	Home                         *home.Controller
	SetAdminFlagMiddleware       func(c *fiber.Ctx) error
	RequireAdminMiddleware       func(c *fiber.Ctx) error
	AllowIfNotLoggedInMiddleware func(c *fiber.Ctx) error
	ErrorHandler                 func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, api BooksAPI, printers *i18n.Printers, logger *logrus.Logger) Controllers {
	authCfg := auth.Config{
		Secret:         cfg.JwtSecret,
		AdminPassword:  cfg.AdminPassword,
		SessionTimeout: cfg.SessionTimeout,
	}

	return Controllers{
		Auth:                         auth.NewController(authCfg),
		Books:                        book.NewController(api, logger, time.Now),
		Home:                         home.NewController(api, logger),
		SetAdminFlagMiddleware:       SetAdminFlag(cfg.JwtSecret),
		RequireAdminMiddleware:       RequireAdmin(cfg.JwtSecret),
		AllowIfNotLoggedInMiddleware: AllowIfNotLoggedIn(cfg.JwtSecret),
		ErrorHandler:                 errorHandler(printers.Fallback(), logger),
	}
}

func errorHandler(defaultLanguage string, logger logrus.FieldLogger) func(c *fiber.Ctx, err error) error {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code == fiber.StatusInternalServerError {
			logger.WithField("request_id", c.Locals("requestid")).WithError(err).Error("internal server error")
		}

		lang, ok := c.Locals("Lang").(string)
		if !ok || lang == "" {
			lang = defaultLanguage
		}

		// Send custom error page
		err = c.Status(code).Render(
			fmt.Sprintf("errors/%d", code),
			fiber.Map{
				"Lang":          lang,
				"Title":         "BookStore",
				"Path":          "",
				"PathMinusLang": "",
			},
			"layout")

		if err != nil {
			// In case the Render fails
			return c.Status(code).SendString(fmt.Sprintf("%d %s", code, utils.StatusMessage(code)))
		}

		return nil
	}
}
