package webserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bookstore/backoffice/internal/webserver/controller"
)

func routes(app *fiber.App, controllers Controllers, supportedLanguages []string, logger *logrus.Logger) {
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: logger.WriterLevel(logrus.InfoLevel),
	}))

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	langGroup := app.Group(
		fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")),
		SetLanguage(supportedLanguages),
		controllers.SetAdminFlagMiddleware,
	)

	langGroup.Get("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Login)
	langGroup.Post("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.SignIn)
	langGroup.Get("/logout", controllers.Auth.SignOut)

	managerGroup := langGroup.Group("/store-manager", controllers.RequireAdminMiddleware)

	managerGroup.Get("/books", controllers.Books.Manage)
	managerGroup.Post("/books/:id<int>/delete", controllers.Books.Delete)
	managerGroup.Get("/add-book", controllers.Books.New)
	managerGroup.Post("/add-book", controllers.Books.Create)
	managerGroup.Get("/edit-book/:id<int>", controllers.Books.Edit)
	managerGroup.Post("/edit-book/:id<int>", controllers.Books.Update)

	langGroup.Get("/books", controllers.Books.List)
	langGroup.Get("/about", controllers.Home.About)
	langGroup.Get("/contact", controllers.Home.Contact)
	langGroup.Get("/", controllers.Home.Index)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, supportedLanguages)
	})
}
