package webserver

import (
	"embed"
	"io/fs"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/bookstore/backoffice/internal/i18n"
	"github.com/bookstore/backoffice/internal/webserver/infrastructure"
)

var (
	//go:embed embedded
	embedded embed.FS

	cssFS          fs.FS
	viewsFS        fs.FS
	translationsFS fs.FS
)

type Config struct {
	Version         string
	AdminPassword   string
	JwtSecret       []byte
	SessionTimeout  time.Duration
	DefaultLanguage string
}

func init() {
	var err error

	cssFS, err = fs.Sub(embedded, "embedded/css")
	if err != nil {
		log.Fatal(err)
	}

	viewsFS, err = fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}

	translationsFS, err = fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}
}

// Printers loads the embedded translations
func Printers(defaultLanguage string) (*i18n.Printers, error) {
	return i18n.NewPrinters(translationsFS, defaultLanguage)
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers, printers *i18n.Printers, logger *logrus.Logger) *fiber.App {
	engine := infrastructure.TemplateEngine(viewsFS, printers, logger)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          controllers.ErrorHandler,
		AppName:               cfg.Version,
		PassLocalsToViews:     true,
		DisableStartupMessage: true,
	})

	routes(app, controllers, printers.Languages(), logger)

	return app
}
