package infrastructure

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/template/html/v2"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"github.com/bookstore/backoffice/internal/i18n"
	"github.com/bookstore/backoffice/internal/model"
)

func TemplateEngine(viewsFS fs.FS, printers *i18n.Printers, logger logrus.FieldLogger) *html.Engine {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) string {
		return printers.T(lang, key, values...)
	})

	engine.AddFunc("tfield", func(lang string, fieldError model.FieldError) string {
		return printers.T(lang, fieldError.Key, fieldError.Values...)
	})

	engine.AddFunc("dict", func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			logger.Warn("invalid dict call")
			return nil
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				logger.Warn("dict keys must be strings")
				return nil
			}
			dict[key] = values[i+1]
		}
		return dict
	})

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	engine.AddFunc("price", func(amount float64) string {
		return humanize.FormatFloat("#,###.##", amount)
	})

	engine.AddFunc("add", func(values ...int) int {
		total := 0
		for _, v := range values {
			total += v
		}
		return total
	})

	engine.AddFunc("slugify", func(text string) string {
		return slug.Make(text)
	})

	return engine
}
