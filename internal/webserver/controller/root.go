package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Root redirects to the home page in the language that best matches the
// Accept-Language header. The first supported language is the default one.
func Root(c *fiber.Ctx, supportedLanguages []string) error {
	tags := make([]language.Tag, len(supportedLanguages))
	for i, lang := range supportedLanguages {
		tags[i] = language.Make(lang)
	}
	matcher := language.NewMatcher(tags)

	accepted, _, _ := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	_, index, _ := matcher.Match(accepted...)
	return c.Redirect(fmt.Sprintf("/%s", supportedLanguages[index]))
}
