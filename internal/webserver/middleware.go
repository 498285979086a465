package webserver

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/bookstore/backoffice/internal/webserver/jwtclaimsreader"
)

const sessionCookie = "session"

// SetLanguage exposes the language of the request, and the path without it,
// as local variables of the request
func SetLanguage(supportedLanguages []string) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		path := strings.TrimPrefix(c.Path(), "/"+lang)
		pathMinusLang := path
		if query := string(c.Request().URI().QueryString()); query != "" {
			pathMinusLang = pathMinusLang + "?" + query
		}
		c.Locals("Lang", lang)
		c.Locals("SupportedLanguages", supportedLanguages)
		c.Locals("Path", path)
		c.Locals("PathMinusLang", pathMinusLang)
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	}
}

// SetAdminFlag exposes whether the admin flag is set to the views, without
// restricting access to anything
func SetAdminFlag(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + sessionCookie,
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Admin", jwtclaimsreader.IsAdmin(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Locals("Admin", false)
			return c.Next()
		},
	})
}

// RequireAdmin redirects to the login page if the admin flag is not set
func RequireAdmin(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + sessionCookie,
		SuccessHandler: func(c *fiber.Ctx) error {
			if !jwtclaimsreader.IsAdmin(c) {
				return redirectToLogin(c)
			}
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return redirectToLogin(c)
		},
	})
}

// AllowIfNotLoggedIn sends admins straight to the back office
func AllowIfNotLoggedIn(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + sessionCookie,
		SuccessHandler: func(c *fiber.Ctx) error {
			if !jwtclaimsreader.IsAdmin(c) {
				return c.Next()
			}
			return c.Redirect(fmt.Sprintf("/%s/store-manager/books", lang(c)))
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect(fmt.Sprintf("/%s/login", lang(c)))
}

func lang(c *fiber.Ctx) string {
	if l, ok := c.Locals("Lang").(string); ok && l != "" {
		return l
	}
	return c.Params("lang")
}
