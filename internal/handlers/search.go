package handlers

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/service"
	"github.com/jjenkins/volume/internal/templates"
)

func SearchHandler(resolver *service.SearchResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))

		var result *model.SearchResult
		if query != "" {
			r := resolver.Resolve(c.UserContext(), query)
			result = &r
		}

		// Check if this is an HTMX request for just the results
		if c.Get("HX-Request") == "true" && result != nil {
			page := templates.SearchResults(*result)
			handler := adaptor.HTTPHandler(templ.Handler(page))
			return handler(c)
		}

		page := templates.Search(query, result)
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}
