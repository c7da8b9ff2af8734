package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/service"
)

// Services bundles what the routes call into
type Services struct {
	Scripture service.ScriptureGateway
	Daily     *service.DailyService
	Search    *service.SearchResolver
	Insights  *service.InsightService
	Assistant *service.StudyAssistant
	Logger    *zap.Logger
	Now       func() time.Time
}

// Register mounts the page and JSON routes on app
func Register(app *fiber.App, s Services) {
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	if s.Now == nil {
		s.Now = time.Now
	}

	// Pages
	app.Get("/", HomeHandler(s.Daily, s.Now))
	app.Get("/read", ReaderRedirectHandler())
	app.Get("/read/:book/:chapter", ReaderHandler(s.Scripture, s.Logger))
	app.Get("/search", SearchHandler(s.Search))
	app.Post("/insight", InsightHandler(s.Scripture, s.Insights))

	// JSON API
	api := app.Group("/api")
	api.Get("/daily", DailyAPIHandler(s.Daily, s.Now))
	api.Get("/search", SearchAPIHandler(s.Search))
	api.Get("/books", BooksAPIHandler())
	api.Get("/chapters/:book/:chapter", ChapterAPIHandler(s.Scripture, s.Logger))
	api.Post("/insight", InsightAPIHandler(s.Insights))
	api.Post("/chat", ChatAPIHandler(s.Assistant))
}
