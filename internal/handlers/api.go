package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/service"
)

type insightRequest struct {
	Verse   model.Verse `json:"verse"`
	Context string      `json:"context"`
}

type insightResponse struct {
	Insight string `json:"insight"`
}

type chatRequest struct {
	Transcript model.Transcript `json:"transcript"`
	Message    string           `json:"message"`
}

type chatResponse struct {
	Transcript model.Transcript `json:"transcript"`
}

func DailyAPIHandler(daily *service.DailyService, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := requestDate(c, now)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		return c.JSON(daily.Devotional(c.UserContext(), date))
	}
}

// SearchAPIHandler always answers 200; a failed search is an error-shaped result
func SearchAPIHandler(resolver *service.SearchResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(resolver.Resolve(c.UserContext(), c.Query("q")))
	}
}

// bookSuggestionLimit caps the typeahead list on the search box
const bookSuggestionLimit = 5

// BooksAPIHandler suggests book names for ?q=; an empty q lists the whole canon
func BooksAPIHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")
		if q == "" {
			return c.JSON(model.Books)
		}
		books := model.SuggestBooks(q, bookSuggestionLimit)
		if books == nil {
			books = []model.Book{}
		}
		return c.JSON(books)
	}
}

func ChapterAPIHandler(scripture service.ScriptureGateway, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		book, number, err := chapterParams(c)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}

		chapter, err := scripture.GetChapter(c.UserContext(), book.Name, number)
		if err != nil {
			logger.Error("Error loading chapter", zap.String("book", book.Name), zap.Int("chapter", number), zap.Error(err))
			return fiber.NewError(fiber.StatusBadGateway, "error loading chapter")
		}

		return c.JSON(chapter)
	}
}

func InsightAPIHandler(insights *service.InsightService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req insightRequest
		if err := c.BodyParser(&req); err != nil || req.Verse.Text == "" {
			return fiber.NewError(fiber.StatusBadRequest, "verse with text is required")
		}

		readingContext := req.Context
		if readingContext == "" && req.Verse.BookName != "" {
			readingContext = service.ReadingContext(req.Verse.BookName, req.Verse.Chapter)
		}

		return c.JSON(insightResponse{Insight: insights.Insight(c.UserContext(), req.Verse, readingContext)})
	}
}

func ChatAPIHandler(assistant *service.StudyAssistant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid chat request")
		}
		for _, msg := range req.Transcript {
			if msg.Role != model.RoleUser && msg.Role != model.RoleModel {
				return fiber.NewError(fiber.StatusBadRequest, "transcript roles must be user or model")
			}
		}

		return c.JSON(chatResponse{Transcript: assistant.Reply(c.UserContext(), req.Transcript, req.Message)})
	}
}
