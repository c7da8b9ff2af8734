package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/reference"
	"github.com/jjenkins/volume/internal/service"
	"github.com/jjenkins/volume/internal/templates"
)

// chapterParams validates the :book and :chapter route parameters
func chapterParams(c *fiber.Ctx) (model.Book, int, error) {
	name, err := url.PathUnescape(c.Params("book"))
	if err != nil {
		return model.Book{}, 0, err
	}
	book, ok := model.LookupBook(name)
	if !ok {
		return model.Book{}, 0, fmt.Errorf("unknown book %q", name)
	}

	chapter, err := strconv.Atoi(c.Params("chapter"))
	if err != nil || chapter < 1 || chapter > book.Chapters {
		return model.Book{}, 0, fmt.Errorf("%s has no chapter %q", book.Name, c.Params("chapter"))
	}

	return book, chapter, nil
}

func ReaderHandler(scripture service.ScriptureGateway, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		book, number, err := chapterParams(c)
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString("Chapter not found")
		}

		chapter, err := scripture.GetChapter(c.UserContext(), book.Name, number)
		if err != nil {
			logger.Error("Error loading chapter", zap.String("book", book.Name), zap.Int("chapter", number), zap.Error(err))
			return c.Status(fiber.StatusBadGateway).SendString("Error loading chapter")
		}

		p := templates.ReaderPage{
			Book:    book.Name,
			Chapter: chapter,
			Number:  number,
			Books:   model.Books,
		}
		prev, hasPrev, next, hasNext := model.Navigate(book.Name, number)
		if hasPrev {
			p.Prev = &prev
		}
		if hasNext {
			p.Next = &next
		}

		page := templates.Reader(p)
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}

// ReaderRedirectHandler turns the book picker form into a chapter URL
func ReaderRedirectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		book, ok := model.LookupBook(c.Query("book", "John"))
		if !ok {
			return c.Status(fiber.StatusNotFound).SendString("Book not found")
		}
		chapter := c.QueryInt("chapter", 1)
		if chapter < 1 || chapter > book.Chapters {
			chapter = 1
		}
		return c.Redirect(fmt.Sprintf("/read/%s/%d", url.PathEscape(book.Name), chapter), fiber.StatusSeeOther)
	}
}

func InsightHandler(scripture service.ScriptureGateway, insights *service.InsightService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		book, ok := model.LookupBook(c.FormValue("book"))
		chapter, cerr := strconv.Atoi(c.FormValue("chapter"))
		verseNum, verr := strconv.Atoi(c.FormValue("verse"))
		if !ok || cerr != nil || verr != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid verse")
		}

		citation := reference.Cite(book.Name, chapter, verseNum)
		text := lookupInsight(c, scripture, insights, citation, book.Name, chapter)

		page := templates.Insight(citation, text)
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}

// lookupInsight fetches the verse text and asks for commentary on it.
// Failures come back as the literal insight error message.
func lookupInsight(c *fiber.Ctx, scripture service.ScriptureGateway, insights *service.InsightService, citation, book string, chapter int) string {
	passage, err := scripture.SearchPassage(c.UserContext(), citation)
	if err != nil || passage == nil || len(passage.Verses) == 0 {
		return service.InsightErrorMessage
	}
	return insights.Insight(c.UserContext(), passage.Verses[0], service.ReadingContext(book, chapter))
}
