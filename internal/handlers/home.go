package handlers

import (
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jjenkins/volume/internal/service"
	"github.com/jjenkins/volume/internal/templates"
)

const dateLayout = "2006-01-02"

// requestDate reads ?date=YYYY-MM-DD, defaulting to today
func requestDate(c *fiber.Ctx, now func() time.Time) (time.Time, error) {
	if raw := c.Query("date"); raw != "" {
		return time.ParseInLocation(dateLayout, raw, time.Local)
	}
	return now(), nil
}

func HomeHandler(daily *service.DailyService, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := requestDate(c, now)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid date, expected YYYY-MM-DD")
		}

		devotional := daily.Devotional(c.UserContext(), date)

		page := templates.Home(devotional, date.Format("Monday, January 2, 2006"))
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}
