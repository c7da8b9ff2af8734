package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/reference"
)

// Selection is the deterministic book and chapter chosen for a date
type Selection struct {
	Seed    int
	Book    model.RestrictedBook
	Chapter int
}

// DailySeed derives the integer seed for a calendar date (YYYYMMDD).
// The time of day is ignored.
func DailySeed(date time.Time) int {
	y, m, d := date.Date()
	return y*10000 + int(m)*100 + d
}

// SelectDaily picks the book and chapter for a date from books
func SelectDaily(date time.Time, books []model.RestrictedBook) Selection {
	seed := DailySeed(date)
	book := books[seed%len(books)]
	return Selection{
		Seed:    seed,
		Book:    book,
		Chapter: (seed*13)%book.ChapterCount + 1,
	}
}

// VerseIndex picks the verse position within a chapter of count verses
func VerseIndex(seed, count int) (int, error) {
	if count <= 0 {
		return 0, ErrDataUnavailable
	}
	return (seed * 7) % count, nil
}

// FallbackDevotional is shown whenever the daily reading cannot be built
func FallbackDevotional() model.Devotional {
	return model.Devotional{
		Title:   "The Lamp of the Word",
		Verse:   "Psalms 119:105",
		Content: "Thy word is a lamp unto my feet, and a light unto my path. In the journey of life, we often find ourselves in dark and uncertain places.",
		Prayer:  "Lord, thank You for the guidance of Your Word. Amen.",
	}
}

// DailyService builds the daily devotional
type DailyService struct {
	scripture ScriptureGateway
	ai        AIGateway
	books     []model.RestrictedBook
	logger    *zap.Logger
}

// NewDailyService creates a new DailyService over the fixed whitelist
func NewDailyService(scripture ScriptureGateway, ai AIGateway, logger *zap.Logger) *DailyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyService{
		scripture: scripture,
		ai:        ai,
		books:     model.RestrictedBooks,
		logger:    logger,
	}
}

// Devotional returns the devotional for date. It never fails: any error
// yields FallbackDevotional.
func (s *DailyService) Devotional(ctx context.Context, date time.Time) model.Devotional {
	d, err := s.compute(ctx, date)
	if err != nil {
		s.logger.Warn("Daily devotional unavailable, using fallback",
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err))
		return FallbackDevotional()
	}
	return d
}

func (s *DailyService) compute(ctx context.Context, date time.Time) (model.Devotional, error) {
	sel := SelectDaily(date, s.books)

	// 1. Fetch the selected chapter
	chapter, err := s.scripture.GetChapter(ctx, sel.Book.Name, sel.Chapter)
	if err != nil {
		return model.Devotional{}, fmt.Errorf("failed to fetch chapter: %w", err)
	}

	// 2. Pick the verse from the seed
	idx, err := VerseIndex(sel.Seed, len(chapter.Verses))
	if err != nil {
		return model.Devotional{}, fmt.Errorf("%s %d: %w", sel.Book.Name, sel.Chapter, err)
	}
	verse := chapter.Verses[idx]
	citation := reference.Cite(verse.BookName, verse.Chapter, verse.Verse)

	s.logger.Debug("Selected daily verse",
		zap.Int("seed", sel.Seed),
		zap.String("citation", citation))

	// 3. Ask for a reflection anchored to that verse
	prompt := fmt.Sprintf(`Generate the "Daily Bread" for today based on this specific verse: "%s - %s".
1. Provide a title for this Daily Bread.
2. Write a short reflective message (about 200 words).
3. Conclude with a short prayer.`, citation, verse.Text)

	raw, err := s.ai.CompleteStructured(ctx, prompt, devotionalSchema)
	if err != nil {
		return model.Devotional{}, fmt.Errorf("failed to generate reflection: %w", err)
	}

	var d model.Devotional
	if err := decodeStructured(raw, devotionalSchema, &d); err != nil {
		return model.Devotional{}, fmt.Errorf("failed to decode reflection: %w", err)
	}

	// The model's own phrasing of the verse is not trusted
	d.Verse = citation

	return d, nil
}
