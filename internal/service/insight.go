package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/model"
)

// Messages shown in place of an insight
const (
	InsightEmptyMessage = "No insight found."
	InsightErrorMessage = "Error fetching insight. Please try again."
)

// InsightService explains a single verse
type InsightService struct {
	ai     AIGateway
	logger *zap.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(ai AIGateway, logger *zap.Logger) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{ai: ai, logger: logger}
}

// ReadingContext describes where the reader is, e.g. "Reading Chapter 3 of John"
func ReadingContext(book string, chapter int) string {
	return fmt.Sprintf("Reading Chapter %d of %s", chapter, book)
}

// Insight returns commentary for verse, or a literal message on failure
func (s *InsightService) Insight(ctx context.Context, verse model.Verse, readingContext string) string {
	prompt := fmt.Sprintf(`Provide a deep theological and historical insight for this verse: "%s - %s".
The current context is: %s. Keep the tone reverent, scholarly yet accessible.
Focus on original language nuances if applicable.`, verse.Citation(), verse.Text, readingContext)

	text, err := s.ai.CompleteText(ctx, prompt)
	if err != nil {
		s.logger.Warn("Insight failed", zap.String("verse", verse.Citation()), zap.Error(err))
		return InsightErrorMessage
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return InsightEmptyMessage
	}
	return text
}
