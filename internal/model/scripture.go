package model

import "fmt"

// Verse represents a single verse returned by the scripture API
type Verse struct {
	BookID   string `json:"book_id"`
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`

	// Reference is only set when the entry stands for a whole passage
	// rather than a single verse.
	Reference string `json:"reference,omitempty"`
}

// Citation returns the display citation for the verse
func (v Verse) Citation() string {
	if v.Reference != "" {
		return v.Reference
	}
	return fmt.Sprintf("%s %d:%d", v.BookName, v.Chapter, v.Verse)
}

// Chapter represents a chapter or passage lookup result
type Chapter struct {
	Reference     string  `json:"reference"`
	Verses        []Verse `json:"verses"`
	Text          string  `json:"text"`
	TranslationID string  `json:"translation_id,omitempty"`
}

// RestrictedBook is a whitelist entry used by the daily selection
type RestrictedBook struct {
	Name         string
	ChapterCount int
}

// RestrictedBooks is the fixed whitelist the daily devotional draws from.
// Order matters: the daily seed indexes into it.
var RestrictedBooks = []RestrictedBook{
	{Name: "Psalms", ChapterCount: 150},
	{Name: "Matthew", ChapterCount: 28},
	{Name: "Proverbs", ChapterCount: 31},
	{Name: "Song of Solomon", ChapterCount: 8},
	{Name: "Philippians", ChapterCount: 4},
	{Name: "Romans", ChapterCount: 16},
	{Name: "Mark", ChapterCount: 16},
	{Name: "Isaiah", ChapterCount: 66},
	{Name: "John", ChapterCount: 21},
}
