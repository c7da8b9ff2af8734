// Package reference parses and formats canonical scripture citations of the
// form "{Book} {Chapter}:{Verse}".
package reference

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/jjenkins/volume/internal/model"
)

// Ref is a parsed citation. Chapter and Verse are 0 when absent.
type Ref struct {
	Book     string `json:"book"`
	Chapter  int    `json:"chapter,omitempty"`
	Verse    int    `json:"verse,omitempty"`
	VerseEnd int    `json:"verse_end,omitempty"`
}

// citation grammar, e.g. "John 3:16", "1 John 4:7-8", "Song of Solomon 2", "Jude"
//
//nolint:govet // participle grammar tags are not standard struct tags
type citation struct {
	Ordinal string     `@Int?`
	Words   []string   `@Ident+`
	Locus   *locusPart `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type locusPart struct {
	Chapter int        `@Int`
	Verses  *versePart `( ":" @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Start int  `@Int`
	End   *int `( "-" @Int )?`
}

var citationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var citationParser = participle.MustBuild[citation](
	participle.Lexer(citationLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a human citation. Known book names are canonicalised
// ("psalm 23" becomes "Psalms 23"); unknown ones are kept as written.
func Parse(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, fmt.Errorf("empty reference")
	}

	parsed, err := citationParser.ParseString("", s)
	if err != nil {
		return Ref{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	book := strings.Join(parsed.Words, " ")
	if parsed.Ordinal != "" {
		book = parsed.Ordinal + " " + book
	}
	if b, ok := model.LookupBook(book); ok {
		book = b.Name
	}

	ref := Ref{Book: book}
	if parsed.Locus != nil {
		ref.Chapter = parsed.Locus.Chapter
		if v := parsed.Locus.Verses; v != nil {
			ref.Verse = v.Start
			if v.End != nil {
				if *v.End < v.Start {
					return Ref{}, fmt.Errorf("invalid reference %q: verse range ends before it starts", s)
				}
				if *v.End > v.Start {
					ref.VerseEnd = *v.End
				}
			}
		}
	}

	return ref, nil
}

// String renders the canonical form
func (r Ref) String() string {
	var b strings.Builder
	b.WriteString(r.Book)
	if r.Chapter == 0 {
		return b.String()
	}
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(r.Chapter))
	if r.Verse == 0 {
		return b.String()
	}
	b.WriteString(":")
	b.WriteString(strconv.Itoa(r.Verse))
	if r.VerseEnd > 0 {
		b.WriteString("-")
		b.WriteString(strconv.Itoa(r.VerseEnd))
	}
	return b.String()
}

// Normalize returns the canonical form of s, or s trimmed when it does not parse.
func Normalize(s string) string {
	ref, err := Parse(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return ref.String()
}

// Cite formats a single-verse citation
func Cite(book string, chapter, verse int) string {
	return Ref{Book: book, Chapter: chapter, Verse: verse}.String()
}
