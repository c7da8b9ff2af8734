package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjenkins/volume/internal/model"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestSearchResults(t *testing.T) {
	tests := []struct {
		name    string
		result  model.SearchResult
		want    []string
		notWant []string
	}{
		{
			name:    "error",
			result:  model.SearchResult{Error: "No results <found>"},
			want:    []string{`<p class="empty">No results &lt;found&gt;</p>`},
			notWant: []string{`<ul class="results">`},
		},
		{
			name:   "passage",
			result: model.SearchResult{Reference: "Psalms 23", Text: "The LORD is my shepherd.\n\nHe maketh me <lie> down."},
			want: []string{
				"<h3>Psalms 23</h3>",
				"<p>The LORD is my shepherd.</p><p>He maketh me &lt;lie&gt; down.</p>",
			},
		},
		{
			name: "verses",
			result: model.SearchResult{Verses: []model.Verse{
				{BookName: "Song of Solomon", Chapter: 2, Verse: 4, Text: "his banner over me was love"},
				{Reference: "Hebrews 11:1", Text: "Now faith <is> the substance"},
			}},
			want: []string{
				`<a href="/read/Song%20of%20Solomon/2">Song of Solomon 2:4</a>`,
				`<a href="#">Hebrews 11:1</a> <span>Now faith &lt;is&gt; the substance</span>`,
			},
			notWant: []string{"suggested by AI", "<is>"},
		},
		{
			name:   "ai verses",
			result: model.SearchResult{IsAIGenerated: true, Verses: []model.Verse{{BookName: "Romans", Chapter: 10, Verse: 17, Text: "faith cometh by hearing"}}},
			want:   []string{"suggested by AI", "Romans 10:17"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, SearchResults(tt.result))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestSearchPage(t *testing.T) {
	out := render(t, Search(`"><script>`, nil))
	assert.Contains(t, out, "<title>Search | Volume of the Book</title>")
	assert.Contains(t, out, `<option value="Song of Solomon">`)
	assert.Contains(t, out, `<div id="results"></div>`)
	assert.NotContains(t, out, "<script>")
}

func TestHome(t *testing.T) {
	out := render(t, Home(model.Devotional{
		Title:   "Called <to> the Feast",
		Verse:   "Matthew 22:3",
		Content: "Come.\n\nAll is ready.",
		Prayer:  "Amen.",
	}, "Monday, January 1, 2024"))

	assert.Contains(t, out, "<h1>Called &lt;to&gt; the Feast</h1>")
	assert.Contains(t, out, "<blockquote>Matthew 22:3</blockquote>")
	assert.Contains(t, out, "<p>Come.</p><p>All is ready.</p>")
}

func TestReader(t *testing.T) {
	prev := model.Position{Book: "Malachi", Chapter: 4}
	next := model.Position{Book: "Matthew", Chapter: 2}
	out := render(t, Reader(ReaderPage{
		Book:    "Matthew",
		Number:  1,
		Chapter: &model.Chapter{Reference: "Matthew 1", Verses: []model.Verse{{BookName: "Matthew", Chapter: 1, Verse: 1, Text: "The book of the generation"}}},
		Prev:    &prev,
		Next:    &next,
		Books:   model.Books,
	}))

	assert.Contains(t, out, `<option value="Matthew" selected>Matthew</option>`)
	assert.Contains(t, out, `<li value="1"><span>The book of the generation</span>`)
	assert.Contains(t, out, `rel="prev" href="/read/Malachi/4"`)
	assert.Contains(t, out, `rel="next" href="/read/Matthew/2"`)
}

func TestInsight(t *testing.T) {
	out := render(t, Insight("John 3:16", "Agape <love>."))
	assert.Equal(t, `<section class="insight"><h3>John 3:16</h3><p>Agape &lt;love&gt;.</p></section>`, out)
}
