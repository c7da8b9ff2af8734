package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/jjenkins/volume/internal/model"
)

var esc = templ.EscapeString[string]

// Home renders the daily devotional page
func Home(d model.Devotional, date string) templ.Component {
	return Layout("Daily Bread", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<article class="devotional">
<p class="date">%s</p>
<h1>%s</h1>
<blockquote>%s</blockquote>
<div class="content">%s</div>
<h2>Prayer</h2>
<p class="prayer">%s</p>
</article>`, esc(date), esc(d.Title), esc(d.Verse), paragraphs(d.Content), esc(d.Prayer))
		return err
	}))
}

// ReaderPage is the view model for a chapter
type ReaderPage struct {
	Book    string
	Chapter *model.Chapter
	Number  int
	Prev    *model.Position
	Next    *model.Position
	Books   []model.Book
}

// Reader renders a chapter with insight links on every verse
func Reader(p ReaderPage) templ.Component {
	title := fmt.Sprintf("%s %d", p.Book, p.Number)
	return Layout(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<form class="picker" method="get" action="/read">`)
		b.WriteString(`<select name="book">`)
		for _, book := range p.Books {
			selected := ""
			if book.Name == p.Book {
				selected = " selected"
			}
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, esc(book.Name), selected, esc(book.Name))
		}
		fmt.Fprintf(&b, `</select><input type="number" name="chapter" min="1" value="%d"><button>Go</button></form>`, p.Number)

		fmt.Fprintf(&b, "\n<h1>%s</h1>\n<ol class=\"verses\">\n", esc(p.Chapter.Reference))
		for _, v := range p.Chapter.Verses {
			fmt.Fprintf(&b, `<li value="%d"><span>%s</span> <button hx-post="/insight" hx-target="#insight" hx-vals='{"book":"%s","chapter":"%d","verse":"%d"}'>Insight</button></li>`+"\n",
				v.Verse, esc(v.Text), esc(jsonString(v.BookName)), v.Chapter, v.Verse)
		}
		b.WriteString("</ol>\n<aside id=\"insight\"></aside>\n<nav class=\"chapters\">")
		if p.Prev != nil {
			fmt.Fprintf(&b, `<a rel="prev" href="%s">%s %d</a>`, readURL(p.Prev.Book, p.Prev.Chapter), esc(p.Prev.Book), p.Prev.Chapter)
		}
		if p.Next != nil {
			fmt.Fprintf(&b, `<a rel="next" href="%s">%s %d</a>`, readURL(p.Next.Book, p.Next.Chapter), esc(p.Next.Book), p.Next.Chapter)
		}
		b.WriteString("</nav>")

		_, err := io.WriteString(w, b.String())
		return err
	}))
}

// Insight renders the commentary partial for one verse
func Insight(citation, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="insight"><h3>%s</h3>%s</section>`, esc(citation), paragraphs(text))
		return err
	})
}

// Search renders the search page with its results
func Search(query string, result *model.SearchResult) templ.Component {
	return Layout("Search", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form method="get" action="/search" hx-get="/search" hx-target="#results">
<input type="search" name="q" value="%s" list="book-names" placeholder="John 3:16, faith, the good shepherd">
<button>Search</button>
</form>
`, esc(query)); err != nil {
			return err
		}
		var names strings.Builder
		names.WriteString(`<datalist id="book-names">`)
		for _, book := range model.Books {
			fmt.Fprintf(&names, `<option value="%s">`, esc(book.Name))
		}
		names.WriteString("</datalist>\n<div id=\"results\">")
		if _, err := io.WriteString(w, names.String()); err != nil {
			return err
		}
		if result != nil {
			if err := SearchResults(*result).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>")
		return err
	}))
}

// SearchResults renders the result list partial
func SearchResults(r model.SearchResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		switch r.Kind() {
		case model.KindError:
			fmt.Fprintf(&b, `<p class="empty">%s</p>`, esc(r.Error))
		case model.KindPassage:
			fmt.Fprintf(&b, `<article><h3>%s</h3>%s</article>`, esc(r.Reference), paragraphs(r.Text))
		default:
			if r.IsAIGenerated {
				b.WriteString(`<p class="note">These passages were suggested by AI from your search.</p>`)
			}
			b.WriteString(`<ul class="results">`)
			for _, v := range r.Verses {
				href := "#"
				if v.Reference == "" {
					href = readURL(v.BookName, v.Chapter)
				}
				fmt.Fprintf(&b, `<li><a href="%s">%s</a> <span>%s</span></li>`, href, esc(v.Citation()), esc(v.Text))
			}
			b.WriteString(`</ul>`)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// paragraphs splits text on blank lines into escaped <p> elements
func paragraphs(text string) string {
	var b strings.Builder
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>", esc(p))
	}
	return b.String()
}

// jsonString escapes s for embedding inside a JSON string literal
func jsonString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
