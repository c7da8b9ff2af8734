// Package templates renders the HTML pages and HTMX partials.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

const appName = "Volume of the Book"

// Layout wraps body in the shared page chrome
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | %s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<nav>
<a href="/">Daily Bread</a>
<a href="/read/John/1">Read</a>
<a href="/search">Search</a>
</nav>
<main>
`, templ.EscapeString(title), appName); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

// readURL links to a chapter in the reader
func readURL(book string, chapter int) string {
	return fmt.Sprintf("/read/%s/%d", url.PathEscape(book), chapter)
}
