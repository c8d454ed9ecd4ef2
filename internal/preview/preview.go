// Package preview renders the constrained Markdown dialect to a standalone
// HTML page so a page can be eyeballed before write-back. Rendering quality
// is goldmark's business; the dialect's details/summary wrappers and
// placeholder comments pass through as raw HTML.
package preview

import (
	"bytes"
	"html"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/frherrer/adfsync/internal/domain"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Table,
		extension.TaskList,
	),
	goldmark.WithRendererOptions(
		// Required for <details>/<summary> and <u> to survive.
		gmhtml.WithUnsafe(),
	),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 52rem; margin: 2rem auto; font-family: sans-serif; line-height: 1.5; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
pre { background: #f5f5f5; padding: 0.8rem; overflow-x: auto; }
blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 1rem; color: #555; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Render converts Markdown to a full HTML page.
func Render(source []byte, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(source, &body); err != nil {
		return nil, domain.NewSyncError("convert", "", "failed to render preview", err)
	}
	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title string
		Body  string
	}{Title: html.EscapeString(title), Body: body.String()})
	if err != nil {
		return nil, domain.NewSyncError("convert", "", "failed to render page template", err)
	}
	return page.Bytes(), nil
}
