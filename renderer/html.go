package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="cs">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 80em; }
table { border-collapse: collapse; margin-bottom: 1em; }
th, td { border: 1px solid #ccc; padding: 0.2em 0.6em; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML converts a markdown report into a standalone HTML page.
func HTML(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return out.Bytes(), nil
}
