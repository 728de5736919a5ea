// Package web holds the embedded presentation assets: page templates and
// static files.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"price": func(amount float64) string {
			return "$" + humanize.CommafWithDigits(amount, 2)
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the embedded static asset tree rooted below static/.
func Static() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}
	return sub, nil
}
