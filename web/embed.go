// Package web holds the HTML templates and static assets compiled into the
// binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"ratingClass": func(rating string) string {
		return "chip chip-" + rating
	},
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static returns the static asset tree rooted at "static".
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
