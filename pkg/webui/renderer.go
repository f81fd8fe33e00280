package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate = "layout.html"
	fieldTemplate  = "field.html"
)

// Renderer renders the page templates inside the shared layout. Each page is
// parsed into its own set so "title" and "content" can be redefined per page.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, name := range names {
		base := path.Base(name)
		if base == layoutTemplate || base == fieldTemplate {
			continue
		}

		t, err := template.New(layoutTemplate).ParseFS(templateFS,
			"templates/"+layoutTemplate, "templates/"+fieldTemplate, name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", base, err)
		}

		r.templates[base] = t
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("no such template %q", name)
	}

	return t.ExecuteTemplate(w, layoutTemplate, data)
}
