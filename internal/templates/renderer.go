package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed html/*.html
var files embed.FS

const layout = "master.html"

// Renderer executes the embedded page templates, each inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template together with the layout.
func New() (*Renderer, error) {
	pages := []Page{MainPage{}, MembersPage{}, DetailsPage{}, TestingPage{}}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		name := p.TemplateName()
		t, err := template.New(layout).ParseFS(files, "html/"+layout, "html/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	t, ok := r.pages[page.TemplateName()]
	if !ok {
		return fmt.Errorf("unknown template %s", page.TemplateName())
	}
	return t.ExecuteTemplate(w, layout, page)
}
