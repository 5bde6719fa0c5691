package view

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin/render"
)

// ===========================================================================
// Renderer
// Each page is parsed together with its layout so pages can redefine the
// "content" block independently. Pages under admin/ use the admin layout.
// ===========================================================================

const (
	publicLayout = "layouts/public.html"
	adminLayout  = "layouts/admin.html"
)

// Renderer implements gin's render.HTMLRender
type Renderer struct {
	templates map[string]*template.Template
}

// Load parses every page under dir. Names are paths relative to dir,
// e.g. "pages/index.html" or "admin/products.html".
func Load(dir string) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	if err := r.loadGroup(dir, "pages", publicLayout); err != nil {
		return nil, err
	}
	if err := r.loadGroup(dir, "admin", adminLayout); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) loadGroup(dir, group, layout string) error {
	pages, err := filepath.Glob(filepath.Join(dir, group, "*.html"))
	if err != nil {
		return fmt.Errorf("glob %s templates: %w", group, err)
	}
	partials, err := filepath.Glob(filepath.Join(dir, "partials", "*.html"))
	if err != nil {
		return fmt.Errorf("glob partials: %w", err)
	}

	for _, page := range pages {
		name := group + "/" + filepath.Base(page)
		files := append([]string{filepath.Join(dir, layout), page}, partials...)

		tmpl, err := template.New(filepath.Base(layout)).Funcs(FuncMap()).ParseFiles(files...)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return nil
}

// Instance returns the render for a page
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		// unknown page: let html/template report the missing template
		tmpl = template.Must(template.New(name).Parse(`{{template "missing"}}`))
	}
	return render.HTML{
		Template: tmpl,
		Name:     layoutName(name),
		Data:     data,
	}
}

// Has reports whether a page was loaded
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

func layoutName(page string) string {
	if strings.HasPrefix(page, "admin/") {
		return filepath.Base(adminLayout)
	}
	return filepath.Base(publicLayout)
}
