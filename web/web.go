// Package web holds the HTML pages and static assets of the assistant UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutTemplate = "layout.html"

// Pages lists the tabs in display order. Each has a <name>.html template.
var Pages = []string{"home", "assistant", "dashboard", "reports", "about"}

// Renderer implements gin's render.HTMLRender. Every page is parsed together
// with the shared layout into its own template set.
type Renderer struct {
	dir string

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates, or the ones under dir when dir
// is not empty.
func NewRenderer(dir string) (*Renderer, error) {
	r := &Renderer{dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dir is the on-disk template directory, empty when serving embedded files.
func (r *Renderer) Dir() string {
	return r.dir
}

// Reload re-parses every page. The previous set stays active on error.
func (r *Renderer) Reload() error {
	fsys, err := r.templates()
	if err != nil {
		return err
	}

	pages := make(map[string]*template.Template, len(Pages))
	for _, name := range Pages {
		t, err := template.New(layoutTemplate).ParseFS(fsys, layoutTemplate, name+".html")
		if err != nil {
			return fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = t
	}

	r.mu.Lock()
	r.pages = pages
	r.mu.Unlock()
	return nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	r.mu.RLock()
	t, ok := r.pages[name]
	r.mu.RUnlock()

	if !ok {
		return render.Data{
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte("unknown page " + name),
		}
	}
	return render.HTML{Template: t, Name: layoutTemplate, Data: data}
}

func (r *Renderer) templates() (fs.FS, error) {
	if r.dir != "" {
		return os.DirFS(r.dir), nil
	}
	return fs.Sub(templateFS, "templates")
}

// Static serves the embedded stylesheet and images.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
