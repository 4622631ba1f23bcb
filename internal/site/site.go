// Package site renders the HTML pages.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/ozpv/ozpv/internal/assets"
	"github.com/ozpv/ozpv/internal/config"
	"github.com/ozpv/ozpv/internal/tracker"
	"github.com/ozpv/ozpv/internal/viewport"
)

// URLs of the files the shell links to.
const (
	StylesheetURL = "/pkg/ozpv.css"
	WasmExecURL   = "/pkg/wasm_exec.js"
	WasmURL       = "/pkg/eyes.wasm"
)

type eyeView struct {
	ID    string
	Src   string
	Style template.CSS
}

type linkView struct {
	Href  string
	Label string
	Icon  string
}

type page struct {
	Title      string
	Stylesheet string
	Favicon    string
	Site       config.Site

	Mobile    bool
	Container string
	Width     int
	Height    int
	Body      string
	Mascot    string
	Eyes      []eyeView
	Links     []linkView

	WasmExec string
	Wasm     string
}

// Renderer executes the page templates. The site content can be swapped while
// requests are being served.
type Renderer struct {
	home     *template.Template
	notFound *template.Template

	mu   sync.RWMutex
	site config.Site
}

// NewRenderer parses the templates found in fsys under templates/.
func NewRenderer(fsys fs.FS, content config.Site) (*Renderer, error) {
	home, err := template.ParseFS(fsys, "templates/layout.html", "templates/home.html")
	if err != nil {
		return nil, fmt.Errorf("parse home template: %w", err)
	}
	notFound, err := template.ParseFS(fsys, "templates/layout.html", "templates/notfound.html")
	if err != nil {
		return nil, fmt.Errorf("parse not found template: %w", err)
	}
	return &Renderer{home: home, notFound: notFound, site: content}, nil
}

// SetSite replaces the content used by later renders.
func (r *Renderer) SetSite(content config.Site) {
	r.mu.Lock()
	r.site = content
	r.mu.Unlock()
}

func (r *Renderer) Site() config.Site {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.site
}

func (r *Renderer) base() page {
	content := r.Site()
	return page{
		Title:      content.Title,
		Stylesheet: StylesheetURL,
		Favicon:    "/" + assets.FaviconName,
		Site:       content,
	}
}

// Home renders the home page with the given layout visible.
func (r *Renderer) Home(w io.Writer, mode viewport.LayoutMode) error {
	p := r.base()
	p.Mobile = mode == viewport.Mobile
	p.Container = tracker.ContainerID
	p.Width = assets.MascotWidth
	p.Height = assets.MascotHeight
	p.Body = "/" + assets.BodyName
	p.Mascot = "/" + assets.MascotName
	p.WasmExec = WasmExecURL
	p.Wasm = WasmURL
	for _, eye := range tracker.DefaultEyes() {
		p.Eyes = append(p.Eyes, eyeView{
			ID:    eye.ID,
			Src:   "/" + assets.EyeName,
			Style: template.CSS(tracker.Style(eye.Anchor)),
		})
	}
	for _, l := range p.Site.Links {
		p.Links = append(p.Links, linkView{Href: l.Href, Label: l.Label, Icon: "/" + assets.IconName(l.Icon)})
	}
	return execute(w, r.home, p)
}

// NotFound renders the fallback page.
func (r *Renderer) NotFound(w io.Writer) error {
	return execute(w, r.notFound, r.base())
}

// execute buffers the output so a failing template writes nothing.
func execute(w io.Writer, t *template.Template, p page) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
