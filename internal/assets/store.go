// Package assets renders and serves the site's images and bundles the
// embedded stylesheet and scripts.
package assets

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Fixed asset names, relative to the site root.
const (
	BodyName    = "gopher-no-eyes.svg"
	EyeName     = "gopher-eye.svg"
	MascotName  = "gopher.svg"
	FaviconName = "favicon.png"
	IconDir     = "icons"
)

// IconName returns the asset name of a link icon.
func IconName(icon string) string { return path.Join(IconDir, icon+".svg") }

// Asset is one rendered file.
type Asset struct {
	Name        string
	ContentType string
	Data        []byte
	ETag        string
}

// Store holds every asset in memory. It is read-only once built.
type Store struct {
	assets  map[string]*Asset
	modTime time.Time
}

func newStore() *Store {
	return &Store{assets: map[string]*Asset{}, modTime: time.Now().UTC().Truncate(time.Second)}
}

// Render builds the images and adds every file of static under prefix.
// static may be nil.
func Render(static fs.FS, prefix string) (*Store, error) {
	s := newStore()
	s.add(BodyName, BodySVG())
	s.add(EyeName, EyeSVG())
	s.add(MascotName, MascotSVG())
	for name, draw := range Icons {
		s.add(IconName(name), draw())
	}
	fav, err := FaviconPNG()
	if err != nil {
		return nil, err
	}
	s.add(FaviconName, fav)

	if static != nil {
		if err := s.addFS(static, prefix); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) add(name string, data []byte) {
	sum := blake2b.Sum256(data)
	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	s.assets[name] = &Asset{
		Name:        name,
		ContentType: ctype,
		Data:        data,
		ETag:        `"` + hex.EncodeToString(sum[:16]) + `"`,
	}
}

func (s *Store) addFS(fsys fs.FS, prefix string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read static %s: %w", p, err)
		}
		s.add(path.Join(prefix, p), data)
		return nil
	})
}

// Get returns the asset stored under name.
func (s *Store) Get(name string) (*Asset, bool) {
	a, ok := s.assets[strings.TrimPrefix(name, "/")]
	return a, ok
}

// Names lists every asset name in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.assets))
	for name := range s.assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServeHTTP serves the asset named by the request path. Conditional requests
// are answered from the ETag.
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, ok := s.Get(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h := w.Header()
	h.Set("Content-Type", a.ContentType)
	h.Set("ETag", a.ETag)
	h.Set("Cache-Control", "public, max-age=3600")
	http.ServeContent(w, r, a.Name, s.modTime, bytes.NewReader(a.Data))
}

// WriteDir writes every asset below dir, creating directories as needed.
func (s *Store) WriteDir(dir string) error {
	for _, name := range s.Names() {
		a := s.assets[name]
		dst := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, a.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
	}
	return nil
}
