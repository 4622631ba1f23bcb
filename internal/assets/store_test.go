package assets

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ozpv/ozpv/internal/config"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	static := fstest.MapFS{
		"ozpv.css": &fstest.MapFile{Data: []byte("body{margin:0}")},
	}
	s, err := Render(static, "pkg")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return s
}

func TestRenderNames(t *testing.T) {
	s := testStore(t)
	want := []string{
		FaviconName,
		BodyName,
		EyeName,
		MascotName,
		"icons/git.svg",
		"icons/github.svg",
		"pkg/ozpv.css",
	}
	got := s.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for _, name := range want {
		if _, ok := s.Get(name); !ok {
			t.Fatalf("asset %q missing from %v", name, got)
		}
	}
	if a, _ := s.Get("/pkg/ozpv.css"); a == nil || !strings.HasPrefix(a.ContentType, "text/css") {
		t.Fatalf("css content type = %+v", a)
	}
}

func TestSVGs(t *testing.T) {
	s := testStore(t)
	for _, name := range []string{BodyName, EyeName, MascotName, IconName("github"), IconName("git")} {
		a, _ := s.Get(name)
		if !strings.Contains(string(a.Data), "<svg") || !strings.Contains(string(a.Data), "</svg>") {
			t.Fatalf("%s is not an svg document", name)
		}
		if !strings.HasPrefix(a.ContentType, "image/svg+xml") {
			t.Fatalf("%s content type = %q", name, a.ContentType)
		}
	}
	body, _ := s.Get(BodyName)
	mascot, _ := s.Get(MascotName)
	if len(mascot.Data) <= len(body.Data) {
		t.Fatalf("combined image should contain the body and the pupils")
	}
}

func TestFavicon(t *testing.T) {
	data, err := FaviconPNG()
	if err != nil {
		t.Fatalf("FaviconPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode favicon: %v", err)
	}
	if b := img.Bounds(); b.Dx() != faviconSize || b.Dy() != faviconSize {
		t.Fatalf("favicon bounds = %v", b)
	}
	if _, _, _, a := img.At(16, 17).RGBA(); a == 0 {
		t.Fatalf("favicon centre is transparent")
	}
	if _, _, _, a := img.At(0, 31).RGBA(); a != 0 {
		t.Fatalf("favicon corner is painted")
	}
}

func TestServeHTTPConditional(t *testing.T) {
	s := testStore(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+EyeName, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("no ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/"+EyeName, nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("conditional status = %d, want 304", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.svg", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing asset status = %d", rec.Code)
	}
}

func TestETagsDiffer(t *testing.T) {
	s := testStore(t)
	body, _ := s.Get(BodyName)
	eye, _ := s.Get(EyeName)
	if body.ETag == eye.ETag {
		t.Fatalf("different assets share an ETag")
	}
}

func TestWriteDir(t *testing.T) {
	s := testStore(t)
	dir := t.TempDir()
	if err := s.WriteDir(dir); err != nil {
		t.Fatalf("WriteDir() error = %v", err)
	}
	for _, name := range s.Names() {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
}

func TestConfigIconsRendered(t *testing.T) {
	if len(config.Icons) != len(Icons) {
		t.Fatalf("config allows %d icons, %d are rendered", len(config.Icons), len(Icons))
	}
	s := testStore(t)
	for _, name := range config.Icons {
		if _, ok := s.Get(IconName(name)); !ok {
			t.Fatalf("icon %q accepted by config but not rendered", name)
		}
	}
}
