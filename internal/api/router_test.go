package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ozpv/ozpv/internal/assets"
	"github.com/ozpv/ozpv/internal/config"
	"github.com/ozpv/ozpv/internal/site"
	"github.com/ozpv/ozpv/internal/utils"
	"github.com/ozpv/ozpv/web"
)

func newTestServer(t *testing.T, wasmPath string) (*Server, *bytes.Buffer) {
	t.Helper()
	pages, err := site.NewRenderer(web.Templates, config.Default().Site)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	store, err := assets.Render(web.Static(), "pkg")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var logs bytes.Buffer
	return &Server{
		Pages:    pages,
		Assets:   store,
		WasmPath: wasmPath,
		Log:      utils.NewWriterLogger(&logs),
	}, &logs
}

func do(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	s, _ := newTestServer(t, "")
	h := NewHandler(s)

	rec := do(h, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `id="left-eye"`) || !strings.Contains(body, `id="right-eye"`) {
		t.Fatalf("home page without eyes:\n%s", body)
	}
	if !strings.Contains(body, `<div id="mobile-layout" class="layout" hidden>`) {
		t.Fatalf("home page without hint is not desktop")
	}
	if got := rec.Header().Get("Accept-CH"); got != "Sec-CH-Viewport-Width" {
		t.Fatalf("Accept-CH = %q", got)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestHomeViewportHint(t *testing.T) {
	s, _ := newTestServer(t, "")
	h := NewHandler(s)

	rec := do(h, http.MethodGet, "/", http.Header{"Sec-Ch-Viewport-Width": {"400"}})
	if !strings.Contains(rec.Body.String(), `<div id="desktop-layout" class="layout" hidden>`) {
		t.Fatalf("narrow viewport hint did not select the mobile layout")
	}
}

func TestUnknownPathsRenderNotFound(t *testing.T) {
	s, _ := newTestServer(t, "")
	h := NewHandler(s)

	for _, target := range []string{"/about", "/index.html", "/pkg/", "/icons/unknown.svg", "/a/b/c?x=1"} {
		rec := do(h, http.MethodGet, target, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want 404", target, rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Page not found.") || !strings.Contains(body, `<a href="/" class="button">Return home</a>`) {
			t.Fatalf("GET %s did not render the not found page:\n%s", target, body)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t, "")
	rec := do(NewHandler(s), http.MethodPost, "/", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST / status = %d, want 405", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, "")
	rec := do(NewHandler(s), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "OK" {
		t.Fatalf("GET /health = %d %q", rec.Code, rec.Body.String())
	}
}

func TestAssets(t *testing.T) {
	s, _ := newTestServer(t, "")
	h := NewHandler(s)

	tests := []struct {
		target string
		ctype  string
	}{
		{"/pkg/ozpv.css", "text/css"},
		{"/pkg/wasm_exec.js", "javascript"},
		{"/gopher-no-eyes.svg", "image/svg+xml"},
		{"/gopher-eye.svg", "image/svg+xml"},
		{"/gopher.svg", "image/svg+xml"},
		{"/icons/github.svg", "image/svg+xml"},
		{"/icons/git.svg", "image/svg+xml"},
		{"/favicon.png", "image/png"},
	}
	for _, tt := range tests {
		rec := do(h, http.MethodGet, tt.target, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", tt.target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, tt.ctype) {
			t.Fatalf("GET %s Content-Type = %q, want %q", tt.target, ct, tt.ctype)
		}
		etag := rec.Header().Get("ETag")
		if etag == "" {
			t.Fatalf("GET %s has no ETag", tt.target)
		}
		rec = do(h, http.MethodGet, tt.target, http.Header{"If-None-Match": {etag}})
		if rec.Code != http.StatusNotModified {
			t.Fatalf("conditional GET %s status = %d, want 304", tt.target, rec.Code)
		}
	}
}

func TestWasm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eyes.wasm")
	s, _ := newTestServer(t, path)
	h := NewHandler(s)

	rec := do(h, http.MethodGet, "/pkg/eyes.wasm", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing wasm status = %d, want 404", rec.Code)
	}

	payload := []byte("\x00asm\x01\x00\x00\x00")
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatal(err)
	}
	rec = do(h, http.MethodGet, "/pkg/eyes.wasm", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("wasm status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/wasm" {
		t.Fatalf("wasm Content-Type = %q", ct)
	}
	if !bytes.Equal(rec.Body.Bytes(), payload) {
		t.Fatalf("wasm body = %q", rec.Body.Bytes())
	}
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t, "")
	h := NewHandler(s)

	rec := do(h, http.MethodGet, "/health", nil)
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Fatalf("generated request id %q: %v", rec.Header().Get(RequestIDHeader), err)
	}

	id := uuid.NewString()
	rec = do(h, http.MethodGet, "/health", http.Header{RequestIDHeader: {id}})
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Fatalf("request id = %q, want %q", got, id)
	}

	rec = do(h, http.MethodGet, "/health", http.Header{RequestIDHeader: {"<script>"}})
	if got := rec.Header().Get(RequestIDHeader); got == "<script>" {
		t.Fatalf("malformed request id echoed")
	}
}

func TestAccessLogAndCompression(t *testing.T) {
	s, logs := newTestServer(t, "")
	h := NewHandler(s)

	rec := do(h, http.MethodGet, "/", http.Header{"Accept-Encoding": {"gzip"}})
	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("home page not compressed")
	}
	if !strings.Contains(logs.String(), `"GET / HTTP/1.1" 200`) {
		t.Fatalf("access log missing request:\n%s", logs.String())
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("security headers missing")
	}
}

func TestRecovery(t *testing.T) {
	s, logs := newTestServer(t, "")
	r := NewRouter(s)
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	var h http.Handler = WithRequestID(r)
	h = recoveryHandler(s)(h)
	rec := do(h, http.MethodGet, "/boom", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d, want 500", rec.Code)
	}
	if !strings.Contains(logs.String(), "boom") {
		t.Fatalf("panic not logged:\n%s", logs.String())
	}
}
