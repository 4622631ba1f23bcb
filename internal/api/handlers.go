package api

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/ozpv/ozpv/internal/assets"
	"github.com/ozpv/ozpv/internal/site"
	"github.com/ozpv/ozpv/internal/utils"
	"github.com/ozpv/ozpv/internal/viewport"
)

// Server holds what the handlers need to answer requests.
type Server struct {
	Pages    *site.Renderer
	Assets   *assets.Store
	WasmPath string
	Log      *utils.Logger
}

func setHTMLHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Accept-CH", viewport.HintHeader)
	h.Add("Vary", viewport.HintHeader)
}

// HomeHandler renders the home page. The layout comes from the viewport client
// hint when the browser sent one, desktop otherwise.
func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	mode, _ := viewport.FromHint(r.Header.Get(viewport.HintHeader))
	setHTMLHeaders(w)
	if err := s.Pages.Home(w, mode); err != nil {
		s.fail(w, r, err)
	}
}

// NotFoundHandler renders the fallback page for unmatched paths.
func (s *Server) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.notFound(w, r, http.StatusNotFound)
}

// MethodNotAllowedHandler answers known paths requested with a wrong method.
func (s *Server) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	s.notFound(w, r, http.StatusMethodNotAllowed)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, status int) {
	setHTMLHeaders(w)
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if err := s.Pages.NotFound(w); err != nil {
		s.Log.Errorf("[%s] render not found page: %v", RequestID(r.Context()), err)
	}
}

// WasmHandler serves the compiled tracker from disk.
func (s *Server) WasmHandler(w http.ResponseWriter, r *http.Request) {
	info, err := os.Stat(s.WasmPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = utils.Wrap(http.StatusNotFound, "not found", err)
		}
		s.fail(w, r, err)
		return
	}
	if info.IsDir() {
		s.fail(w, r, utils.New(http.StatusNotFound, "not found"))
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, s.WasmPath)
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintln(w, "OK")
}

// fail reports err to the client. Not found errors get the fallback page,
// everything else a plain status message.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := utils.StatusOf(err)
	if status == http.StatusNotFound {
		s.NotFoundHandler(w, r)
		return
	}
	s.Log.Errorf("[%s] %s %s: %v", RequestID(r.Context()), r.Method, r.URL.Path, err)
	http.Error(w, utils.MessageOf(err), status)
}
