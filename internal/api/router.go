package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/ozpv/ozpv/internal/site"
)

// NewRouter registers the single page route, the static files and the
// fallback handlers.
func NewRouter(s *Server) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.HomeHandler).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	r.HandleFunc(site.WasmURL, s.WasmHandler).Methods(http.MethodGet, http.MethodHead)
	for _, name := range s.Assets.Names() {
		r.Handle("/"+name, s.Assets).Methods(http.MethodGet, http.MethodHead)
	}
	r.NotFoundHandler = http.HandlerFunc(s.NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.MethodNotAllowedHandler)
	return r
}

// NewHandler wraps the router with the middleware every request goes through,
// including those that match no route.
func NewHandler(s *Server) http.Handler {
	var h http.Handler = NewRouter(s)
	h = handlers.CompressHandler(h)
	h = WithSecurityHeaders(h)
	h = WithRequestID(h)
	h = recoveryHandler(s)(h)
	return handlers.CombinedLoggingHandler(s.Log.Writer(), h)
}

func recoveryHandler(s *Server) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(handlers.RecoveryLogger(s.Log), handlers.PrintRecoveryStack(true))
}
