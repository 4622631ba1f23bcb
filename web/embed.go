// Package web embeds the page templates and the static files served under /pkg/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var Templates embed.FS

//go:embed static/*
var static embed.FS

// Static returns the static files with the "static/" prefix stripped.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
