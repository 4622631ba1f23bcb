// Command genassets writes the pages, rendered images, stylesheet and wasm
// loader to a directory so the site can be hosted from static files.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ozpv/ozpv/internal/assets"
	"github.com/ozpv/ozpv/internal/config"
	"github.com/ozpv/ozpv/internal/site"
	"github.com/ozpv/ozpv/internal/utils"
	"github.com/ozpv/ozpv/internal/viewport"
	"github.com/ozpv/ozpv/web"
)

func main() {
	out := flag.String("out", "dist", "output directory")
	configPath := flag.String("config", config.PathFromEnv(utils.Resolve(config.DefaultPath)), "path to the YAML config file")
	force := flag.Bool("force", false, "write into an existing non-empty directory")
	flag.Parse()

	if entries, err := os.ReadDir(*out); err == nil && len(entries) > 0 && !*force {
		fmt.Fprintf(os.Stderr, "Error: %s is not empty. Refusing to overwrite without -force.\n", *out)
		os.Exit(1)
	}
	if err := generate(*out, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generate(out, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	store, err := assets.Render(web.Static(), "pkg")
	if err != nil {
		return fmt.Errorf("render assets: %w", err)
	}
	if err := store.WriteDir(out); err != nil {
		return err
	}
	pages, err := site.NewRenderer(web.Templates, cfg.Site)
	if err != nil {
		return err
	}

	var home, missing bytes.Buffer
	if err := pages.Home(&home, viewport.Desktop); err != nil {
		return err
	}
	if err := pages.NotFound(&missing); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, "index.html"), home.Bytes(), 0644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, "404.html"), missing.Bytes(), 0644); err != nil {
		return fmt.Errorf("write 404.html: %w", err)
	}
	fmt.Printf("%d assets and 2 pages written to %s\n", len(store.Names()), out)
	return nil
}
