package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up at the project root.
const DefaultPath = "ozpv.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Icons lists the link icons the site can render.
var Icons = []string{"github", "git"}

// Link is an outbound icon link on the home page.
type Link struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// Site is the page content.
type Site struct {
	Title   string `yaml:"title"`
	Heading string `yaml:"heading"`
	Owner   string `yaml:"owner"`
	Years   string `yaml:"years"`
	Links   []Link `yaml:"links"`
}

type TLS struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

func (t TLS) Enabled() bool { return t.CertFile != "" && t.KeyFile != "" }

type Config struct {
	Addr     string `yaml:"addr"`
	LogFile  string `yaml:"log_file"`
	WasmPath string `yaml:"wasm_path"`
	TLS      TLS    `yaml:"tls"`
	Site     Site   `yaml:"site"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:     ":8080",
		WasmPath: "pkg/eyes.wasm",
		Site: Site{
			Title:   "ozpv",
			Heading: "ozpv",
			Owner:   "ozpv",
			Years:   "2024-2025",
			Links: []Link{
				{Href: "https://github.com/ozpv", Label: "GitHub", Icon: "github"},
				{Href: "https://github.com/ozpv/ozpv", Label: "Source", Icon: "git"},
			},
		},
	}
}

// Load reads the YAML file at path on top of Default and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if cfg, err = Parse(data); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OZPV_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("OZPV_WASM"); v != "" {
		c.WasmPath = v
	}
}

// Validate checks the fields the server depends on.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalid)
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return fmt.Errorf("%w: tls needs both cert_file and key_file", ErrInvalid)
	}
	if strings.TrimSpace(c.Site.Heading) == "" {
		return fmt.Errorf("%w: site.heading is empty", ErrInvalid)
	}
	for i, l := range c.Site.Links {
		u, err := url.Parse(l.Href)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: site.links[%d].href %q is not an absolute http(s) url", ErrInvalid, i, l.Href)
		}
		if !slices.Contains(Icons, l.Icon) {
			return fmt.Errorf("%w: site.links[%d].icon %q is not one of %s", ErrInvalid, i, l.Icon, strings.Join(Icons, ", "))
		}
	}
	return nil
}

// PathFromEnv returns OZPV_CONFIG when set, otherwise fallback.
func PathFromEnv(fallback string) string {
	if v := os.Getenv("OZPV_CONFIG"); v != "" {
		return v
	}
	return fallback
}
