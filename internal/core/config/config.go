package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cbroglie/mustache"

	"github.com/neilberkman/portfolio/internal/core/scanner"
)

// DefaultEventTemplate renders one event line in `portfolio page` output.
// Names are free text, so they use unescaped {{{...}}} tags.
const DefaultEventTemplate = `{{{title}}}{{#date}} · {{date}} ({{ago}}){{/date}} · {{count}} {{noun}}{{#credits}} · credits: {{{credits}}}{{/credits}}`

// EnvAssetsDir overrides the assets directory
const EnvAssetsDir = "PORTFOLIO_ASSETS_DIR"

// FileName is the project-local config file looked up in the working directory
const FileName = "portfolio.toml"

type Config struct {
	AssetsDir     string // Root of the Page/Event/Image tree
	PathPrefix    string // Site-relative prefix of image paths
	EventTemplate string // Mustache template for one event line
}

type tomlConfig struct {
	AssetsDir     string `toml:"assets_dir"`
	PathPrefix    string `toml:"path_prefix"`
	EventTemplate string `toml:"event_template"`
}

// Default returns the built-in configuration: ./assets relative to the
// working directory.
func Default() *Config {
	assets := "assets"
	if cwd, err := os.Getwd(); err == nil {
		assets = filepath.Join(cwd, "assets")
	}
	return &Config{
		AssetsDir:     assets,
		PathPrefix:    scanner.DefaultPathPrefix,
		EventTemplate: DefaultEventTemplate,
	}
}

// Load builds the configuration. Later sources win:
// defaults, ~/.config/portfolio/config.toml, ./portfolio.toml,
// ~/.config/portfolio/event_template.mustache, $PORTFOLIO_ASSETS_DIR.
func Load() (*Config, error) {
	cfg := Default()

	var candidates []string
	home, err := os.UserHomeDir()
	configDir := ""
	if err == nil {
		configDir = filepath.Join(home, ".config", "portfolio")
		candidates = append(candidates, filepath.Join(configDir, "config.toml"))
	}
	candidates = append(candidates, FileName)

	for _, path := range candidates {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	// If custom template exists, use it
	if configDir != "" {
		if data, err := os.ReadFile(filepath.Join(configDir, "event_template.mustache")); err == nil {
			cfg.EventTemplate = strings.TrimSpace(string(data))
		}
	}

	if dir := os.Getenv(EnvAssetsDir); dir != "" {
		cfg.AssetsDir = dir
	}

	return cfg, nil
}

// mergeFile applies a TOML file if it exists. Relative assets_dir values
// are resolved against the file's directory.
func (c *Config) mergeFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		return &FileError{Path: path, Err: err}
	}

	if tc.AssetsDir != "" {
		dir := tc.AssetsDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		c.AssetsDir = dir
	}
	if tc.PathPrefix != "" {
		c.PathPrefix = strings.TrimRight(tc.PathPrefix, "/")
	}
	if tc.EventTemplate != "" {
		c.EventTemplate = tc.EventTemplate
	}
	return nil
}

// Validate checks that the configured template parses
func (c *Config) Validate() error {
	if _, err := mustache.ParseString(c.EventTemplate); err != nil {
		return &FileError{Path: "event template", Err: err}
	}
	return nil
}

// FileError reports a config source that could not be used
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return "invalid config " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
