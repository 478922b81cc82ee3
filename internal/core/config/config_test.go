package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAssetsDir, "")
	chdir(t, work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if filepath.Base(cfg.AssetsDir) != "assets" {
		t.Errorf("AssetsDir = %q, want <cwd>/assets", cfg.AssetsDir)
	}
	if cfg.PathPrefix != "/assets" {
		t.Errorf("PathPrefix = %q, want /assets", cfg.PathPrefix)
	}
	if cfg.EventTemplate != DefaultEventTemplate {
		t.Errorf("EventTemplate = %q", cfg.EventTemplate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_Precedence(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, ".config", "portfolio", "config.toml"), `
assets_dir = "/srv/global-assets"
path_prefix = "/photos/"
`)
	writeFile(t, filepath.Join(work, FileName), `
assets_dir = "content/assets"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Relative to the project file, which lives in the working directory
	wantDir := filepath.Join("content", "assets")
	if cfg.AssetsDir != wantDir {
		t.Errorf("AssetsDir = %q, want %q", cfg.AssetsDir, wantDir)
	}
	if cfg.PathPrefix != "/photos" {
		t.Errorf("PathPrefix = %q, want /photos", cfg.PathPrefix)
	}

	t.Setenv(EnvAssetsDir, "/from/env")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AssetsDir != "/from/env" {
		t.Errorf("AssetsDir = %q, env should win", cfg.AssetsDir)
	}
}

func TestLoad_TemplateOverride(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "portfolio", "event_template.mustache"), "{{title}} ({{count}})\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EventTemplate != "{{title}} ({{count}})" {
		t.Errorf("EventTemplate = %q", cfg.EventTemplate)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, FileName), "assets_dir = [unterminated")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	var fe *FileError
	if !errors.As(err, &fe) || fe.Path != FileName {
		t.Errorf("error = %v, want FileError for %s", err, FileName)
	}
}

func TestValidate_BadTemplate(t *testing.T) {
	cfg := Default()
	cfg.EventTemplate = "{{#open}} never closed"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unclosed section")
	}
}

// chdir changes the working directory to dir and restores it when the
// test finishes (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
