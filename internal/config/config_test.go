package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"castmerge/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved == "" {
		t.Fatal("expected resolved path for missing file")
	}
	if cfg.Detection.MaxResults != 50 {
		t.Fatalf("expected default max_results, got %d", cfg.Detection.MaxResults)
	}
	if cfg.Collaboration.MinMovies != 2 {
		t.Fatalf("expected default min_movies, got %d", cfg.Collaboration.MinMovies)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		"[tmdb]",
		`base_url = "https://api.example.org/3/"`,
		"[detection]",
		"min_confidence = 0.8",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Detection.MinConfidence != 0.8 {
		t.Fatalf("min_confidence not applied: %v", cfg.Detection.MinConfidence)
	}
	if strings.HasSuffix(cfg.TMDB.BaseURL, "/") {
		t.Fatalf("base URL should be trimmed: %q", cfg.TMDB.BaseURL)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Paths.DataDir, "catalog.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad confidence", "[detection]\nmin_confidence = 1.5\n"},
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"tmdb enabled without key", "[tmdb]\nenabled = true\n"},
		{"zero min movies", "[collaboration]\nmin_movies = 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.name == "tmdb enabled without key" {
				t.Setenv("TMDB_API_KEY", "")
			}
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if _, _, exists, err := config.Load(target); err != nil || !exists {
		t.Fatalf("sample config should load cleanly: exists=%v err=%v", exists, err)
	}
}
