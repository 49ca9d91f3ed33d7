package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "Database:")

	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init without --overwrite refuses to clobber the file.
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, env.configPath); err == nil {
		t.Fatal("expected init to fail on existing file")
	}
}

func TestConfigPathPrintsResolvedLocation(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "path"}, "")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, out, filepath.Join("castmerge", "config.toml"))
}
