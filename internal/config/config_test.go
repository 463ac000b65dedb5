package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	Init()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	// Run from an empty directory so no stray config.yaml is picked up.
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultTarget != "claude" {
		t.Errorf("DefaultTarget = %q, want claude", cfg.DefaultTarget)
	}
	if cfg.DefaultScope != "user" {
		t.Errorf("DefaultScope = %q, want user", cfg.DefaultScope)
	}
	if cfg.Editor != "" {
		t.Errorf("Editor = %q, want empty", cfg.Editor)
	}
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "default_target: gemini\ndefault_scope: project\neditor: nvim\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultTarget != "gemini" {
		t.Errorf("DefaultTarget = %q", cfg.DefaultTarget)
	}
	if cfg.DefaultScope != "project" {
		t.Errorf("DefaultScope = %q", cfg.DefaultScope)
	}
	if cfg.Editor != "nvim" {
		t.Errorf("Editor = %q", cfg.Editor)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	resetViper(t)

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded for an explicitly named missing file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - broken: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load succeeded for malformed YAML")
	}
}
