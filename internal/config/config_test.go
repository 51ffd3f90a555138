package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCurioDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitCurioDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, sub := range []string{"state", "logs", "demos"} {
		if _, err := os.Stat(filepath.Join(projectDir, CurioDir, sub)); err != nil {
			t.Fatalf("expected %s directory: %v", sub, err)
		}
	}
	if _, err := os.Stat(filepath.Join(projectDir, CurioDir, "config.yaml")); err != nil {
		t.Fatalf("expected default config: %v", err)
	}
}

func TestInitCurioDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitCurioDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	custom := []byte("version: 1\ndemos:\n  default: notes\n")
	path := filepath.Join(projectDir, CurioDir, "config.yaml")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := InitCurioDir(projectDir); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != string(custom) {
		t.Fatalf("re-init must not overwrite an existing config")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DefaultDemo() != "gallery" {
		t.Fatalf("expected gallery default, got %s", cfg.DefaultDemo())
	}
	if cfg.ToastMS() != 3000 {
		t.Fatalf("expected 3000ms toast default, got %d", cfg.ToastMS())
	}
}

func TestNewConfigLoadsProjectFile(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitCurioDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	payload := []byte("version: 1\ndemos:\n  default: feed\nui:\n  toast_ms: 1500\n")
	if err := os.WriteFile(filepath.Join(projectDir, CurioDir, "config.yaml"), payload, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DefaultDemo() != "feed" {
		t.Fatalf("expected feed, got %s", cfg.DefaultDemo())
	}
	if cfg.ToastMS() != 1500 {
		t.Fatalf("expected 1500, got %d", cfg.ToastMS())
	}
}

func TestNewConfigRejectsMalformedYAML(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitCurioDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, CurioDir, "config.yaml"), []byte("demos: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewConfig(projectDir); err == nil {
		t.Fatalf("malformed config must error")
	}
}

func TestSetDefaultDemoPersists(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitCurioDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if err := cfg.SetDefaultDemo("flowers"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	reloaded, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.DefaultDemo() != "flowers" {
		t.Fatalf("expected persisted default, got %s", reloaded.DefaultDemo())
	}
}

func TestSetDefaultDemoRequiresID(t *testing.T) {
	cfg, err := NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if err := cfg.SetDefaultDemo("  "); err == nil {
		t.Fatalf("blank demo id must be rejected")
	}
}

func TestSnapshotPath(t *testing.T) {
	cfg, err := NewConfig("/tmp/project")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	want := filepath.Join("/tmp/project", CurioDir, "state", "gallery.json")
	if got := cfg.SnapshotPath("gallery"); got != want {
		t.Fatalf("snapshot path %s, want %s", got, want)
	}
}
