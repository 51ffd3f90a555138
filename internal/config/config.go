// Package config handles the .curio directory structure and project
// configuration. Every directory curio runs from gets a .curio/ folder
// holding config, demo snapshots, logs and custom demo definitions.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// CurioDir is the name of the directory created in each project.
	CurioDir = ".curio"

	defaultDemoID  = "gallery"
	defaultToastMS = 3000
)

const defaultProjectConfigYAML = `# curio project configuration
version: 1

demos:
  # Demo opened when you press enter on startup.
  default: gallery

ui:
  # How long a toast notification stays visible, in milliseconds.
  toast_ms: 3000
`

// DemoConfig captures demo selection preferences.
type DemoConfig struct {
	Default string `yaml:"default"`
}

// UIConfig captures presentation preferences.
type UIConfig struct {
	ToastMS int `yaml:"toast_ms"`
}

// ProjectConfig models .curio/config.yaml.
type ProjectConfig struct {
	Version int        `yaml:"version"`
	Demos   DemoConfig `yaml:"demos"`
	UI      UIConfig   `yaml:"ui"`
}

// Config holds the runtime configuration for curio.
type Config struct {
	// ProjectDir is the directory where the user ran `curio` from.
	ProjectDir string

	// CurioProjectDir is ProjectDir/.curio.
	CurioProjectDir string

	Project ProjectConfig
}

// InitCurioDir creates the .curio directory structure:
//
// .curio/
// ├── state/  <- one JSON snapshot per persistent demo
// ├── logs/   <- the journey log
// └── demos/  <- user-authored demo definitions (*.yaml)
func InitCurioDir(projectDir string) error {
	curioDir := filepath.Join(projectDir, CurioDir)
	dirs := []string{
		filepath.Join(curioDir, "state"),
		filepath.Join(curioDir, "logs"),
		filepath.Join(curioDir, "demos"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(curioDir, "config.yaml"))
}

// NewConfig creates a Config populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:      projectDir,
		CurioProjectDir: filepath.Join(projectDir, CurioDir),
		Project:         defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StateDir returns the directory holding demo snapshots.
func (c *Config) StateDir() string {
	return filepath.Join(c.CurioProjectDir, "state")
}

// LogsDir returns the directory holding the journey log.
func (c *Config) LogsDir() string {
	return filepath.Join(c.CurioProjectDir, "logs")
}

// DemosDir returns the directory scanned for custom demo definitions.
func (c *Config) DemosDir() string {
	return filepath.Join(c.CurioProjectDir, "demos")
}

// SnapshotPath returns the snapshot file for a persistent demo.
func (c *Config) SnapshotPath(demoID string) string {
	return filepath.Join(c.StateDir(), demoID+".json")
}

// ProjectConfigPath returns the on-disk location of the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.CurioProjectDir, "config.yaml")
}

// DefaultDemo returns the configured startup demo id.
func (c *Config) DefaultDemo() string {
	return c.Project.Demos.Default
}

// ToastMS returns the toast display duration in milliseconds.
func (c *Config) ToastMS() int {
	return c.Project.UI.ToastMS
}

// SetDefaultDemo updates the startup demo and persists the value back to
// .curio/config.yaml so the next launch opens it directly.
func (c *Config) SetDefaultDemo(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("config: demo id is required")
	}
	c.Project.Demos.Default = id
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Demos:   DemoConfig{Default: defaultDemoID},
		UI:      UIConfig{ToastMS: defaultToastMS},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.UI.ToastMS == 0 {
		pc.UI.ToastMS = defaultToastMS
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Demos.Default = strings.TrimSpace(pc.Demos.Default)
	if pc.Demos.Default == "" {
		pc.Demos.Default = defaultDemoID
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.UI.ToastMS < 0 {
		return fmt.Errorf("ui.toast_ms must not be negative")
	}
	if strings.TrimSpace(pc.Demos.Default) == "" {
		return fmt.Errorf("demos.default is required")
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.CurioProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure curio dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
