// Package config resolves the workspace layout for tracker documents.
// Every tracked project gets an artifacts/ tree under its root, with an
// optional .hyperborg/config.yaml overriding where that tree lives.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hyperborg/hyperborg/internal/record"
)

const (
	// HyperborgDir is the dot-directory created in each tracked project.
	HyperborgDir = ".hyperborg"

	configFile          = "config.yaml"
	defaultArtifactsDir = "artifacts"
)

const defaultConfigYAML = `# hyperborg workspace configuration
version: 1

# Directory holding phase and docs artifacts, relative to the project root.
artifacts_dir: artifacts
`

// Settings models .hyperborg/config.yaml.
type Settings struct {
	Version      int    `yaml:"version"`
	ArtifactsDir string `yaml:"artifacts_dir"`
}

// Config holds the resolved workspace paths for one invocation.
type Config struct {
	// ProjectDir is the tracked project's root directory.
	ProjectDir string

	Settings Settings
}

// Load resolves the configuration for a project root. A missing config file
// is fine; defaults apply. A present config file must parse.
func Load(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		Settings:   defaultSettings(),
	}

	path := cfg.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.Settings = parsed
	return cfg, nil
}

// Init creates the workspace structure: the artifacts tree plus a commented
// default config file. It fails when the project is already initialized.
func Init(projectDir string) (*Config, error) {
	if IsInitialized(projectDir) {
		return nil, fmt.Errorf("hyperborg is already initialized in %s", projectDir)
	}

	cfg := &Config{ProjectDir: projectDir, Settings: defaultSettings()}
	dirs := []string{
		filepath.Join(projectDir, HyperborgDir),
		cfg.PhasesDir(),
		cfg.DocsDir(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(cfg.ConfigPath(), []byte(defaultConfigYAML), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", cfg.ConfigPath(), err)
	}
	return cfg, nil
}

// IsInitialized reports whether the project carries a .hyperborg directory.
func IsInitialized(projectDir string) bool {
	info, err := os.Stat(filepath.Join(projectDir, HyperborgDir))
	return err == nil && info.IsDir()
}

// ConfigPath returns the on-disk location of the workspace config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ProjectDir, HyperborgDir, configFile)
}

// ArtifactsRoot returns the root of the artifacts tree.
func (c *Config) ArtifactsRoot() string {
	dir := c.Settings.ArtifactsDir
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(c.ProjectDir, dir)
}

// PhasesDir returns the directory holding per-phase subdirectories.
func (c *Config) PhasesDir() string {
	return filepath.Join(c.ArtifactsRoot(), "phases")
}

// DocsDir returns the shared published-docs directory.
func (c *Config) DocsDir() string {
	return filepath.Join(c.ArtifactsRoot(), "docs")
}

// PhaseDir returns the directory for one phase, derived from the canonical
// phase token.
func (c *Config) PhaseDir(phaseID string) string {
	return filepath.Join(c.PhasesDir(), record.DirToken(phaseID))
}

// ResultsPath returns the results.json location for a phase.
func (c *Config) ResultsPath(phaseID string) string {
	return filepath.Join(c.PhaseDir(phaseID), "results.json")
}

// PlanPath returns the plan.json location for a phase.
func (c *Config) PlanPath(phaseID string) string {
	return filepath.Join(c.PhaseDir(phaseID), "plan.json")
}

// PhaseMarkdownPath returns the rendered results location for a phase.
func (c *Config) PhaseMarkdownPath(phaseID string) string {
	name := fmt.Sprintf("HYPERBORG_PHASE_%s.md", record.CanonicalID(phaseID))
	return filepath.Join(c.PhaseDir(phaseID), name)
}

// PlanMarkdownPath returns the rendered plan location for a phase.
func (c *Config) PlanMarkdownPath(phaseID string) string {
	name := fmt.Sprintf("HYPERBORG_PLAN_%s.md", record.CanonicalID(phaseID))
	return filepath.Join(c.PhaseDir(phaseID), name)
}

// LessonsPath returns the lessons registry location.
func (c *Config) LessonsPath() string {
	return filepath.Join(c.DocsDir(), "lessons_learned.json")
}

// LessonsMarkdownPath returns the rendered lessons location.
func (c *Config) LessonsMarkdownPath() string {
	return filepath.Join(c.DocsDir(), "lessons_learned.md")
}

// InventoryPath returns the inventory registry location.
func (c *Config) InventoryPath() string {
	return filepath.Join(c.DocsDir(), "inventory.json")
}

// InventoryMarkdownPath returns the rendered inventory location.
func (c *Config) InventoryMarkdownPath() string {
	return filepath.Join(c.DocsDir(), "HYPERBORG_Inventory.md")
}

// OverviewPath returns the overview registry location.
func (c *Config) OverviewPath() string {
	return filepath.Join(c.DocsDir(), "overview.json")
}

// OverviewMarkdownPath returns the rendered overview location.
func (c *Config) OverviewMarkdownPath() string {
	return filepath.Join(c.DocsDir(), "HYPERBORG_Overview.md")
}

func defaultSettings() Settings {
	return Settings{
		Version:      1,
		ArtifactsDir: defaultArtifactsDir,
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	s.ArtifactsDir = strings.TrimSpace(s.ArtifactsDir)
	if s.ArtifactsDir == "" {
		s.ArtifactsDir = defaultArtifactsDir
	}
}

func (s Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	return nil
}
