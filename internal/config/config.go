// Package config handles reading and writing the promptkit config.yaml and
// resolving the prompt root both tools operate on.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/berth-dev/promptkit/internal/tui"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Root    string        `yaml:"root"`
	Ignore  []string      `yaml:"ignore"` // doublestar patterns, relative to Root
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls how browse-prompts prints prompt content.
type DisplayConfig struct {
	Render string `yaml:"render"` // "auto" | "always" | "never"
	Style  string `yaml:"style"`  // glamour standard style
	Width  int    `yaml:"width"`  // word-wrap width for rendered markdown
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // empty means <user cache dir>/promptkit
}

const (
	appDir     = "promptkit"
	configFile = "config.yaml"

	// PromptsDirName is the fixed subdirectory holding the prompt library.
	PromptsDirName = "prompts"
)

// DefaultPath returns <user config dir>/promptkit/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, appDir, configFile), nil
}

// ReadConfig reads the config file at path.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Load reads path, or the default location when path is empty. A missing
// file yields DefaultConfig; a malformed or invalid one is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg to path, creating parent directories as needed.
func WriteConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Display: DisplayConfig{
			Render: tui.RenderAuto,
			Style:  "dark",
			Width:  tui.DefaultMarkdownWidth,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// Validate checks values that cannot be enforced by the YAML schema.
func (c *Config) Validate() error {
	if !tui.ValidRenderMode(c.Display.Render) {
		return fmt.Errorf("display.render must be auto, always or never, got %q", c.Display.Render)
	}
	for _, p := range c.Ignore {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// ResolveRoot picks the prompt root: the flag value wins, then the config
// file, then DefaultRoot.
func (c *Config) ResolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return expandHome(flagRoot)
	}
	if c.Root != "" {
		return expandHome(c.Root)
	}
	return DefaultRoot()
}

// LogDir returns the configured event log directory.
func (c *Config) LogDir() (string, error) {
	if c.Log.Dir != "" {
		return expandHome(c.Log.Dir)
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locating cache directory: %w", err)
	}
	return filepath.Join(dir, appDir), nil
}

// DefaultRoot returns the prompts directory one level above the directory
// holding the running executable.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), PromptsDirName), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
