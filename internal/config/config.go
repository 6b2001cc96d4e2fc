package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nguyentantai21042004/podcut/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath           = "podcut.yaml"
	DefaultModel          = "gemini-3-pro-preview"
	DefaultThinkingBudget = 1024
)

// ErrMissingAPIKey is returned by RequireAPIKey when no Gemini key is configured.
var ErrMissingAPIKey = errors.New("gemini api key is required (set gemini.api_keys or GEMINI_API_KEY)")

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Report      ReportConfig      `yaml:"report"`
}

type GeminiConfig struct {
	Model          string   `yaml:"model"`
	APIKeys        []string `yaml:"api_keys,omitempty"`
	ThinkingBudget int      `yaml:"thinking_budget"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ReportConfig struct {
	WriteDocx bool `yaml:"write_docx"`
	WriteJSON bool `yaml:"write_json"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		Report: ReportConfig{WriteDocx: true, WriteJSON: true},
	}
	// Validate only fills defaults on an empty config.
	_ = cfg.Validate()
	return cfg
}

// Load reads the YAML file at path over the defaults, then applies API keys
// from the environment (and an optional .env next to the working directory).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{
		Report: ReportConfig{WriteDocx: true, WriteJSON: true},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load, except that a missing file yields the
// defaults instead of an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		cfg.ApplyEnv()
		return cfg, nil
	}
	return Load(path)
}

// ApplyEnv merges API keys from .env and the process environment. Keys in the
// config file win; environment keys are appended when not already present.
func (c *Config) ApplyEnv() {
	// .env is optional
	_ = godotenv.Load()

	var envKeys []string
	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			envKeys = append(envKeys, v)
		}
	}
	for _, v := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if v = strings.TrimSpace(v); v != "" {
			envKeys = append(envKeys, v)
		}
	}

	seen := make(map[string]bool, len(c.Gemini.APIKeys))
	for _, k := range c.Gemini.APIKeys {
		seen[k] = true
	}
	for _, k := range envKeys {
		if !seen[k] {
			c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
			seen[k] = true
		}
	}
}

func (c *Config) Validate() error {
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.Gemini.ThinkingBudget < 0 {
		return fmt.Errorf("gemini.thinking_budget must not be negative")
	}
	if c.Logging.Level != "" && !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	keys := c.Gemini.APIKeys[:0]
	for _, k := range c.Gemini.APIKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	c.Gemini.APIKeys = keys

	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultModel
	}
	if c.Gemini.ThinkingBudget == 0 {
		c.Gemini.ThinkingBudget = DefaultThinkingBudget
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/reports"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// RequireAPIKey fails when no key is available for commands that call the model.
func (c *Config) RequireAPIKey() error {
	if len(c.Gemini.APIKeys) == 0 {
		return ErrMissingAPIKey
	}
	return nil
}

// Save writes the config as YAML, creating parent directories. API keys are
// never written back to disk.
func (c *Config) Save(path string) error {
	out := *c
	out.Gemini.APIKeys = nil

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Directories lists the pipeline folders that must exist before watching.
func (c *Config) Directories() []string {
	return []string{c.Paths.Input, c.Paths.Output, c.Paths.Archived}
}
