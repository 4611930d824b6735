// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/tailorcv/internal/llm"
)

// EnvConfigPath is the environment variable naming an alternate config file
const EnvConfigPath = "TAILORCV_CONFIG"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Provider selection
	Provider string `json:"provider,omitempty"` // LLM provider: gemini or anthropic
	Model    string `json:"model,omitempty"`    // Model name override for the standard tier

	// Retry behavior
	MaxAttempts           int `json:"max_attempts,omitempty"`            // Selection generation attempt budget
	AttemptTimeoutSeconds int `json:"attempt_timeout_seconds,omitempty"` // Per-attempt deadline, 0 disables

	// Keyword extraction
	LexiconPath string `json:"lexicon_path,omitempty"` // Custom keyword lexicon file
	MaxKeywords int    `json:"max_keywords,omitempty"` // Keyword cap for job ingestion
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Provider:              string(llm.ProviderGemini),
		MaxAttempts:           3,
		AttemptTimeoutSeconds: 120,
	}
}

// ResolvePath determines which config file to use. Precedence: the explicit
// path, then TAILORCV_CONFIG, then the XDG config directory. The returned
// path may not exist yet.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fromEnv := os.Getenv(EnvConfigPath); fromEnv != "" {
		return fromEnv
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tailorcv", "config.json")
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration as indented JSON, creating parent
// directories as needed
func (c *Config) Save(path string) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case "", llm.ProviderGemini, llm.ProviderAnthropic:
	default:
		return fmt.Errorf("config error: unsupported provider %q", c.Provider)
	}

	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}
	if c.AttemptTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'attempt_timeout_seconds' must be non-negative")
	}
	if c.MaxKeywords < 0 {
		return fmt.Errorf("config error: 'max_keywords' must be non-negative")
	}

	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values beneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}

	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}
	if result.AttemptTimeoutSeconds == 0 {
		result.AttemptTimeoutSeconds = defaults.AttemptTimeoutSeconds
	}
	if result.MaxKeywords == 0 {
		result.MaxKeywords = defaults.MaxKeywords
	}

	return result
}
