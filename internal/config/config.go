// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/talent-intel/internal/scoring"
	"github.com/jonathan/talent-intel/internal/types"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Inputs
	JobURL  string `json:"job_url,omitempty"`  // URL to fetch the job description from
	JobFile string `json:"job_file,omitempty"` // Path to a job description text file

	// Scoring
	Weights        *types.WeightVector `json:"weights,omitempty"`          // Initial signal weights
	SkillMatchMode string              `json:"skill_match_mode,omitempty"` // "exact" or "fuzzy"
	ValidityMode   string              `json:"validity_mode,omitempty"`    // "linear" or "nonlinear"

	// Behavior
	APIKey      string `json:"api_key,omitempty"`     // Gemini API key
	EmbedModel  string `json:"embed_model,omitempty"` // Embedding model name
	UseBrowser  bool   `json:"use_browser,omitempty"` // Headless browser fallback for SPA job boards
	Concurrency int    `json:"concurrency,omitempty"` // Per-candidate scoring fan-out
	JSONLog     bool   `json:"json_log,omitempty"`    // Emit JSON logs instead of console
	Debug       bool   `json:"debug,omitempty"`       // Debug-level logging
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
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

// FromEnv fills unset fields from environment variables.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.EmbedModel == "" {
		c.EmbedModel = os.Getenv("EMBED_MODEL")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.JobURL != "" && c.JobFile != "" {
		return fmt.Errorf("config error: 'job_url' and 'job_file' are mutually exclusive")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	switch c.SkillMatchMode {
	case "", string(scoring.SkillMatchExact), string(scoring.SkillMatchFuzzy):
	default:
		return fmt.Errorf("config error: unknown skill_match_mode %q", c.SkillMatchMode)
	}
	switch c.ValidityMode {
	case "", string(scoring.ValidityLinear), string(scoring.ValidityNonlinear):
	default:
		return fmt.Errorf("config error: unknown validity_mode %q", c.ValidityMode)
	}

	if c.Weights != nil {
		if _, err := c.Weights.Normalized(); err != nil {
			return fmt.Errorf("config error: invalid weights: %w", err)
		}
	}

	if c.JobFile != "" {
		if _, err := os.Stat(c.JobFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.JobFile)
		}
	}

	return nil
}

// ScoringVariants returns the formula variants selected by this config,
// falling back to the documented defaults.
func (c *Config) ScoringVariants() scoring.Variants {
	variants := scoring.DefaultVariants()
	if c.SkillMatchMode != "" {
		variants.SkillMatch = scoring.SkillMatchMode(c.SkillMatchMode)
	}
	if c.ValidityMode != "" {
		variants.Validity = scoring.ValidityMode(c.ValidityMode)
	}
	return variants
}

// InitialWeights returns the configured starting weights, or the documented
// defaults when the config carries none.
func (c *Config) InitialWeights() types.WeightVector {
	if c.Weights != nil {
		return *c.Weights
	}
	return types.DefaultWeights()
}
