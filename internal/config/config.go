// Package config provides configuration loading and validation for the CLI
// and the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Config is the runtime configuration, loadable from a JSON file. All fields
// are optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Record sources
	CandidatesPath string `json:"candidates,omitempty"`   // Path to candidate profiles JSON
	ProjectsPath   string `json:"projects,omitempty"`     // Path to project requirements JSON
	DatabaseURL    string `json:"database_url,omitempty"` // PostgreSQL record store URL

	// Collaborators
	RetrieverURL string `json:"retriever_url,omitempty"` // Semantic shortlist service base URL

	// Scoring
	WeightsPath string `json:"weights,omitempty"` // Path to a weight table JSON
	TopN        int    `json:"top_n,omitempty"`   // Shortlist size for match runs
	Concurrency int    `json:"concurrency,omitempty"`

	// Server
	Addr string `json:"addr,omitempty"` // HTTP listen address
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	for name, path := range map[string]string{
		"candidates": c.CandidatesPath,
		"projects":   c.ProjectsPath,
		"weights":    c.WeightsPath,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.CandidatesPath == "" {
		result.CandidatesPath = defaults.CandidatesPath
	}
	if result.ProjectsPath == "" {
		result.ProjectsPath = defaults.ProjectsPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RetrieverURL == "" {
		result.RetrieverURL = defaults.RetrieverURL
	}
	if result.WeightsPath == "" {
		result.WeightsPath = defaults.WeightsPath
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	return result
}

// LoadWeights reads a weight table from a JSON object file and rejects
// negative weights. An empty path returns the default table.
func LoadWeights(path string) (types.ScoringWeights, error) {
	if path == "" {
		return types.DefaultWeights(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights file %s: %w", path, err)
	}
	var weights types.ScoringWeights
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, fmt.Errorf("failed to parse weights JSON: %w", err)
	}
	for name, weight := range weights {
		if weight < 0 {
			return nil, fmt.Errorf("weight for %s must be non-negative, got %v", name, weight)
		}
	}
	return weights, nil
}
