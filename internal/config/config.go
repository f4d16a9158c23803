package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Report struct {
		Standard  string `yaml:"standard"`
		OutputDir string `yaml:"output_dir"`
		Database  string `yaml:"database"`
	} `yaml:"report"`
	AI struct {
		Provider     string `yaml:"provider"`
		Model        string `yaml:"model"`
		APIKey       string `yaml:"api_key"`
		BaseURL      string `yaml:"base_url"`
		MaxEvalChars int    `yaml:"max_eval_chars"` // evaluation prompt character limit
	} `yaml:"ai"`
}

// LoadConfig builds the effective configuration: defaults, then the YAML
// file if present, then environment variables. A missing config file is
// fine; a malformed one is not.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Report.Standard = "GRI"
	cfg.Report.OutputDir = "."
	cfg.Report.Database = "resonate.db"
	cfg.AI.Provider = "openai"
	cfg.AI.Model = "gpt-4-turbo"
	cfg.AI.MaxEvalChars = 3000

	// 2. Overlay YAML config
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("RESONATE_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	} else if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("RESONATE_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if model := os.Getenv("RESONATE_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if baseURL := os.Getenv("RESONATE_BASE_URL"); baseURL != "" {
		cfg.AI.BaseURL = baseURL
	}
	if standard := os.Getenv("RESONATE_STANDARD"); standard != "" {
		cfg.Report.Standard = standard
	}

	return cfg, nil
}
