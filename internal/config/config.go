// Package config holds the file-backed configuration for the reportpdf CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration for report generation.
type Config struct {
	Title  string `yaml:"title"`
	Output struct {
		Dir    string `yaml:"dir"`
		Prefix string `yaml:"prefix"`
	} `yaml:"output"`
	Font struct {
		Path string `yaml:"path"` // explicit font file; empty means scan OS font dirs
	} `yaml:"font"`
	Columns struct {
		Weights   map[string]float64 `yaml:"weights"`
		MultiLine []string           `yaml:"multiline"`
		Highlight []string           `yaml:"highlight"`
	} `yaml:"columns"`
	Threshold int `yaml:"threshold"` // highlight scores below this value
	API       struct {
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
		KeyEnv  string `yaml:"key_env"` // environment variable holding the API key
	} `yaml:"api"`
}

// Defaults returns the standard configuration.
func Defaults() Config {
	var cfg Config
	cfg.Output.Dir = "."
	cfg.Output.Prefix = "report_"
	cfg.Threshold = 60
	cfg.API.BaseURL = "https://api.openai.com/v1"
	cfg.API.Model = "gpt-4o-mini"
	cfg.API.KeyEnv = "OPENAI_API_KEY"
	return cfg
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
