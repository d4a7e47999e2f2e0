// Package config loads optional file-based defaults for planmerge.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in defaults, preserved from the original merge scripts so that a run
// with no config file and no flags behaves identically.
const (
	DefaultUnionSource   = "./data/plans/book14"
	DefaultUnionOutput   = "merged_output.json"
	DefaultListKey       = "merged_list"
	DefaultCollectSource = "Data/plans"
	DefaultCollectOutput = "Data/merged_plans.json"
)

// Config represents the complete configuration for planmerge
type Config struct {
	Union   UnionConfig   `yaml:"union"`
	Collect CollectConfig `yaml:"collect"`
}

// UnionConfig controls the key-union command
type UnionConfig struct {
	Source  string `yaml:"source"`
	Output  string `yaml:"output"`
	ListKey string `yaml:"list_key"`
	Deep    bool   `yaml:"deep"`
	KeyCase string `yaml:"key_case"`
}

// CollectConfig controls the collect command
type CollectConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Union: UnionConfig{
			Source:  DefaultUnionSource,
			Output:  DefaultUnionOutput,
			ListKey: DefaultListKey,
		},
		Collect: CollectConfig{
			Source: DefaultCollectSource,
			Output: DefaultCollectOutput,
		},
	}
}

// LoadConfig loads configuration from a YAML file, layered over the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".planmerge.yml", ".planmerge.yaml", "planmerge.yml", "planmerge.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
