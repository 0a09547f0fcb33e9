// Package config loads application configuration from an optional YAML
// file overridden by environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	DB      DBConfig      `yaml:"db"`
	Uploads UploadsConfig `yaml:"uploads"`
	Log     LogConfig     `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type UploadsConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. LLM settings are loaded separately by the llm package.
func Load() (Config, error) {
	cfg := Config{
		DB:      DBConfig{Path: "coachflow.db"},
		Uploads: UploadsConfig{Dir: "uploads"},
		Log:     LogConfig{Level: "info"},
	}

	if path := os.Getenv("COACHFLOW_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("COACHFLOW_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if dir := os.Getenv("COACHFLOW_UPLOADS_DIR"); dir != "" {
		cfg.Uploads.Dir = dir
	}
	if level := os.Getenv("COACHFLOW_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
