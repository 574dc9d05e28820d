package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, and validates configuration. This is the
// primary entry point.
//
// Steps performed:
//  1. Load .env into the process environment (best effort)
//  2. Read the YAML file at path ("" runs on built-in defaults)
//  3. Expand {{.ENV_VAR}} references
//  4. Parse YAML into the Config struct
//  5. Merge built-in defaults under the loaded values
//  6. Validate everything
func Initialize(_ context.Context, path string) (*Config, error) {
	log := slog.With("config_path", path)

	if err := godotenv.Load(); err == nil {
		log.Debug("loaded .env file")
	}

	cfg, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("configuration initialized",
		"llm_provider", cfg.LLM.Provider,
		"database_enabled", cfg.Database.IsEnabled(),
		"cache_enabled", cfg.Cache.IsEnabled(),
		"max_iterations", cfg.Investigation.GetMaxIterations())
	return cfg, nil
}

func load(path string) (*Config, error) {
	cfg := &Config{configPath: path}

	if path != "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(ExpandEnv(data), cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
		}
	}

	// Fill gaps from the built-in defaults. Loaded values win: mergo only
	// writes fields the YAML left empty. WithoutDereference keeps optional
	// pointer scalars intact, so an explicit false/zero from the file is
	// not mistaken for an unset field and overwritten by a default.
	if err := mergo.Merge(cfg, defaultConfig(), mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("failed to merge defaults: %w", err)
	}
	return cfg, nil
}
