// Copyright 2025 greenBin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/MeBouha/greenBin-sub000/pkg/logger"
)

const (
	// DefaultDataDir is the default directory holding the collection
	// documents.
	DefaultDataDir = "/data/greenbin"

	// DefaultConfigPath is the default path of the optional YAML config
	// file.
	DefaultConfigPath = "/data/greenbin/config.yaml"
)

// Config holds the runtime configuration of the datastore.
type Config struct {
	// DataDir is the directory holding one XML document per collection.
	DataDir string `yaml:"dataDir"`

	// MetricsAddr is the listen address for the prometheus endpoint.
	// Empty disables the endpoint.
	MetricsAddr string `yaml:"metricsAddr"`

	// LogLevel and LogFormat configure the global logger.
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// Load builds the configuration. Order of precedence (highest to lowest):
// environment variables, the YAML config file, built-in defaults. A .env
// file in the working directory is folded into the environment first when
// present.
func Load() (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		DataDir:   DefaultDataDir,
		LogLevel:  string(logger.ProductionLevel),
		LogFormat: string(logger.FormatConsole),
	}

	configPath, err := GetAsString("GREENBIN_CONFIG", false, DefaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	if err := applyFile(&cfg, configPath); err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyFile folds the YAML config file into cfg. An absent file is
// ignored.
func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnv folds environment variables into cfg.
func applyEnv(cfg *Config) error {
	dataDir, err := GetAsString("GREENBIN_DATA_DIR", false, "")
	if err != nil {
		return err
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	metricsAddr, err := GetAsString("GREENBIN_METRICS_ADDR", false, "")
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	logLevel, err := GetAsString("LOGGING_LEVEL", false, "")
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logFormat, err := GetAsString("LOGGING_FORMAT", false, "")
	if err != nil {
		return err
	}

	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	return nil
}
