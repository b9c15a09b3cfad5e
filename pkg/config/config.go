// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
	qerrors "github.com/NVIDIA/quotes-api/pkg/errors"
	"github.com/NVIDIA/quotes-api/pkg/server"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "QUOTES_CONFIG"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "QUOTES_"

	// EnvLegacyPort is honored for platforms that inject the listen port.
	EnvLegacyPort = "PORT"

	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = "config.yaml"

	// DefaultPort is the listen port when nothing else is configured.
	DefaultPort = 3000
)

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Dataset DatasetConfig `koanf:"dataset"`
	Logging LoggingConfig `koanf:"logging"`
	CORS    CORSConfig    `koanf:"cors"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Address         string        `koanf:"address"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// DatasetConfig locates the quote collection.
type DatasetConfig struct {
	// Source is a local path or an http(s) URL.
	Source string `koanf:"source" validate:"required"`
	// LoadTimeout bounds the startup fetch.
	LoadTimeout time.Duration `koanf:"load_timeout" validate:"gt=0"`
}

type LoggingConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn warning error"`
}

type CORSConfig struct {
	Enabled        bool     `koanf:"enabled"`
	AllowedOrigins []string `koanf:"allowed_origins" validate:"required_if=Enabled true,dive,required"`
	MaxAge         int      `koanf:"max_age" validate:"min=0"`
}

// envMappings maps lower-cased env names, prefix stripped, to koanf paths.
// Keys whose section names contain underscores cannot be derived by splitting.
var envMappings = map[string]string{
	"server_address":          "server.address",
	"server_port":             "server.port",
	"server_read_timeout":     "server.read_timeout",
	"server_write_timeout":    "server.write_timeout",
	"server_idle_timeout":     "server.idle_timeout",
	"server_shutdown_timeout": "server.shutdown_timeout",
	"dataset_source":          "dataset.source",
	"dataset_load_timeout":    "dataset.load_timeout",
	"logging_level":           "logging.level",
	"log_level":               "logging.level",
	"cors_enabled":            "cors.enabled",
	"cors_allowed_origins":    "cors.allowed_origins",
	"cors_max_age":            "cors.max_age",
}

// sliceConfigPaths are split on commas when they arrive as a single string.
var sliceConfigPaths = []string{
	"cors.allowed_origins",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         "",
			Port:            DefaultPort,
			ReadTimeout:     defaults.ServerReadTimeout,
			WriteTimeout:    defaults.ServerWriteTimeout,
			IdleTimeout:     defaults.ServerIdleTimeout,
			ShutdownTimeout: defaults.ServerShutdownTimeout,
		},
		Dataset: DatasetConfig{
			Source:      defaults.DatasetSource,
			LoadTimeout: defaults.DatasetLoadTimeout,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
	}
}

// Load merges defaults, the optional YAML file and the environment.
// An explicit path that does not exist is an error; the implicit ones are optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInternal, "failed to load defaults", err)
	}

	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, qerrors.Wrap(qerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to load config file %s", configPath), err)
		}
	}

	if port := strings.TrimSpace(os.Getenv(EnvLegacyPort)); port != "" {
		if err := k.Set("server.port", port); err != nil {
			return nil, qerrors.Wrap(qerrors.ErrCodeInternal, "failed to apply PORT", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInternal, "failed to load environment variables", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInternal, "failed to process slice fields", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidRequest, "failed to unmarshal configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile resolves the file layer. Returns "" when there is none.
func findConfigFile(path string) (string, error) {
	if p := strings.TrimSpace(path); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", qerrors.Wrap(qerrors.ErrCodeNotFound,
				fmt.Sprintf("config file %s not found", p), err)
		}
		return p, nil
	}

	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", qerrors.Wrap(qerrors.ErrCodeNotFound,
				fmt.Sprintf("config file %s from %s not found", p, EnvConfigPath), err)
		}
		return p, nil
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}

	return "", nil
}

// envTransformFunc maps QUOTES_SERVER_PORT to server.port.
// Unknown keys return "" so koanf ignores them.
func envTransformFunc(key string) string {
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if mapped, ok := envMappings[name]; ok {
		return mapped
	}
	return ""
}

// processSliceFields converts comma-separated string values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints and reports every violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return qerrors.Wrap(qerrors.ErrCodeInternal, "configuration validation failed", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest,
		"configuration validation failed: "+strings.Join(fields, "; "),
		map[string]any{"fields": fields})
}

// HTTPServerConfig converts the listener and CORS settings for pkg/server.
func (c *Config) HTTPServerConfig(name, version string) *server.Config {
	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	sc.Address = c.Server.Address
	sc.Port = c.Server.Port
	sc.ReadTimeout = c.Server.ReadTimeout
	sc.WriteTimeout = c.Server.WriteTimeout
	sc.IdleTimeout = c.Server.IdleTimeout
	sc.ShutdownTimeout = c.Server.ShutdownTimeout
	sc.CORSEnabled = c.CORS.Enabled
	sc.CORSAllowedOrigins = append([]string(nil), c.CORS.AllowedOrigins...)
	sc.CORSMaxAge = c.CORS.MaxAge
	return sc
}
