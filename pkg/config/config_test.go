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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/NVIDIA/quotes-api/pkg/errors"
)

// isolate runs the test from an empty directory with no config env set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLegacyPort, "")
	for _, name := range []string{
		"QUOTES_SERVER_PORT", "QUOTES_SERVER_ADDRESS", "QUOTES_DATASET_SOURCE",
		"QUOTES_LOG_LEVEL", "QUOTES_LOGGING_LEVEL", "QUOTES_CORS_ALLOWED_ORIGINS",
		"QUOTES_CORS_ENABLED", "QUOTES_SERVER_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "quotes.json", cfg.Dataset.Source)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", `
server:
  port: 8081
  shutdown_timeout: 5s
dataset:
  source: https://example.com/quotes.json
logging:
  level: debug
cors:
  allowed_origins:
    - https://a.example.com
    - https://b.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, Default().Server.ReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://example.com/quotes.json", cfg.Dataset.Source)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, DefaultConfigFile, "server:\n  port: 9090\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "env.yaml", "dataset:\n  source: other.json\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.Dataset.Source)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Equal(t, qerrors.ErrCodeNotFound, qerrors.CodeOf(err))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", "server:\n  port: 8081\nlogging:\n  level: error\n")
	t.Setenv("QUOTES_SERVER_PORT", "7070")
	t.Setenv("QUOTES_LOG_LEVEL", "warn")
	t.Setenv("QUOTES_SERVER_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_LegacyPort(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLegacyPort, "4000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)

	t.Setenv("QUOTES_SERVER_PORT", "5000")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port, "prefixed variable wins over PORT")
}

func TestLoad_CommaSeparatedOrigins(t *testing.T) {
	isolate(t)
	t.Setenv("QUOTES_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port too large", env: map[string]string{"QUOTES_SERVER_PORT": "70000"}},
		{name: "unknown log level", env: map[string]string{"QUOTES_LOG_LEVEL": "verbose"}},
		{name: "negative cors max age", env: map[string]string{"QUOTES_CORS_MAX_AGE": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			require.Error(t, err)
			assert.Equal(t, qerrors.ErrCodeInvalidRequest, qerrors.CodeOf(err))
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	cfg.Server.ReadTimeout = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Server.Port")
	assert.Contains(t, err.Error(), "Config.Server.ReadTimeout")
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"QUOTES_SERVER_PORT":          "server.port",
		"QUOTES_SERVER_READ_TIMEOUT":  "server.read_timeout",
		"QUOTES_DATASET_SOURCE":       "dataset.source",
		"QUOTES_LOG_LEVEL":            "logging.level",
		"QUOTES_CORS_ALLOWED_ORIGINS": "cors.allowed_origins",
		"QUOTES_SOMETHING_ELSE":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, envTransformFunc(in), in)
	}
}

func TestHTTPServerConfig(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 8080
	cfg.Server.Address = "127.0.0.1"
	cfg.CORS.Enabled = false

	sc := cfg.HTTPServerConfig("quotesd", "v1.2.3")
	assert.Equal(t, "quotesd", sc.Name)
	assert.Equal(t, "v1.2.3", sc.Version)
	assert.Equal(t, 8080, sc.Port)
	assert.Equal(t, "127.0.0.1", sc.Address)
	assert.False(t, sc.CORSEnabled)
	assert.Equal(t, cfg.Server.ShutdownTimeout, sc.ShutdownTimeout)
}
