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

package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/quotes-api/pkg/config"
	"github.com/NVIDIA/quotes-api/pkg/logging"
	"github.com/NVIDIA/quotes-api/pkg/quote"
	"github.com/NVIDIA/quotes-api/pkg/server"
)

const (
	name           = "quotesd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/quotes-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Option adjusts how Run resolves its configuration.
type Option func(*options)

type options struct {
	configPath string
	source     string
	logLevel   string
}

// WithConfigPath loads the given YAML file instead of the default lookup.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithDatasetSource overrides the configured dataset location.
func WithDatasetSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

// Serve starts the API server with configuration from the file and
// environment, and blocks until shutdown.
func Serve() error {
	return Run(context.Background())
}

// Run loads configuration and the dataset, then serves until ctx is done
// or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		logging.SetDefaultStructuredLogger(name, version)
		slog.Error("invalid configuration", "error", err)
		return err
	}
	if o.source != "" {
		cfg.Dataset.Source = o.source
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.Logging.Level)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"port", cfg.Server.Port,
		"source", cfg.Dataset.Source,
	)

	s := newServer(ctx, cfg)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newServer loads the dataset once and mounts the quote routes.
// A dataset that fails to load leaves the server up with no quotes.
func newServer(ctx context.Context, cfg *config.Config) *server.Server {
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Dataset.LoadTimeout)
	defer cancel()

	data := quote.LoadOrEmpty(loadCtx, cfg.Dataset.Source)
	svc := quote.NewService(data)

	return server.New(
		server.WithConfig(cfg.HTTPServerConfig(name, version)),
		server.WithHandler(svc.Routes()),
	)
}
