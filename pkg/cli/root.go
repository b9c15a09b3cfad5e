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

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
	"github.com/NVIDIA/quotes-api/pkg/logging"
	"github.com/NVIDIA/quotes-api/pkg/quote"
	"github.com/NVIDIA/quotes-api/pkg/serializer"
)

const (
	name           = "quotes"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}

	datasetFlag = &cli.StringFlag{
		Name:    "dataset",
		Aliases: []string{"d"},
		Value:   defaults.DatasetSource,
		Sources: cli.EnvVars("QUOTES_DATASET_SOURCE"),
		Usage:   "Path or http(s) URL of the quotes JSON dataset",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Sources: cli.EnvVars(logging.EnvLogLevel),
		Usage:   "Log level (debug, info, warn, error)",
	}
)

// Execute runs the CLI against os.Args and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Query a quotes dataset or serve it over HTTP",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Flags: []cli.Flag{
			datasetFlag,
			logLevelFlag,
			outputFlag,
			formatFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			randomCmd(),
			quoteCmd(),
			searchCmd(),
			popularCmd(),
			dailyCmd(),
			listingCmd("categories", "List categories with their quote counts", (*quote.Service).Categories),
			listingCmd("tags", "List frequent tags with their quote counts", (*quote.Service).Tags),
			listingCmd("authors", "List prolific authors with their quote counts", (*quote.Service).Authors),
			statsCmd(),
		},
	}
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		fmt.Fprintln(w, sub.Name)
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// newWriter targets --output when set, otherwise the command's writer.
func newWriter(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	if path := cmd.String("output"); path != "" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, cmd.Root().Writer)
}

// loadService reads the dataset named by --dataset. Unlike the server, a
// dataset that cannot be loaded is an error.
func loadService(ctx context.Context, cmd *cli.Command) (*quote.Service, error) {
	source := cmd.String("dataset")
	data, err := quote.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset from %q: %w", source, err)
	}
	return quote.NewService(data), nil
}

// render serializes the result of fn in the requested format.
func render(ctx context.Context, cmd *cli.Command, fn func(*quote.Service) (any, error)) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	svc, err := loadService(ctx, cmd)
	if err != nil {
		return err
	}

	result, err := fn(svc)
	if err != nil {
		return err
	}

	ser := newWriter(cmd, outFormat)
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, result)
}
