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
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/quotes-api/pkg/api"
	"github.com/NVIDIA/quotes-api/pkg/defaults"
	"github.com/NVIDIA/quotes-api/pkg/quote"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the quotes HTTP API",
		Description: `Load the dataset once and serve the read-only quotes API until interrupted.

Configuration is layered: defaults, then the YAML file (--config, $QUOTES_CONFIG
or ./config.yaml), then PORT and QUOTES_* environment variables. The --dataset
and --log-level flags, when given explicitly, win over all of them.

Examples:
  quotes serve
  quotes --dataset https://example.com/quotes.json serve --config config.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := []api.Option{api.WithConfigPath(cmd.String("config"))}
			if cmd.IsSet("dataset") {
				opts = append(opts, api.WithDatasetSource(cmd.String("dataset")))
			}
			if cmd.IsSet("log-level") {
				opts = append(opts, api.WithLogLevel(cmd.String("log-level")))
			}
			return api.Run(ctx, opts...)
		},
	}
}

func randomCmd() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Fetch random quotes, optionally by category or author",
		Description: `Fetch distinct random quotes. Category and author names are matched
case-insensitively and tolerate small typos.

Examples:
  quotes random --quantity 3
  quotes random --category lvoe --quantity 2
  quotes random --author "oscar wild"`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "quantity",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "Number of quotes to return",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Restrict to a category",
			},
			&cli.StringFlag{
				Name:  "author",
				Usage: "Restrict to an author",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			category, author := cmd.String("category"), cmd.String("author")
			if category != "" && author != "" {
				return fmt.Errorf("--category and --author are mutually exclusive")
			}
			quantity := cmd.Int("quantity")
			return render(ctx, cmd, func(svc *quote.Service) (any, error) {
				switch {
				case category != "":
					return svc.ByCategory(category, quantity)
				case author != "":
					return svc.ByAuthor(author, quantity)
				default:
					return svc.Sample(quantity)
				}
			})
		},
	}
}

func quoteCmd() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Fetch a single random quote",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "Restrict to an exact category, case-insensitive",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return render(ctx, cmd, func(svc *quote.Service) (any, error) {
				return svc.RandomQuote(cmd.String("category"))
			})
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Rank quotes by keyword matches",
		ArgsUsage: "<keywords>",
		Description: `Search quote text, author, category and tags. Keywords are separated by
commas or whitespace; quotes matching more keywords rank first.

Examples:
  quotes search love
  quotes search "smile, cry" --max 5`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max",
				Value: 10,
				Usage: "Maximum number of quotes to return",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			keywords := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(keywords) == "" {
				return fmt.Errorf("search requires at least one keyword")
			}
			return render(ctx, cmd, func(svc *quote.Service) (any, error) {
				return svc.Search(keywords, cmd.Int("max"))
			})
		},
	}
}

func popularCmd() *cli.Command {
	return &cli.Command{
		Name:  "popular",
		Usage: "List the most popular quotes",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "min",
				Usage: "Minimum popularity score",
			},
			&cli.IntFlag{
				Name:    "quantity",
				Aliases: []string{"n"},
				Value:   defaults.PopularQuantity,
				Usage:   "Number of quotes to return",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return render(ctx, cmd, func(svc *quote.Service) (any, error) {
				return svc.Popular(cmd.Float("min"), cmd.Int("quantity")), nil
			})
		},
	}
}

func dailyCmd() *cli.Command {
	return &cli.Command{
		Name:    "qotd",
		Aliases: []string{"daily"},
		Usage:   "Show the quote of the day",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "UTC date in YYYY-MM-DD format (default: today)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := cmd.String("date")
			var day time.Time
			if raw != "" {
				var err error
				if day, err = time.Parse(time.DateOnly, raw); err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", raw, err)
				}
			}
			return render(ctx, cmd, func(svc *quote.Service) (any, error) {
				if day.IsZero() {
					return svc.QuoteOfTheDay()
				}
				return svc.QuoteOfTheDayAt(day)
			})
		},
	}
}

func listingCmd[T any](name, usage string, list func(*quote.Service, int) T) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "page",
				Value: 1,
				Usage: fmt.Sprintf("Page number, %d entries per page", defaults.PageSize),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return render(ctx, cmd, func(svc *quote.Service) (any, error) {
				return list(svc, cmd.Int("page")), nil
			})
		},
	}
}

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Summarize the dataset",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return render(ctx, cmd, func(svc *quote.Service) (any, error) {
				return svc.Stats(), nil
			})
		},
	}
}
