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

// Package cli implements the quotes command-line interface.
//
// The same dataset and query semantics served over HTTP are available
// offline, rendered as JSON, YAML or a flattened table.
//
// # Commands
//
//	quotes serve [--config config.yaml]
//	quotes random [--quantity N] [--category C | --author A]
//	quotes quote [--category C]
//	quotes search [--max N] <keywords>
//	quotes popular [--min 0.5] [--quantity N]
//	quotes qotd [--date YYYY-MM-DD]
//	quotes categories|tags|authors [--page N]
//	quotes stats
//
// # Global Flags
//
//	--dataset, -d  Dataset path or URL (default: quotes.json, env QUOTES_DATASET_SOURCE)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--log-level    Log level (default: info, env LOG_LEVEL)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, dataset or query failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/quotes-api/pkg/cli.version=1.0.0'"
package cli
