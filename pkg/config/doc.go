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

// Package config loads quotes-api settings from layered sources.
//
// Precedence, lowest to highest:
//
//  1. Built-in defaults (see pkg/defaults)
//  2. Optional YAML file: the path passed to Load, else $QUOTES_CONFIG,
//     else ./config.yaml when it exists
//  3. The legacy PORT environment variable
//  4. QUOTES_* environment variables, e.g. QUOTES_SERVER_PORT=8080
//
// Example file:
//
//	server:
//	  port: 8080
//	  shutdown_timeout: 10s
//	dataset:
//	  source: https://example.com/quotes.json
//	logging:
//	  level: debug
//	cors:
//	  allowed_origins: [https://quotes.example.com]
//
// The merged result is validated before it is returned.
package config
