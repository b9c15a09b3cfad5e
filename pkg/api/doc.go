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

// Package api wires configuration, the quotes dataset and the HTTP server
// into the quotesd process.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/quotes-api/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Loading configuration through pkg/config
//   - Configuring structured logging with application name and version
//   - Loading the dataset once at startup through pkg/quote
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application endpoints, all GET:
//   - /                                                    - HTML documentation page
//   - /v1/getQuotes/quantity={quantity}                    - Random sample with facets
//   - /v1/getQuotes/category={category}/quantity={quantity} - Fuzzy category lookup
//   - /v1/getQuotes/author={author}/quantity={quantity}    - Fuzzy author lookup
//   - /v1/searchQuotes/{keywords}/maxQuantity={quantity}   - Ranked keyword search
//   - /v1/randomQuote                                      - ?category=
//   - /v1/categories, /v1/tags, /v1/authors                - Paginated listings, ?page=N
//   - /v1/popularQuotes                                    - ?minPopularity=&quantity=
//   - /v1/quoteOfTheDay                                    - Quote of the day
//   - /v1/stats                                            - Dataset statistics
//
// System endpoints:
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -s http://localhost:3000/v1/searchQuotes/love,life/maxQuantity=3
package api
