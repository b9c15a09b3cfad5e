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

package defaults

import "time"

// Dataset loading.
const (
	// DatasetSource is the dataset location used when none is configured.
	DatasetSource = "quotes.json"

	// DatasetLoadTimeout bounds the one-time startup load, including remote fetches.
	DatasetLoadTimeout = 30 * time.Second
)

// Handler timeouts for HTTP request processing.
// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Query policy.
const (
	// PageSize is the fixed window for every paginated listing.
	PageSize = 50

	// MaxEditDistance is the largest edit distance accepted by fuzzy lookups.
	MaxEditDistance = 3

	// DailyPoolFraction is the popularity rank, as a fraction of the dataset,
	// whose value becomes the quote-of-the-day threshold.
	DailyPoolFraction = 0.1

	// PopularQuantity is the number of popular quotes returned when none is requested.
	PopularQuantity = 10

	// MinTagLength is the shortest tag listed by the tag index.
	MinTagLength = 3

	// MinListedCount is the fewest occurrences a tag or author needs to be listed.
	MinListedCount = 2
)
