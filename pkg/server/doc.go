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

// Package server provides the HTTP server shared by the quotes API.
//
// The server routes with github.com/go-chi/chi/v5, which allows path
// parameters embedded inside a segment such as "/v1/getQuotes/quantity={quantity}".
//
// # Architecture
//
// Every registered handler runs behind the same middleware chain:
//
//   - CORS (github.com/go-chi/cors) when enabled
//   - Prometheus RED metrics keyed by route pattern
//   - API version negotiation (X-API-Version header)
//   - Request ID tracking (X-Request-Id header)
//   - Panic recovery into a JSON error envelope
//   - Debug request logging
//
// # Usage
//
//	s := server.New(
//	    server.WithName("quotes-api"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/stats": svc.HandleStats,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
// GET /health - liveness probe, always 200 once the process is up.
//
// GET /ready - readiness probe, 503 until the listener is started and again
// while shutting down.
//
// GET /metrics - Prometheus exposition.
//
// # Errors
//
// WriteError and WriteErrorFromErr render the error envelope:
//
//	{
//	  "status": 404,
//	  "message": "No matching category found for 'loev'.",
//	  "code": "NOT_FOUND",
//	  "requestId": "7c1f...",
//	  "timestamp": "2025-06-07T12:00:00.000Z",
//	  "retryable": false,
//	  "quotes": []
//	}
//
// Context fields of a *errors.StructuredError are merged into the top level
// of the envelope. Routes that do not exist return a NOT_FOUND envelope and
// non-GET methods return METHOD_NOT_ALLOWED.
//
// # Shutdown
//
// Run blocks until SIGINT or SIGTERM, marks the server not ready and drains
// in-flight requests within Config.ShutdownTimeout.
package server
