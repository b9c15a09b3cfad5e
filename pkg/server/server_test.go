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

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func testServer(handlers map[string]http.HandlerFunc) *Server {
	cfg := NewConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	return New(WithConfig(cfg), WithHandler(handlers), WithName("quotes-test"), WithVersion("v0.0.1"))
}

func TestNew(t *testing.T) {
	s := testServer(map[string]http.HandlerFunc{
		"/v1/stats": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	if s.config == nil {
		t.Fatal("expected config to be initialized")
	}
	if s.httpServer == nil {
		t.Fatal("expected httpServer to be initialized")
	}
	if _, ok := s.config.Handlers["/"]; !ok {
		t.Error("expected default root handler to be registered")
	}
	if s.config.Name != "quotes-test" || s.config.Version != "v0.0.1" {
		t.Errorf("unexpected identity %s/%s", s.config.Name, s.config.Version)
	}
}

func TestNew_CustomRootKept(t *testing.T) {
	s := testServer(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("docs"))
		},
	})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Body.String() != "docs" {
		t.Errorf("expected custom root handler, got %q", w.Body.String())
	}
}

func TestDefaultRoot(t *testing.T) {
	s := testServer(nil)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var body struct {
		Name   string   `json:"name"`
		Routes []string `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body.Name != "quotes-test" {
		t.Errorf("expected name quotes-test, got %q", body.Name)
	}
	if len(body.Routes) == 0 || !strings.Contains(strings.Join(body.Routes, " "), "GET /health") {
		t.Errorf("expected route list, got %v", body.Routes)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(nil)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := testServer(nil)

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
	}{
		{name: "ready state", ready: true, expectedStatus: http.StatusOK},
		{name: "not ready state", ready: false, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(map[string]http.HandlerFunc{
		"/v1/stats": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})
	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/stats", nil))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "quotes_http_requests_total") {
		t.Error("expected http request counter in metrics output")
	}
}

func TestInSegmentRouteParams(t *testing.T) {
	var got string
	s := testServer(map[string]http.HandlerFunc{
		"/v1/getQuotes/category={category}/quantity={quantity}": func(w http.ResponseWriter, r *http.Request) {
			got = chi.URLParam(r, "category") + "|" + chi.URLParam(r, "quantity")
			w.WriteHeader(http.StatusOK)
		},
	})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/getQuotes/category=love/quantity=2", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got != "love|2" {
		t.Errorf("expected params love|2, got %q", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := testServer(nil)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body["code"] != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND code, got %v", body["code"])
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected request id header on not found")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer(map[string]http.HandlerFunc{
		"/v1/stats": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/stats", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
	if w.Header().Get("Allow") != http.MethodGet {
		t.Errorf("expected Allow GET, got %q", w.Header().Get("Allow"))
	}
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(map[string]http.HandlerFunc{
		"/v1/stats": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestServeAndShutdown(t *testing.T) {
	s := testServer(nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln)
	}()

	url := "http://" + ln.Addr().String() + "/ready"
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(url) //nolint:noctx // test helper
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("server did not become ready")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected serve error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}

	if s.isReady() {
		t.Error("expected server to be not ready after shutdown")
	}
}
