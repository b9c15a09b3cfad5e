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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NVIDIA/quotes-api/pkg/config"
	"github.com/NVIDIA/quotes-api/pkg/quote"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "quotesd" {
		t.Errorf("name = %q, want %q", name, "quotesd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func TestOptions(t *testing.T) {
	o := &options{}
	for _, opt := range []Option{
		WithConfigPath("custom.yaml"),
		WithDatasetSource("https://example.com/quotes.json"),
		WithLogLevel("debug"),
	} {
		opt(o)
	}

	if o.configPath != "custom.yaml" {
		t.Errorf("configPath = %q", o.configPath)
	}
	if o.source != "https://example.com/quotes.json" {
		t.Errorf("source = %q", o.source)
	}
	if o.logLevel != "debug" {
		t.Errorf("logLevel = %q", o.logLevel)
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// TestNewServer_Routes verifies the quote routes and system routes are mounted.
func TestNewServer_Routes(t *testing.T) {
	cfg := config.Default()
	cfg.Dataset.Source = "../quote/testdata/quotes.json"

	h := newServer(context.Background(), cfg).Handler()

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/", http.StatusOK},
		{"/v1/getQuotes/quantity=2", http.StatusOK},
		{"/v1/getQuotes/category=lvoe/quantity=1", http.StatusOK},
		{"/v1/searchQuotes/smile/maxQuantity=5", http.StatusOK},
		{quote.RouteStats, http.StatusOK},
		{quote.RouteQuoteOfTheDay, http.StatusOK},
		{"/v1/getQuotes/quantity=abc", http.StatusBadRequest},
		{"/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, h, tt.path)
			if w.Code != tt.want {
				t.Errorf("GET %s = %d, want %d: %s", tt.path, w.Code, tt.want, w.Body.String())
			}
		})
	}
}

// TestNewServer_MissingDataset verifies the server starts and reports the
// dataset as unavailable when it cannot be loaded.
func TestNewServer_MissingDataset(t *testing.T) {
	cfg := config.Default()
	cfg.Dataset.Source = "testdata/does-not-exist.json"

	h := newServer(context.Background(), cfg).Handler()

	if w := get(t, h, "/health"); w.Code != http.StatusOK {
		t.Errorf("health = %d, want %d", w.Code, http.StatusOK)
	}

	w := get(t, h, "/v1/getQuotes/quantity=1")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), "Quotes data not available.") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
