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

import "testing"

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := NewConfig()

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if !cfg.CORSEnabled || len(cfg.CORSAllowedOrigins) == 0 {
		t.Error("expected CORS enabled with origins")
	}
	if cfg.ReadTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		t.Error("expected positive timeouts")
	}
	if cfg.addr() != ":3000" {
		t.Errorf("unexpected addr %q", cfg.addr())
	}
}

func TestNewConfig_PortEnv(t *testing.T) {
	tests := []struct {
		env  string
		want int
	}{
		{"8081", 8081},
		{" 9000 ", 9000},
		{"abc", 3000},
		{"-1", 3000},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("PORT", tt.env)
			if got := NewConfig().Port; got != tt.want {
				t.Errorf("PORT=%q: got %d, want %d", tt.env, got, tt.want)
			}
		})
	}
}
