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

// Package serializer moves quote data in and out of the process.
//
// Outbound, it writes JSON response envelopes for HTTP handlers and renders
// CLI output as JSON, YAML or a flattened table:
//
//	serializer.RespondJSON(w, http.StatusOK, resp)
//
//	writer := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := writer.Serialize(ctx, resp); err != nil {
//		return err
//	}
//
// Inbound, it reads raw dataset bytes from a local path or an http(s) URL:
//
//	data, err := serializer.ReadSource(ctx, "https://example.com/quotes.json")
//
// JSON encoding uses github.com/goccy/go-json.
package serializer
