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

// Package errors provides the structured error taxonomy shared by the quote
// engine, the HTTP layer and the CLI.
//
// Every failure that reaches a request boundary is a StructuredError whose
// Code decides the HTTP status of the response envelope:
//
//	INVALID_REQUEST   400  malformed quantity, no parsable keywords
//	NOT_FOUND         404  empty pool, fuzzy miss, empty filter result
//	DATA_UNAVAILABLE  500  dataset failed to load or is empty
//	INTERNAL          500  anything else
//
// Usage:
//
//	if len(tokens) == 0 {
//	    return errors.New(errors.ErrCodeInvalidRequest, "No keywords provided.")
//	}
package errors
