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
	"errors"
	"maps"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	qerrors "github.com/NVIDIA/quotes-api/pkg/errors"
	"github.com/NVIDIA/quotes-api/pkg/serializer"
)

// TimestampLayout is the ISO-8601 layout used for envelope timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ErrorResponse is the JSON body written for every failed request.
// Details are emitted as top-level fields next to the fixed ones.
type ErrorResponse struct {
	Status    int
	Code      string
	Message   string
	Details   map[string]any
	RequestID string
	Timestamp string
	Retryable bool
}

// MarshalJSON flattens Details into the envelope. Fixed fields win on conflict.
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Details)+6)
	maps.Copy(out, e.Details)
	out["status"] = e.Status
	out["code"] = e.Code
	out["message"] = e.Message
	out["requestId"] = e.RequestID
	out["timestamp"] = e.Timestamp
	out["retryable"] = e.Retryable
	return json.Marshal(out)
}

// WriteError writes error response
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code qerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Status:    statusCode,
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(TimestampLayout),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response based on a structured error when possible.
// A *errors.StructuredError supplies the code, message and context fields.
// Any other error is reported as INTERNAL with fallbackMessage and the error text.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *qerrors.StructuredError
	if errors.As(err, &se) && se != nil {
		message := se.Message
		if message == "" {
			message = fallbackMessage
		}
		status := HTTPStatusFromCode(se.Code)
		WriteError(w, r, status, se.Code, message, retryableFromCode(se.Code), mergeDetails(se.Context, extraDetails))
		return
	}

	details := mergeDetails(extraDetails, nil)
	if err != nil {
		details = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, qerrors.ErrCodeInternal, fallbackMessage, true, details)
}

// HTTPStatusFromCode maps an error code to the HTTP status it is reported with.
func HTTPStatusFromCode(code qerrors.ErrorCode) int {
	switch code {
	case qerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case qerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case qerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case qerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case qerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case qerrors.ErrCodeDataUnavailable, qerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code qerrors.ErrorCode) bool {
	switch code {
	case qerrors.ErrCodeTimeout, qerrors.ErrCodeUnavailable, qerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
