package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	// DefaultErrorMessage is used when a failed response carries no usable detail.
	DefaultErrorMessage = "An error occurred while fetching data"
	// UploadErrorMessage is the upload endpoint's fallback message.
	UploadErrorMessage = "Failed to upload document"

	maxErrorBody = 1 << 20
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrReaderNil     = errors.New("reader is nil")
	ErrInvalidStatus = errors.New("invalid risk status")
)

// APIError is the normalized shape of every non-2xx backend response.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// newAPIError builds the normalized error for resp. A "detail" field in a JSON body
// replaces the fallback message; an unreadable or non-JSON body keeps it.
func newAPIError(resp *http.Response, fallback string) *APIError {
	if fallback == "" {
		fallback = DefaultErrorMessage
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	if msg := detailMessage(payload.Detail); msg != "" {
		apiErr.Message = msg
	}
	return apiErr
}

// detailMessage renders a detail value: strings as-is, falsy values as empty,
// anything else (e.g. a list of validation errors) as compact JSON.
func detailMessage(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch string(raw) {
	case "null", "false", "0", `""`:
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return ""
	}
	return buf.String()
}
