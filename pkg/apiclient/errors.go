package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors for auth-related failures.
var (
	// ErrRefreshTokenMissing indicates a refresh was attempted with no
	// refresh token persisted.
	ErrRefreshTokenMissing = errors.New("apiclient.refresh_token_missing")

	// ErrRefreshFailed indicates the refresh endpoint rejected the refresh
	// token or could not be reached.
	ErrRefreshFailed = errors.New("apiclient.refresh_failed")
)

// defaultErrorMessage is surfaced when the backend returns an error body
// without a usable message or error field.
const defaultErrorMessage = "Something went wrong, please try again"

// Error is the normalized error shape surfaced to callers for every failed
// request. UI layers display Message; Errors carries backend field-level
// validation messages for form rendering. Transport internals never leak
// through this type.
type Error struct {
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Code    string              `json:"code,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// IsStatus reports whether err is a normalized API error with the given
// HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// errorBody mirrors the backend's error payload.
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Errors  map[string][]string `json:"errors"`
}

// normalizeResponse converts a non-2xx response into a normalized Error.
// Message precedence: backend "message" field, then backend "error" field,
// then a generic fallback. When no response body exists at all, the
// transport-level description is used instead.
func normalizeResponse(resp *http.Response) *Error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case body.Error != "":
		apiErr.Message = body.Error
	default:
		apiErr.Message = defaultErrorMessage
	}
	apiErr.Code = body.Code
	apiErr.Errors = body.Errors

	return apiErr
}

// normalizeTransport converts a transport-level failure into a normalized
// Error. Already-normalized errors pass through unchanged so the refresh
// path's failures keep their shape.
func normalizeTransport(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Message: err.Error()}
}
