package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingToken indicates an authenticated operation was attempted
// without a session token. The check happens before any network call.
var ErrMissingToken = errors.New("unauthorized: missing token")

// APIError is a non-2xx response from the catalog API, normalized to the
// parsed error body's message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err represents a rejected or missing
// credential. Callers use this to force re-login.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrMissingToken) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

// errorBody is the error shape returned by the API. Some endpoints use
// "message", others "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newAPIError builds an APIError from a non-2xx response body, falling
// back to a generic message when the body carries neither field.
func newAPIError(status int, body []byte) *APIError {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return &APIError{Status: status, Message: parsed.Message}
		}
		if parsed.Error != "" {
			return &APIError{Status: status, Message: parsed.Error}
		}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("request failed with status %d", status)}
}
