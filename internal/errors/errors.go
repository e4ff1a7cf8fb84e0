// Package errors classifies failures from the records backend. The transport
// layer retries only failures marked retryable; everything else surfaces to
// the caller immediately.
package errors

import (
	"encoding/json"
	"fmt"
)

// APIError is a classified backend failure.
type APIError struct {
	// Retryable marks transient failures worth repeating with backoff:
	// network errors, 5xx responses, 408 and 429.
	Retryable  bool
	StatusCode int    // 0 for failures that never produced a response
	Body       string // raw response body, kept for diagnostics
	cause      error
}

func (e *APIError) Error() string {
	kind := "permanent"
	if e.Retryable {
		kind = "retryable"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", kind, e.StatusCode, e.cause)
	}
	return fmt.Sprintf("%s: %v", kind, e.cause)
}

func (e *APIError) Unwrap() error { return e.cause }

// IsRetryable reports whether err is worth retrying with backoff.
// Unclassified errors default to retryable so transient conditions are not
// dropped.
func IsRetryable(err error) bool {
	if ae, ok := err.(*APIError); ok {
		return ae.Retryable
	}
	return true
}

// NewHTTPError classifies a non-2xx response. The backend reports failures
// as {"error":{"message":...}}; the message is lifted into the error text
// when present.
func NewHTTPError(statusCode int, body string, operation string) *APIError {
	cause := fmt.Errorf("%s failed: HTTP %d", operation, statusCode)
	if msg := errorMessage(body); msg != "" {
		cause = fmt.Errorf("%s failed: %s", operation, msg)
	}
	return &APIError{
		Retryable:  retryableStatus(statusCode),
		StatusCode: statusCode,
		Body:       body,
		cause:      cause,
	}
}

// NewNetworkError classifies a failure that never produced a response.
func NewNetworkError(operation string, err error) *APIError {
	return &APIError{
		Retryable: true,
		cause:     fmt.Errorf("%s network error: %w", operation, err),
	}
}

// retryableStatus treats 408 and 429 as the only retryable 4xx codes. All
// 5xx and unknown codes count as transient.
func retryableStatus(statusCode int) bool {
	switch {
	case statusCode == 408 || statusCode == 429:
		return true
	case statusCode >= 400 && statusCode < 500:
		return false
	default:
		return true
	}
}

// errorMessage extracts the message from the backend error envelope.
func errorMessage(body string) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal([]byte(body), &envelope) == nil {
		return envelope.Error.Message
	}
	return ""
}
