package entities

import "fmt"

// ProviderError is a failure reported by the payment provider itself
// (invalid identifier, permissions, declined request).
type ProviderError struct {
	HTTPStatus int
	Code       string
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment provider error (status=%d code=%s): %s", e.HTTPStatus, e.Code, e.Message)
	}
	return fmt.Sprintf("payment provider error (status=%d): %s", e.HTTPStatus, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
