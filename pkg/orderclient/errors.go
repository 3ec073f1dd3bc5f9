package orderclient

import "errors"

var (
	// ErrInvalidConfig is returned when the client configuration is invalid
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrNetwork is returned when the request cannot reach the backend
	ErrNetwork = errors.New("network error")

	// ErrSubmitFailed is returned on a non-success status or an
	// unreadable response body
	ErrSubmitFailed = errors.New("order submission failed")

	// ErrSubmitInFlight is returned when a submission is attempted while
	// another one is still running
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// ServerError carries the backend's own rejection message so the user sees
// what the server said rather than a generic failure.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
