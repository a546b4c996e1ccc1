package tly

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrMissingToken is returned when a client is built without an API token.
	ErrMissingToken = errors.New("api token is required")

	// ErrInvalidTimeout is returned when a non-positive timeout is configured.
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrUnknownOperation is returned by Call for names outside the
	// operation table.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingArgument is returned by Call when a required argument is
	// absent from the argument bag.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrInvalidArgument is returned by Call when an argument has the wrong
	// JSON type.
	ErrInvalidArgument = errors.New("invalid argument")
)

// APIError represents a non-success answer from the T.LY API. It is only
// used when the server actually responded; transport failures surface as
// ordinary wrapped errors without a status code.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("t.ly API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
