package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText rejects submissions that are empty after trimming.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrNotFound indicates an identity lookup missed.
	ErrNotFound = errors.New("not found")
)

// NetworkError wraps a transport-level failure talking to the oracle.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError reports a reachable oracle that answered badly:
// a non-200 status or a response envelope we cannot interpret.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string { return e.Message }

// ParseError reports malformed extraction output. It is always recovered
// locally with a fallback draft and never crosses a package boundary.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigurationError blocks startup when required configuration is missing.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Key)
}

// ValidationError rejects caller input before any side effect happens.
// Err carries the underlying sentinel so callers can match with errors.Is.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }
