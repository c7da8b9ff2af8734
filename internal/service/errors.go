package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResults indicates a search produced nothing to show
	ErrNoResults = errors.New("no results found")
	// ErrDataUnavailable indicates a fetched chapter had no verses
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrSchema is wrapped by every SchemaError
	ErrSchema = errors.New("response does not match schema")
)

// TransportError is a network, HTTP status or payload failure of a gateway
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status code: %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SchemaError reports where an AI response diverged from the requested schema
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}
