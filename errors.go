package bookstore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingURI is returned when Connect is called without a connection string.
	ErrMissingURI = errors.New("bookstore: no connection URI configured (set MONGODB_URI)")

	// ErrNotConnected is returned when an operation runs against a closed store.
	ErrNotConnected = errors.New("bookstore: store is not connected")

	// ErrUnknownField is returned when a stored document carries a key the
	// Book schema does not define.
	ErrUnknownField = errors.New("bookstore: unknown field")

	// ErrMissingField is returned when a stored document lacks a required key.
	ErrMissingField = errors.New("bookstore: missing required field")

	// ErrEmptyPipeline is returned when an aggregation is executed with no stages.
	ErrEmptyPipeline = errors.New("bookstore: aggregation pipeline has no stages")
)

// DriftError indicates a stored document does not match the schema.
type DriftError struct {
	Collection string
	Field      string
	Message    string
	Err        error
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("drift in %s.%s: %s", e.Collection, e.Field, e.Message)
}

func (e *DriftError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// ValidationErrors is a slice of ValidationError that implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
