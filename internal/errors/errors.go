// Package errors provides shared error types for the Iceland registry tools.
package errors

import (
	"fmt"
)

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// DatasetError indicates a dataset file could not be loaded or decoded.
type DatasetError struct {
	Path    string // file path of the dataset
	Message string // human-readable error message
	Err     error  // underlying cause, if any
}

func (e *DatasetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dataset %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("dataset %s: %s", e.Path, e.Message)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewDatasetError creates a DatasetError.
func NewDatasetError(path, message string, err error) *DatasetError {
	return &DatasetError{Path: path, Message: message, Err: err}
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsDataset returns true if the error is a DatasetError.
func IsDataset(err error) bool {
	_, ok := err.(*DatasetError)
	return ok
}
