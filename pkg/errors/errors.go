// Package errors provides custom error types for the aiassisted system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Join wraps multiple errors into one.
// It's an alias for the standard library errors.Join for convenience.
var Join = errors.Join

// Common sentinel errors for the aiassisted system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrIntegrity indicates that downloaded content failed fingerprint
	// verification
	ErrIntegrity = errors.New("integrity violation")

	// ErrNetwork indicates a network transport failure
	ErrNetwork = errors.New("network failure")

	// ErrNotInstalled indicates that the managed content tree is missing
	ErrNotInstalled = errors.New("not installed")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	Path     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found at %s", e.Resource, e.Path)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, path string) *NotFoundError {
	return &NotFoundError{Resource: resource, Path: path}
}

// ValidationError represents a validation failure in a source unit.
// It is always local to one unit and never fatal to a whole batch.
type ValidationError struct {
	Unit    string
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("validation failed for %s (%s): %s", e.Unit, e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(unit, field, message string) *ValidationError {
	return &ValidationError{Unit: unit, Field: field, Message: message}
}

// IntegrityError represents a fingerprint mismatch on trusted remote content.
// It is fatal to the affected file's write but not to the batch.
type IntegrityError struct {
	Path     string
	Expected string
	Actual   string
}

// Error implements the error interface
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("fingerprint mismatch for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is implements errors.Is support
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(path, expected, actual string) *IntegrityError {
	return &IntegrityError{Path: path, Expected: expected, Actual: actual}
}

// NetworkError represents a network transport failure
type NetworkError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error fetching %s (status %d): %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("network error fetching %s: %s", e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(url string, statusCode int, err error) *NetworkError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &NetworkError{
		URL:        url,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json", "frontmatter"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "list", "copy"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// SyncError represents an error while reconciling or applying one unit.
// Stage records where the unit failed: "discover", "materialize",
// "fingerprint", or "write".
type SyncError struct {
	Unit  string
	Stage string
	Err   error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	return fmt.Sprintf("sync error for %s during %s: %v", e.Unit, e.Stage, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError
func NewSyncError(unit, stage string, err error) *SyncError {
	return &SyncError{Unit: unit, Stage: stage, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIntegrity checks if an error is a content integrity violation
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsNetwork checks if an error is a network failure
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsSyncError checks if an error is a per-unit synchronization failure
func IsSyncError(err error) bool {
	var syncErr *SyncError
	return errors.As(err, &syncErr)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(unit, field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Unit: unit, Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapSync wraps an error as a SyncError
func WrapSync(unit, stage string, err error) error {
	if err == nil {
		return nil
	}
	return NewSyncError(unit, stage, err)
}
