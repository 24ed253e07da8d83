// Package errors provides custom error types for the dealflow system.
// These errors enable programmatic error checking across the
// reconciliation engine, in particular separating retryable lock
// contention from fatal store problems.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the dealflow system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrLocked indicates the store file is held by another process
	// (or a cloud-sync client) and the operation may be retried
	ErrLocked = errors.New("file locked")

	// ErrSchemaMismatch indicates an expected table or column is missing
	ErrSchemaMismatch = errors.New("store schema mismatch")

	// ErrNotWritten indicates a write was abandoned after exhausting
	// its retry budget; the caller must treat the write as not guaranteed
	ErrNotWritten = errors.New("write not guaranteed")

	// ErrVerifyFailed indicates a post-write re-read found fewer rows
	// than were written; an external process clobbered the file
	ErrVerifyFailed = errors.New("post-write verification failed")
)

// IsVerifyFailure checks if an error is a failed post-write verification
func IsVerifyFailure(err error) bool {
	return errors.Is(err, ErrVerifyFailed)
}

// ValidationError represents a record that lacks the minimum identity
// fields needed for matching (no price on an investment comp, no asset
// name on a deal). It is a warning condition, never fatal: the record
// is inserted as new without a duplicate check.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
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
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// LockError represents a failure to open or save a store file because
// another process holds it. Retryable.
type LockError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *LockError) Error() string {
	return fmt.Sprintf("store file locked: %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LockError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *LockError) Is(target error) bool {
	return target == ErrLocked
}

// NewLockError creates a new LockError
func NewLockError(path string, err error) *LockError {
	return &LockError{Path: path, Err: err}
}

// SchemaError represents a missing table or column in the target store.
// Fatal for the operation: no partial write is attempted.
type SchemaError struct {
	Table   string
	Column  string
	Message string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema mismatch in table %q: column %q %s", e.Table, e.Column, e.Message)
	}
	return fmt.Sprintf("schema mismatch: table %q %s", e.Table, e.Message)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(table, column, message string) *SchemaError {
	return &SchemaError{Table: table, Column: column, Message: message}
}

// IOError represents an error during I/O operations against the store
type IOError struct {
	Operation string // "read", "write", "create", "copy", "verify"
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

// ParseError represents an error when parsing stored data
type ParseError struct {
	Format  string // "yaml", "date", "number"
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
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsLockContention checks if an error indicates a locked store file.
// The persistence gateway retries exactly these; everything else is
// fatal for the attempt.
func IsLockContention(err error) bool {
	return errors.Is(err, ErrLocked)
}

// IsSchemaMismatch checks if an error is a store schema mismatch
func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}

// Helper wrapping functions for common patterns

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
