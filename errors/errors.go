// Package errors provides error handling for chronoid.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for catalog authors
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidCatalog) {
//	    // handle catalog rejection
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	Join          = crdb.Join
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across chronoid.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidCatalog indicates a catalog that cannot be loaded: a
	// duplicate format name, a pattern that does not compile, or a pattern
	// using a construct the containment analyzer cannot reduce to a finite
	// acceptor. Fatal to the whole load; no partial registry is produced.
	ErrInvalidCatalog = New("invalid catalog")

	// ErrInvariantViolation indicates an internal consistency failure
	// detected during overlap analysis, such as a cycle in the containment
	// DAG. It signals a bug in relation computation, not a recoverable
	// catalog state.
	ErrInvariantViolation = New("invariant violation")

	// ErrNotFound indicates the requested format does not exist in the registry
	ErrNotFound = New("not found")
)

// IsInvalidCatalog checks if an error is or wraps ErrInvalidCatalog
func IsInvalidCatalog(err error) bool {
	return err != nil && Is(err, ErrInvalidCatalog)
}

// IsInvariantViolation checks if an error is or wraps ErrInvariantViolation
func IsInvariantViolation(err error) bool {
	return err != nil && Is(err, ErrInvariantViolation)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewInvalidCatalogError creates an invalid-catalog error with a formatted message
func NewInvalidCatalogError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidCatalog, Newf(format, args...).Error())
}

// NewInvariantViolationError creates an invariant-violation error with a formatted message
func NewInvariantViolationError(format string, args ...interface{}) error {
	return Wrap(ErrInvariantViolation, Newf(format, args...).Error())
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}
