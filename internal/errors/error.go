// Package errors defines sentinel errors shared across the catalog layers.
package errors

import "errors"

// ErrBookNotFound is returned when no book exists with the requested ID.
// Missing records are an expected, recoverable outcome, not a fault.
var ErrBookNotFound = errors.New("book not found")
