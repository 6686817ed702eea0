// Package errors holds the error values shared by the tuple packages, plus a
// small accumulator for reporting several failures at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the root of every component index failure.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch is returned when a slice-shaped input doesn't have
	// exactly as many elements as the tuple has components.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNilComponent is reported by validation for every nil component.
	ErrNilComponent = errors.New("nil component")
)

// IndexError describes an attempt to address component Index of a tuple
// that only has Len components. It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d not in [0, %d)", ErrIndexOutOfRange.Error(), e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError if idx is not a valid index for a
// sequence of the given length, and nil otherwise.
func CheckIndex(idx, length int) error {
	if idx < 0 || idx >= length {
		return &IndexError{Index: idx, Len: length}
	}

	return nil
}

// LengthError describes an input of Got elements where Want were required.
// It unwraps to ErrLengthMismatch.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: want %d components, got %d", ErrLengthMismatch.Error(), e.Want, e.Got)
}

func (e *LengthError) Unwrap() error {
	return ErrLengthMismatch
}

// CheckLength returns a *LengthError if got != want.
func CheckLength(want, got int) error {
	if want != got {
		return &LengthError{Want: want, Got: got}
	}

	return nil
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf formats a message wrapping err and appends it. Nil errors are ignored.
func (c *Collection) Addf(err error, format string, args ...any) {
	if err == nil {
		return
	}

	c.errors = append(c.errors, fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
