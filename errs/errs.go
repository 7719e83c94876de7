// Package errs defines the sentinel errors returned by nibmidi.
//
// Callers match them with errors.Is; the returned errors usually wrap a
// sentinel with additional context such as the offending symbol or value.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is returned when a pattern is empty or contains a symbol
	// outside the c, n, v, t, l alphabet.
	ErrInvalidPattern = errors.New("pattern must only contain characters: c,n,v,t,l")

	// ErrEmptyPattern is returned for a zero-length pattern. It wraps ErrInvalidPattern.
	ErrEmptyPattern = fmt.Errorf("%w: empty pattern", ErrInvalidPattern)

	// ErrIncompletePattern is returned by strict encoders for a pattern that does not
	// name every field kind and therefore can never produce a complete record.
	ErrIncompletePattern = errors.New("pattern does not cover every field kind")

	// ErrNoNibbles is returned when an assembly call receives an empty nibble sequence.
	ErrNoNibbles = errors.New("no nibbles to process")

	// ErrNibbleOutOfRange is returned when a value does not fit in four bits.
	ErrNibbleOutOfRange = errors.New("nibble out of range")

	// ErrInvalidBits is returned when a remainder bit string is malformed.
	ErrInvalidBits = errors.New("invalid remainder bits")

	// ErrPatternMismatch is returned when a remainder is resumed by an encoder
	// with a different pattern than the one that produced it.
	ErrPatternMismatch = errors.New("remainder pattern mismatch")
)
