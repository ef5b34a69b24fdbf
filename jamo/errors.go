package jamo

import (
	"errors"
	"fmt"
)

// Error kinds of the jamo codec. Clients test for them with errors.Is.
var (
	// ErrInvalidCodePoint flags a character outside of the block(s) an operation requires.
	ErrInvalidCodePoint = errors.New("invalid code point")

	// ErrNotImplemented flags a recognized, but unsupported archaic compound jamo.
	ErrNotImplemented = errors.New("archaic jamo compound not implemented")

	// ErrInvalidCombination flags parts which do not form a syllable or compound jamo.
	ErrInvalidCombination = errors.New("invalid jamo combination")

	// ErrInvalidSyllable is an ErrInvalidCodePoint for code points outside U+AC00…U+D7A3.
	ErrInvalidSyllable = fmt.Errorf("%w: not a Hangul syllable", ErrInvalidCodePoint)

	// ErrInvalidJamoIndex is an ErrInvalidCombination for out-of-range jamo indices.
	ErrInvalidJamoIndex = fmt.Errorf("%w: jamo index out of range", ErrInvalidCombination)
)

// Error is the error type returned by codec operations. It carries the name of
// the operation and the offending character.
type Error struct {
	Op   string // operation which failed
	Char rune   // character responsible for the failure
	Err  error  // one of the error kinds of this package
}

func (e *Error) Error() string {
	return fmt.Sprintf("jamo.%s %#U: %v", e.Op, e.Char, e.Err)
}

// Unwrap makes error kinds visible for errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

func failure(op string, r rune, kind error) *Error {
	return &Error{Op: op, Char: r, Err: kind}
}
