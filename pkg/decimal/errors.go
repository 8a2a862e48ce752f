package decimal

import (
	"errors"
	"fmt"
)

// Errors returned by the package. Check them with errors.Is.
var (
	// ErrEmptyInput is returned when an operand has no digits.
	ErrEmptyInput = errors.New("decimal: empty input")

	// ErrInvalidDigit is matched by every *InvalidDigitError.
	ErrInvalidDigit = errors.New("decimal: invalid digit")

	// ErrNoOperands is returned by Sum when called without operands.
	ErrNoOperands = errors.New("decimal: no operands")
)

// InvalidDigitError reports a byte outside '0'..'9'.
type InvalidDigitError struct {
	// Operand is the 1-based position of the offending operand, or 0 when
	// a single string was validated on its own.
	Operand int
	// Index is the byte offset inside the operand.
	Index int
	// Char is the offending byte.
	Char byte
}

func (e *InvalidDigitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Operand > 0 {
		return fmt.Sprintf("%s: operand %d: %q at index %d", ErrInvalidDigit.Error(), e.Operand, e.Char, e.Index)
	}
	return fmt.Sprintf("%s: %q at index %d", ErrInvalidDigit.Error(), e.Char, e.Index)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

func emptyOperand(operand int) error {
	if operand > 0 {
		return fmt.Errorf("operand %d: %w", operand, ErrEmptyInput)
	}
	return ErrEmptyInput
}
