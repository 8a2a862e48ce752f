// Package bigadd adds non-negative integers of any size written as decimal
// digit strings.
//
// Example usage:
//
//	sum, err := bigadd.Add("999999999999999999", "1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sum) // 1000000000000000000
//
// The implementation lives in [github.com/bft-labs/bigadd/pkg/decimal]; this
// package re-exports it for callers that only need the top-level API.
package bigadd

import "github.com/bft-labs/bigadd/pkg/decimal"

// InvalidDigitError reports a byte outside '0'..'9' in an operand.
type InvalidDigitError = decimal.InvalidDigitError

var (
	// ErrEmptyInput is returned when an operand has no digits.
	ErrEmptyInput = decimal.ErrEmptyInput

	// ErrInvalidDigit matches every *InvalidDigitError under errors.Is.
	ErrInvalidDigit = decimal.ErrInvalidDigit

	// ErrNoOperands is returned by Sum without operands.
	ErrNoOperands = decimal.ErrNoOperands
)

// Add returns num1 + num2. Leading zeros are not stripped; see Normalize.
func Add(num1, num2 string) (string, error) {
	return decimal.Add(num1, num2)
}

// Sum adds all operands left to right.
func Sum(operands ...string) (string, error) {
	return decimal.Sum(operands...)
}

// Normalize strips leading zeros, keeping a single "0" for zero.
func Normalize(s string) string {
	return decimal.Normalize(s)
}

// Validate reports whether s is a non-empty run of decimal digits.
func Validate(s string) error {
	return decimal.Validate(s)
}

// Version is the version of the decimal module backing this package.
const Version = decimal.Version
