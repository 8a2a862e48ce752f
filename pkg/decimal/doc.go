// Package decimal adds non-negative integers represented as decimal digit strings.
//
// Operands are plain Go strings holding the bytes '0'..'9', most significant
// digit first. There is no upper bound on their length, which is the point of
// the package: sums that overflow uint64 come back exact.
//
// # Usage
//
//	sum, err := decimal.Add("999999999999999999", "1")
//	if err != nil {
//	    return err
//	}
//	// sum == "1000000000000000000"
//
// Sum folds any number of operands:
//
//	total, err := decimal.Sum("1", "2", "3")
//
// # Leading zeros
//
// Add does not strip leading zeros, so Add("007", "1") returns "008". Use
// [Normalize] on the inputs or on the result when canonical output matters.
//
// # Errors
//
// Empty operands fail with [ErrEmptyInput]. Bytes outside '0'..'9' fail with an
// [InvalidDigitError], which also matches [ErrInvalidDigit] under errors.Is.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package decimal
