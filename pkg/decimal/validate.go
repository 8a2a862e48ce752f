package decimal

// Validate reports whether s is a non-empty run of decimal digits.
func Validate(s string) error {
	return validate(s, 0)
}

func validate(s string, operand int) error {
	if len(s) == 0 {
		return emptyOperand(operand)
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return &InvalidDigitError{Operand: operand, Index: i, Char: c}
		}
	}
	return nil
}

// IsDigits reports whether s is a valid operand.
func IsDigits(s string) bool {
	return validate(s, 0) == nil
}

// Normalize strips leading zeros. A string of only zeros becomes "0".
// The input is not validated; an empty string is returned unchanged.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
