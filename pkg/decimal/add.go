package decimal

// Add returns the decimal digit string of value(num1) + value(num2).
//
// Both operands must be non-empty and contain only '0'..'9'. Leading zeros are
// carried through digit by digit, so they never affect the numeric value of the
// result but can appear in it.
func Add(num1, num2 string) (string, error) {
	if err := validate(num1, 1); err != nil {
		return "", err
	}
	if err := validate(num2, 2); err != nil {
		return "", err
	}
	return add(num1, num2), nil
}

// add assumes both operands are valid.
func add(num1, num2 string) string {
	i, j := len(num1)-1, len(num2)-1

	// The result has at most one more digit than the longer operand.
	out := make([]byte, 0, max(len(num1), len(num2))+1)

	// carry stays 0 or 1: the largest column is 9 + 9 + 1 = 19.
	var carry byte
	for i >= 0 && j >= 0 {
		s := (num1[i] - '0') + (num2[j] - '0') + carry
		out = append(out, '0'+s%10)
		carry = s / 10
		i--
		j--
	}
	for ; i >= 0; i-- {
		s := (num1[i] - '0') + carry
		out = append(out, '0'+s%10)
		carry = s / 10
	}
	for ; j >= 0; j-- {
		s := (num2[j] - '0') + carry
		out = append(out, '0'+s%10)
		carry = s / 10
	}
	if carry > 0 {
		out = append(out, '0'+carry)
	}

	reverse(out)
	return string(out)
}

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

// Sum adds all operands left to right. A single operand is validated and
// returned as given.
func Sum(operands ...string) (string, error) {
	if len(operands) == 0 {
		return "", ErrNoOperands
	}
	for n, op := range operands {
		if err := validate(op, n+1); err != nil {
			return "", err
		}
	}
	total := operands[0]
	for _, op := range operands[1:] {
		total = add(total, op)
	}
	return total, nil
}
