package calc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseOperands reads one operand per line. Blank lines and lines starting
// with '#' are skipped; surrounding whitespace is trimmed. Operands are not
// validated here, and a line may be of any length.
func ParseOperands(r io.Reader) ([]string, error) {
	var operands []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read operands: %w", err)
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			operands = append(operands, trimmed)
		}
		if err == io.EOF {
			return operands, nil
		}
	}
}

// ReadOperandsFile parses the operands stored at path.
func ReadOperandsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseOperands(f)
}
