// Package brdoc masks and validates Brazilian identity inputs
//
// CPF (taxpayer id) and mobile phone numbers share one shape:
// strip everything that is not an ASCII digit, keep at most 11 digits,
// then render a display mask or run a checksum / table lookup.
// Every function is total and side effect free: garbage in gives a
// deterministic false or neutral string, never a panic.
package brdoc

// MaxDigits is the digit count of a complete CPF or mobile number
const MaxDigits = 11

// NormalizeDigits keeps only ASCII decimal digits, truncated to MaxDigits
func NormalizeDigits(input string) string {
	buf := make([]byte, 0, MaxDigits)
	// bytes >= 0x80 belong to multi-byte runes and are never ASCII digits
	for i := 0; i < len(input) && len(buf) < MaxDigits; i++ {
		if c := input[i]; isDigit(c) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// allDigits keeps every ASCII digit without truncation
func allDigits(input string) string {
	buf := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; isDigit(c) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// countDigits counts ASCII digits before any truncation
func countDigits(input string) int {
	n := 0
	for i := 0; i < len(input); i++ {
		if isDigit(input[i]) {
			n++
		}
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// repeated reports whether every digit of d is the same
func repeated(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
