package brdoc

import perr "cadastro/internal/platform/errors"

// FormatCPFMask renders input progressively as 000.000.000-00
// separators appear only once a digit follows them, so any prefix typed so
// far is rendered as a prefix of the final mask
func FormatCPFMask(input string) string {
	d := NormalizeDigits(input)
	switch n := len(d); {
	case n <= 3:
		return d
	case n <= 6:
		return d[:3] + "." + d[3:]
	case n <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// IsValidCPF reports whether input holds exactly 11 digits with matching check digits
func IsValidCPF(input string) bool { return CheckCPF(input).Valid }

// CheckCPF validates input and reports why it failed
// input with more than 11 digits is too long even though the mask truncates it
func CheckCPF(input string) Check {
	d := NormalizeDigits(input)
	c := Check{Digits: d, Formatted: FormatCPFMask(d)}

	switch n := countDigits(input); {
	case n == 0:
		c.Reason = ReasonEmpty
	case n < MaxDigits:
		c.Reason = ReasonTooShort
	case n > MaxDigits:
		c.Reason = ReasonTooLong
	case repeated(d):
		c.Reason = ReasonRepeatedDigits
	case cpfDigit(d, 9) != d[9] || cpfDigit(d, 10) != d[10]:
		c.Reason = ReasonBadCheckDigit
	default:
		c.Valid = true
		c.Reason = ReasonOK
	}
	return c
}

// CPFCheckDigits computes the two check digits for a 9 digit base
// separators in base are ignored
func CPFCheckDigits(base string) (string, error) {
	if n := countDigits(base); n != 9 {
		return "", perr.InvalidArgf("cpf base must have 9 digits, got %d", n)
	}
	d := NormalizeDigits(base)
	first := cpfDigit(d, 9)
	second := cpfDigit(d+string(first), 10)
	return string([]byte{first, second}), nil
}

// cpfDigit computes the check digit over the first n digits of d
// weights run from n+1 down to 2, remainder 10 folds to 0
func cpfDigit(d string, n int) byte {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(d[i]-'0') * (n + 1 - i)
	}
	r := sum * 10 % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}
