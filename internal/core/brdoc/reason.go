package brdoc

import "fmt"

// Reason explains the outcome of a check
// values are stable and serialize as their snake_case name
type Reason uint8

const (
	// ReasonOK means the input passed every rule
	ReasonOK Reason = iota

	// ReasonEmpty means the input held no usable characters
	ReasonEmpty

	// ReasonTooShort means fewer digits or runes than required
	ReasonTooShort

	// ReasonTooLong means more digits than a complete value holds
	ReasonTooLong

	// ReasonRepeatedDigits means all digits are equal (00000000000, 11111111111, ...)
	ReasonRepeatedDigits

	// ReasonBadCheckDigit means a CPF check digit does not match
	ReasonBadCheckDigit

	// ReasonBadAreaCode means the DDD is not in the area code table
	ReasonBadAreaCode

	// ReasonNotMobile means the digit after the DDD is not the mobile marker 9
	ReasonNotMobile

	// ReasonBadCharacters means the input holds characters outside the allowed set
	ReasonBadCharacters
)

var reasonNames = [...]string{
	ReasonOK:             "ok",
	ReasonEmpty:          "empty",
	ReasonTooShort:       "too_short",
	ReasonTooLong:        "too_long",
	ReasonRepeatedDigits: "repeated_digits",
	ReasonBadCheckDigit:  "bad_check_digit",
	ReasonBadAreaCode:    "bad_area_code",
	ReasonNotMobile:      "not_mobile",
	ReasonBadCharacters:  "bad_characters",
}

// String returns the wire name of the reason
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler
func (r Reason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Reason) UnmarshalText(b []byte) error {
	for i, name := range reasonNames {
		if name == string(b) {
			*r = Reason(i)
			return nil
		}
	}
	return fmt.Errorf("unknown reason %q", string(b))
}

// Check is the structured result of CheckCPF and CheckMobilePhone
type Check struct {
	Digits    string `json:"digits"    example:"11144477735"`
	Formatted string `json:"formatted" example:"111.444.777-35"`
	Valid     bool   `json:"valid"     example:"true"`
	Reason    Reason `json:"reason"    swaggertype:"string" example:"ok"`
}
