package brdoc

import "sort"

// mobileMarker is the first subscriber digit of every mobile number
const mobileMarker = '9'

// ddds is the fixed table of valid Brazilian area codes
var ddds = map[string]struct{}{
	"11": {}, "12": {}, "13": {}, "14": {}, "15": {}, "16": {}, "17": {}, "18": {}, "19": {},
	"21": {}, "22": {}, "24": {}, "27": {}, "28": {},
	"31": {}, "32": {}, "33": {}, "34": {}, "35": {}, "37": {}, "38": {},
	"41": {}, "42": {}, "43": {}, "44": {}, "45": {}, "46": {},
	"47": {}, "48": {}, "49": {},
	"51": {}, "53": {}, "54": {}, "55": {},
	"61": {}, "62": {}, "63": {}, "64": {}, "65": {}, "66": {},
	"67": {}, "68": {}, "69": {},
	"71": {}, "73": {}, "74": {}, "75": {}, "77": {},
	"79": {},
	"81": {}, "82": {}, "83": {}, "84": {}, "85": {}, "86": {}, "87": {}, "88": {}, "89": {},
	"91": {}, "92": {}, "93": {}, "94": {}, "95": {}, "96": {}, "97": {}, "98": {}, "99": {},
}

// IsValidDDD reports whether code is a known two digit area code
func IsValidDDD(code string) bool {
	_, ok := ddds[code]
	return ok
}

// DDDs returns the area code table sorted ascending
func DDDs() []string {
	out := make([]string, 0, len(ddds))
	for k := range ddds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FormatPhoneMask renders input progressively as (DD) D DDDD-DDDD
// like FormatCPFMask every partial input renders as a prefix of the final mask
func FormatPhoneMask(input string) string {
	d := NormalizeDigits(input)
	switch n := len(d); {
	case n <= 2:
		return d
	case n == 3:
		return "(" + d[:2] + ") " + d[2:]
	case n <= 7:
		return "(" + d[:2] + ") " + d[2:3] + " " + d[3:]
	default:
		return "(" + d[:2] + ") " + d[2:3] + " " + d[3:7] + "-" + d[7:]
	}
}

// IsValidMobilePhone reports whether input is an 11 digit mobile number with a known DDD
func IsValidMobilePhone(input string) bool { return CheckMobilePhone(input).Valid }

// CheckMobilePhone validates input and reports why it failed
func CheckMobilePhone(input string) Check {
	d := NormalizeDigits(input)
	c := Check{Digits: d, Formatted: FormatPhoneMask(d)}

	switch n := countDigits(input); {
	case n == 0:
		c.Reason = ReasonEmpty
	case n < MaxDigits:
		c.Reason = ReasonTooShort
	case n > MaxDigits:
		c.Reason = ReasonTooLong
	case !IsValidDDD(d[:2]):
		c.Reason = ReasonBadAreaCode
	case d[2] != mobileMarker:
		c.Reason = ReasonNotMobile
	default:
		c.Valid = true
		c.Reason = ReasonOK
	}
	return c
}
