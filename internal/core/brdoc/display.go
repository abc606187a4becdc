package brdoc

import "strings"

// Missing is rendered in place of an absent stored value
const Missing = "—"

// DisplayCPF renders a stored CPF as 000.000.000-00
// short values are left padded with zeros; digits past the 11th are kept after the mask
func DisplayCPF(stored string) string {
	if stored == "" {
		return Missing
	}
	d := allDigits(stored)
	if len(d) < MaxDigits {
		d = strings.Repeat("0", MaxDigits-len(d)) + d
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11] + d[11:]
}

// DisplayPhone renders a stored phone as (DD) DDDDD-DDDD or (DD) DDDD-DDDD
// any other length is returned as bare digits
func DisplayPhone(stored string) string {
	if stored == "" {
		return Missing
	}
	d := allDigits(stored)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return d
	}
}
