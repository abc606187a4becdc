// Package profile validates and renders the display name of a registered person
//
// Names are normalized before any rule runs
// 1 NFC composition so decomposed accents count as one letter
// 2 width folding of fullwidth forms to ASCII
// 3 whitespace collapsed to single spaces and trimmed
package profile

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"cadastro/internal/core/brdoc"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Placeholder is the name stored for people who have not picked one yet
const Placeholder = "Sem Nome"

// MinRunes is the shortest accepted name after normalization
const MinRunes = 3

// pool of transformer chains, a chain is stateful and not safe to share
var chainPool = sync.Pool{
	New: func() any { return transform.Chain(norm.NFC, width.Fold) },
}

// NormalizeName composes, width folds and collapses whitespace in s
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err == nil {
		s = ns
	}
	return strings.Join(strings.Fields(s), " ")
}

// ValidateName returns the normalized name and the rule it broke, if any
// accepted names hold only A-Z, a-z, U+00C0..U+00FF and spaces
func ValidateName(s string) (string, brdoc.Reason) {
	n := NormalizeName(s)
	switch {
	case n == "":
		return n, brdoc.ReasonEmpty
	case utf8.RuneCountInString(n) < MinRunes:
		return n, brdoc.ReasonTooShort
	case strings.IndexFunc(n, notNameRune) >= 0:
		return n, brdoc.ReasonBadCharacters
	}
	return n, brdoc.ReasonOK
}

// IsValidName reports whether s passes ValidateName
func IsValidName(s string) bool {
	_, r := ValidateName(s)
	return r == brdoc.ReasonOK
}

func notNameRune(r rune) bool {
	switch {
	case r == ' ':
		return false
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return false
	case r >= 0xC0 && r <= 0xFF:
		return false
	}
	return true
}

// IsPending reports whether the person still has to choose a name
func IsPending(name string) bool {
	n := NormalizeName(name)
	return n == "" || n == Placeholder
}

// DisplayName returns the normalized name or the placeholder
func DisplayName(name string) string {
	if n := NormalizeName(name); n != "" {
		return n
	}
	return Placeholder
}

// Initials returns the upper cased first letter of the first two words
// an empty name yields the initials of Placeholder, SN
func Initials(name string) string {
	words := strings.Fields(NormalizeName(name))
	if len(words) == 0 {
		words = strings.Fields(Placeholder)
	}
	var b strings.Builder
	for _, w := range words[:min(2, len(words))] {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// NameCheck is the structured result of CheckName
type NameCheck struct {
	Valid      bool         `json:"valid"      example:"true"`
	Reason     brdoc.Reason `json:"reason"     swaggertype:"string" example:"ok"`
	Normalized string       `json:"normalized" example:"Ana Maria"`
	Initials   string       `json:"initials"   example:"AM"`
	Pending    bool         `json:"pending"    example:"false"`
	Display    string       `json:"display"    example:"Ana Maria"`
}

// CheckName runs every name rule at once
func CheckName(s string) NameCheck {
	n, reason := ValidateName(s)
	return NameCheck{
		Valid:      reason == brdoc.ReasonOK,
		Reason:     reason,
		Normalized: n,
		Initials:   Initials(n),
		Pending:    IsPending(n),
		Display:    DisplayName(n),
	}
}
