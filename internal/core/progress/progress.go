// Package progress computes the delivered versus promised indicator
package progress

import "strconv"

// Band is the colour band of a progress bar
type Band string

const (
	// BandRed is below 25 percent
	BandRed Band = "red"
	// BandYellow is below 60 percent
	BandYellow Band = "yellow"
	// BandGreen is 60 percent or more
	BandGreen Band = "green"
)

// Progress is the rendered indicator
type Progress struct {
	Delivered int     `json:"entregues"  example:"30"`
	Promised  int     `json:"prometidas" example:"40"`
	Percent   float64 `json:"percent"    example:"75"`
	Formatted string  `json:"formatted"  example:"75.00%"`
	Band      Band    `json:"band"       example:"green"`
}

// Compute derives the percentage and band for delivered out of promised
// promised <= 0 yields 0 percent; negative delivered counts as 0
// percent is not capped, over delivery reads above 100
func Compute(delivered, promised int) Progress {
	delivered = max(delivered, 0)
	p := Progress{Delivered: delivered, Promised: promised}
	if promised > 0 {
		p.Percent = float64(delivered) / float64(promised) * 100
	}
	shown := strconv.FormatFloat(p.Percent, 'f', 2, 64)
	p.Formatted = shown + "%"
	// the band follows the displayed value, 24.99975 shows as 25.00% and is yellow
	rounded, _ := strconv.ParseFloat(shown, 64)
	p.Band = BandFor(rounded)
	return p
}

// BandFor maps a percentage to its colour band
func BandFor(percent float64) Band {
	switch {
	case percent < 25:
		return BandRed
	case percent < 60:
		return BandYellow
	default:
		return BandGreen
	}
}

