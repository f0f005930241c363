package pairs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber abbreviates large magnitudes with B/M/K suffixes at two
// decimal places. Zero, NaN, and infinities render as "0.00".
func FormatNumber(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	sign := ""
	abs := v
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%s%.2fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.2fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.2fK", sign, abs/1e3)
	default:
		return fmt.Sprintf("%s%.2f", sign, abs)
	}
}

// FormatUSD renders a price as a dollar amount with thousands separators and
// two to six fraction digits, trimming trailing zeros down to two.
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0.00"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	dot := strings.IndexByte(s, '.')
	return sign + "$" + groupThousands(s[:dot]) + "." + trimFraction(s[dot+1:])
}

func trimFraction(frac string) string {
	for len(frac) > 2 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
