package utils

import "math"

// Round2 rounds a currency or percentage figure to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SafePercent returns part/base*100 rounded to 2 decimals, or 0 when base
// is 0 so a zero denominator never surfaces as NaN or Inf.
func SafePercent(part, base float64) float64 {
	if base == 0 {
		return 0
	}
	return Round2(part / base * 100)
}
