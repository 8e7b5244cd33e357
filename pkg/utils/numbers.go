package utils

import (
	"math"
)

// Round2 rounds a monetary value to 2 decimal places. Applied after noise so
// stored amounts always look like real till figures.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
