package utils

import "math"

// roundEpsilon absorbs binary floating-point noise right below a .5 boundary
// (e.g. 2.675*100 == 267.49999...), so values that are half-up in decimal
// round half-up here too.
const roundEpsilon = 1e-9

// RoundWithTwoDecimalPlace rounds to 2 decimals, half up.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Floor(f*100+0.5+roundEpsilon) / 100
}
