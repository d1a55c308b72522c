package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// EqualSplit divides a value equally among n parties, rounded to cents.
func EqualSplit(value float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return Round(value / float64(n))
}

// ParticipationShare computes a partner's cut of a value given their
// participation percentage, rounded to cents.
func ParticipationShare(value, participation float64) float64 {
	return Round(value * participation / 100)
}
