//go:build !nomath

package straddle

import "math"

// abs returns the absolute value of a float32.
func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
