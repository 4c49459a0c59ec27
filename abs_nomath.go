//go:build nomath

package straddle

// abs returns the absolute value of a float32 without the math package,
// for freestanding or minimal-runtime builds. Comparison results match
// the default build for all real inputs; NaN still compares unequal to
// everything, as it does through math.Abs.
func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
