package common

import "math"

// ConvergenceTarget is the fraction of the remaining distance that smoothing covers
// within one lerp time.
const ConvergenceTarget = 0.99

// Lerp linearly interpolates between a and b. The factor is not clamped.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor, expected in [0, 1]
//
// Returns:
//   - float32: a + (b-a)*t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpFactor derives the per-step interpolation factor for exponential smoothing so that
// ConvergenceTarget of the distance to a fixed target is covered after lerpTime seconds,
// independent of how that time is divided into steps.
//
//	factor = 1 - exp((ln(1 - 0.99) / lerpTime) * stepDuration)
//
// lerpTime must be strictly positive; zero yields NaN or Inf.
//
// Parameters:
//   - lerpTime: seconds to cover 99% of the distance
//   - stepDuration: elapsed seconds for this step
//
// Returns:
//   - float32: interpolation factor in [0, 1) for positive inputs
func LerpFactor(lerpTime, stepDuration float32) float32 {
	rate := math.Log(1-ConvergenceTarget) / float64(lerpTime)
	return float32(1 - math.Exp(rate*float64(stepDuration)))
}

// Pow2 returns 2 raised to the power of exp.
//
// Parameters:
//   - exp: exponent
//
// Returns:
//   - float32: 2^exp
func Pow2(exp float32) float32 {
	return float32(math.Exp2(float64(exp)))
}

// IsFinite reports whether every value is neither NaN nor infinite.
func IsFinite(values ...float32) bool {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
