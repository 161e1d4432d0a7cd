package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// LogToPower converts a log10-power value to linear power.
func LogToPower(logPower float64) float64 {
	return math.Pow(10, logPower)
}

// PowerToLog converts linear power to log10 power.
// Returns -Inf for zero and NaN for negative values.
func PowerToLog(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return math.Log10(power)
}
