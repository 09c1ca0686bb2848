package correlation

import "math"

// Round2 rounds value to two decimal places, breaking exact ties toward the
// even neighbor. The scaled value is split into sign and magnitude and the
// fractional remainder compared against 0.5 explicitly, so results do not
// depend on the platform's default rounding of math.Round or formatting.
func Round2(value float64) float64 {
	const factor = 100.0

	scaled := value * factor
	sign := 1.0
	if scaled < 0 {
		sign = -1.0
	}

	abs := math.Abs(scaled)
	floor := math.Floor(abs)
	diff := abs - floor

	var rounded float64
	switch {
	case diff > 0.5:
		rounded = floor + 1
	case diff < 0.5:
		rounded = floor
	case math.Mod(floor, 2) == 0:
		rounded = floor
	default:
		rounded = floor + 1
	}

	return (rounded * sign) / factor
}
