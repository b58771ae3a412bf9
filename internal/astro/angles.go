package astro

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Normalize360 wraps an angle in degrees to [0, 360).
// Exact for negative inputs: Normalize360(-90) == 270.
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeSigned180 wraps an angle in degrees to [-180, 180).
// Used for hour angles, where the sign carries east/west of meridian.
func NormalizeSigned180(deg float64) float64 {
	deg = Normalize360(deg)
	if deg >= 180 {
		deg -= 360
	}
	return deg
}
