package vec2

import gomath "math"

// Radian2Degree converts an angle in radians to degrees.
func Radian2Degree(rad float64) float64 {
	return rad * 180 / gomath.Pi
}

// Degree2Radian converts an angle in degrees to radians.
func Degree2Radian(deg float64) float64 {
	return deg * gomath.Pi / 180
}
