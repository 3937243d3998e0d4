package spatial

import (
	"math"

	"github.com/golang/geo/r2"
)

// AngularDifferenceDegrees calculates the smallest difference between two angles (degrees)
// Result is in range [-180, 180]
func AngularDifferenceDegrees(angle1, angle2 float64) float64 {
	diff := angle2 - angle1
	// Normalize to [-180, 180]
	for diff > 180 {
		diff -= 360
	}
	for diff < -180 {
		diff += 360
	}
	return diff
}

// AngleAt calculates the angle in degrees at vertex b between the rays b→a
// and b→c. The bearing difference is folded so the result lies in [0, 180].
func AngleAt(a, b, c r2.Point) float64 {
	return math.Abs(AngularDifferenceDegrees(Bearing(b, a), Bearing(b, c)))
}
