package spatial

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// Vec converts a joint coordinate into a planar vector
func Vec(p models.JointPoint) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Bearing calculates the signed direction of the vector p1→p2 relative to
// the horizontal axis. Returns degrees in (-180, 180].
func Bearing(p1, p2 r2.Point) float64 {
	d := p2.Sub(p1)
	bearing := (s1.Angle(math.Atan2(d.Y, d.X)) * s1.Radian).Degrees()

	// atan2 yields -180 for (-x, -0); fold it onto the open end of the range
	if bearing <= -180 {
		bearing += 360
	}
	return bearing
}

// Midpoint calculates the midpoint between two points
func Midpoint(p1, p2 r2.Point) r2.Point {
	return p1.Add(p2).Mul(0.5)
}

// Distance calculates the planar distance between two points
func Distance(p1, p2 r2.Point) float64 {
	return p2.Sub(p1).Norm()
}
