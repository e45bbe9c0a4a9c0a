package pose

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

func vec(lm models.Landmark) r2.Point {
	return r2.Point{X: lm.X, Y: lm.Y}
}

// Angle returns the interior angle at p2 formed by the rays towards p1 and
// p3, in degrees within [0, 180]. Z and visibility are ignored.
func Angle(p1, p2, p3 models.Landmark) float64 {
	a := vec(p1).Sub(vec(p2))
	b := vec(p3).Sub(vec(p2))

	radians := math.Atan2(b.Y, b.X) - math.Atan2(a.Y, a.X)
	angle := math.Abs(radians * 180.0 / math.Pi)
	if angle > 180.0 {
		angle = 360.0 - angle
	}
	return angle
}

// Distance returns the planar Euclidean distance between two landmarks in
// normalized coordinate units. Callers scale for display; this is not a
// calibrated physical measurement.
func Distance(p1, p2 models.Landmark) float64 {
	return vec(p2).Sub(vec(p1)).Norm()
}
