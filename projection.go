package cubeview

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Default camera for the interactive view.
var (
	DefaultView = [3]float64{0, 0, 10}
	DefaultUp   = [3]float64{0, 1, 0}
)

// StartOrientation returns the initial display orientation: a slight tilt
// about the (1, -1, 0) diagonal so three faces are visible.
func StartOrientation() quat.Number {
	return FromAxisAngle([3]float64{1, -1, 0}, -math.Pi/6)
}

// FromAxisAngle builds the unit quaternion rotating by theta radians
// about the given axis (right-hand rule). The axis need not be
// normalized.
func FromAxisAngle(axis [3]float64, theta float64) quat.Number {
	norm := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if norm == 0 {
		return quat.Number{Real: 1}
	}
	s := math.Sin(theta/2) / norm
	return quat.Number{
		Real: math.Cos(theta / 2),
		Imag: s * axis[0],
		Jmag: s * axis[1],
		Kmag: s * axis[2],
	}
}

// RotatePoint rotates p by the unit quaternion q.
func RotatePoint(q quat.Number, p [3]float64) [3]float64 {
	pq := quat.Number{Imag: p[0], Jmag: p[1], Kmag: p[2]}
	r := quat.Mul(quat.Mul(q, pq), quat.Conj(q))
	return [3]float64{r.Imag, r.Jmag, r.Kmag}
}

// Projected is a point in screen space. Depth is the distance component
// toward the viewer: smaller depth is nearer, so painting in descending
// depth order draws back-to-front.
type Projected struct {
	X, Y  float64
	Depth float64
}

// ProjectPoints rotates each 3D point by the current orientation and
// perspective-projects it onto the screen plane through the origin, for a
// viewer at view with the given up vector. Pure function of its inputs.
func ProjectPoints(pts [][3]float64, q quat.Number, view, up [3]float64) []Projected {
	zdir := normalize(view)
	xdir := normalize(cross(up, view))
	ydir := normalize(cross(view, xdir))

	viewZ := dot(view, zdir)

	out := make([]Projected, len(pts))
	for i, p := range pts {
		rp := RotatePoint(q, p)

		// Vector from the viewer to the point, projected back onto the
		// plane through the origin perpendicular to the view direction.
		d := [3]float64{rp[0] - view[0], rp[1] - view[1], rp[2] - view[2]}
		dz := dot(d, zdir)
		scale := -viewZ / dz
		proj := [3]float64{d[0] * scale, d[1] * scale, d[2] * scale}

		out[i] = Projected{
			X:     dot(proj, xdir),
			Y:     dot(proj, ydir),
			Depth: -dz,
		}
	}
	return out
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(dot(v, v))
	if n == 0 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}
