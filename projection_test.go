package cubeview

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

const projEps = 1e-9

func TestProjectOrigin(t *testing.T) {
	pts := [][3]float64{{0, 0, 0}}
	out := ProjectPoints(pts, quat.Number{Real: 1}, DefaultView, DefaultUp)

	if math.Abs(out[0].X) > projEps || math.Abs(out[0].Y) > projEps {
		t.Errorf("Origin should project to screen center, got (%v, %v)", out[0].X, out[0].Y)
	}
	if math.Abs(out[0].Depth-10) > projEps {
		t.Errorf("Origin depth = %v, want 10", out[0].Depth)
	}
}

func TestProjectAxesWithIdentityRotation(t *testing.T) {
	pts := [][3]float64{{1, 0, 0}, {0, 1, 0}}
	out := ProjectPoints(pts, quat.Number{Real: 1}, DefaultView, DefaultUp)

	if math.Abs(out[0].X-1) > projEps || math.Abs(out[0].Y) > projEps {
		t.Errorf("+x should project to (1, 0), got (%v, %v)", out[0].X, out[0].Y)
	}
	if math.Abs(out[1].X) > projEps || math.Abs(out[1].Y-1) > projEps {
		t.Errorf("+y should project to (0, 1), got (%v, %v)", out[1].X, out[1].Y)
	}
}

func TestDepthOrdering(t *testing.T) {
	// The point nearer the viewer must have the smaller depth and appear
	// magnified by the perspective divide.
	pts := [][3]float64{{1, 0, 1}, {1, 0, -1}}
	out := ProjectPoints(pts, quat.Number{Real: 1}, DefaultView, DefaultUp)

	near, far := out[0], out[1]
	if near.Depth >= far.Depth {
		t.Errorf("Near depth %v should be below far depth %v", near.Depth, far.Depth)
	}
	if near.X <= far.X {
		t.Errorf("Perspective should magnify the nearer point: near X %v, far X %v", near.X, far.X)
	}
}

func TestFromAxisAngleQuarterTurn(t *testing.T) {
	q := FromAxisAngle([3]float64{0, 0, 1}, math.Pi/2)
	p := RotatePoint(q, [3]float64{1, 0, 0})

	want := [3]float64{0, 1, 0}
	for i := range p {
		if math.Abs(p[i]-want[i]) > projEps {
			t.Fatalf("Rotated +x about z by 90°: got %v, want %v", p, want)
		}
	}
}

func TestRotatePointPreservesLength(t *testing.T) {
	q := FromAxisAngle([3]float64{1, -1, 0}, -math.Pi/6)
	p := RotatePoint(q, [3]float64{1, 2, 3})

	before := math.Sqrt(1 + 4 + 9)
	after := math.Sqrt(dot(p, p))
	if math.Abs(before-after) > projEps {
		t.Errorf("Rotation changed length: %v -> %v", before, after)
	}
}

func TestFromAxisAngleNormalizesAxis(t *testing.T) {
	a := FromAxisAngle([3]float64{0, 0, 1}, math.Pi/3)
	b := FromAxisAngle([3]float64{0, 0, 10}, math.Pi/3)

	if math.Abs(a.Real-b.Real) > projEps || math.Abs(a.Kmag-b.Kmag) > projEps {
		t.Error("Axis length should not affect the rotation")
	}
}

func TestComposedRotations(t *testing.T) {
	// Two quarter turns about z equal one half turn.
	quarter := FromAxisAngle([3]float64{0, 0, 1}, math.Pi/2)
	composed := quat.Mul(quarter, quarter)

	p := RotatePoint(composed, [3]float64{1, 0, 0})
	want := [3]float64{-1, 0, 0}
	for i := range p {
		if math.Abs(p[i]-want[i]) > projEps {
			t.Fatalf("Composed rotation: got %v, want %v", p, want)
		}
	}
}
