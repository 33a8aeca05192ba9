package cubeview

import (
	"math"
	"sort"
)

// stickerInset is the fraction of a cubie square covered by the colored
// sticker; the rest shows the plastic backing.
const stickerInset = 0.9

// Quad is a planar polygon with four corners and its centroid, in cube
// coordinates (the cube is centered on the origin and spans ±N/2).
type Quad struct {
	Corners  [4][3]float64
	Centroid [3]float64
}

// FaceQuad is the full-size plastic backing square of one sticker,
// keyed by the face the sticker lies on.
type FaceQuad struct {
	Quad
	Face Face
}

// StickerQuad is the inset colored square of one sticker.
type StickerQuad struct {
	Quad
	Face  Face
	Color Color
}

// Geometry is the drawable state of the cube: one backing quad and one
// colored quad per sticker, recomputed from the sticker positions. Both
// lists are in canonical centroid order.
type Geometry struct {
	Faces    []FaceQuad
	Stickers []StickerQuad
}

// faceSortIndex gives a stable numeric key per face for canonical
// ordering. The order itself is arbitrary but fixed.
func faceSortIndex(f Face) int {
	switch f {
	case FaceR:
		return 0
	case FaceL:
		return 1
	case FaceU:
		return 2
	case FaceD:
		return 3
	case FaceF:
		return 4
	default:
		return 5
	}
}

// centroidLess is the canonical ordering rule: lexicographic on
// (x, y, z, face-id). Distinct stickers occupy distinct surface points,
// so this is a total order with no ties.
func centroidLess(a, b [3]float64, af, bf Face) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return faceSortIndex(af) < faceSortIndex(bf)
}

// Geometry recomputes all drawable quads from the current sticker state.
func (c *Cube) Geometry() *Geometry {
	return c.GeometryPartial(Move{}, 0)
}

// GeometryPartial recomputes the drawable quads with the layer addressed
// by m rotated partway through the move: progress 0 is the current state,
// progress 1 matches the state after Apply(m). Used for animation frames;
// the cube state itself is never touched.
func (c *Cube) GeometryPartial(m Move, progress float64) *Geometry {
	g := &Geometry{
		Faces:    make([]FaceQuad, 0, len(c.stickers)),
		Stickers: make([]StickerQuad, 0, len(c.stickers)),
	}

	// Partial rotation setup. An invalid or zero move rotates nothing.
	active := false
	var axis, target int
	var angle float64
	if progress != 0 {
		if ax, sign, ok := faceAxis(m.Face); ok && m.Layer >= 0 && m.Layer < c.n {
			axis = ax
			target = m.Layer
			if sign > 0 {
				target = c.n - 1 - m.Layer
			}
			// Clockwise from outside a positive face is a negative
			// right-hand angle, mirroring rotateLayer.
			angle = -progress * float64(NormalizeTurn(int(m.Turn))) * float64(sign) * math.Pi / 2
			active = angle != 0
		}
	}

	half := float64(c.n-1) / 2
	for _, s := range c.stickers {
		sAxis, _, _ := faceAxis(s.Face())
		a, b := tangentAxes(sAxis)

		// Cubie center in cube coordinates, pushed to the surface.
		var center [3]float64
		for i := 0; i < 3; i++ {
			center[i] = float64(s.Pos[i]) - half
		}
		center[sAxis] += 0.5 * float64(s.Normal[sAxis])

		backing := buildQuad(center, a, b, 0.5)
		sticker := buildQuad(center, a, b, 0.5*stickerInset)

		if active && s.Pos[axis] == target {
			rotateQuad(&backing, axis, angle)
			rotateQuad(&sticker, axis, angle)
		}

		g.Faces = append(g.Faces, FaceQuad{Quad: backing, Face: s.Face()})
		g.Stickers = append(g.Stickers, StickerQuad{Quad: sticker, Face: s.Face(), Color: s.Color})
	}

	sort.Slice(g.Faces, func(i, j int) bool {
		return centroidLess(g.Faces[i].Centroid, g.Faces[j].Centroid, g.Faces[i].Face, g.Faces[j].Face)
	})
	sort.Slice(g.Stickers, func(i, j int) bool {
		return centroidLess(g.Stickers[i].Centroid, g.Stickers[j].Centroid, g.Stickers[i].Face, g.Stickers[j].Face)
	})

	return g
}

// buildQuad makes a square of half-extent h around center, spanning the
// two tangent axes a and b.
func buildQuad(center [3]float64, a, b int, h float64) Quad {
	offsets := [4][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}}

	var q Quad
	q.Centroid = center
	for i, off := range offsets {
		corner := center
		corner[a] += off[0]
		corner[b] += off[1]
		q.Corners[i] = corner
	}
	return q
}

// rotateQuad rotates a quad's corners and centroid about the given axis
// through the origin by angle, right-hand rule.
func rotateQuad(q *Quad, axis int, angle float64) {
	sin, cos := math.Sin(angle), math.Cos(angle)
	for i := range q.Corners {
		q.Corners[i] = rotatePoint(q.Corners[i], axis, sin, cos)
	}
	q.Centroid = rotatePoint(q.Centroid, axis, sin, cos)
}

func rotatePoint(p [3]float64, axis int, sin, cos float64) [3]float64 {
	switch axis {
	case 0:
		return [3]float64{p[0], p[1]*cos - p[2]*sin, p[1]*sin + p[2]*cos}
	case 1:
		return [3]float64{p[0]*cos + p[2]*sin, p[1], -p[0]*sin + p[2]*cos}
	default:
		return [3]float64{p[0]*cos - p[1]*sin, p[0]*sin + p[1]*cos, p[2]}
	}
}
