package cli

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/num/quat"

	"github.com/cubeworks/cubeview"
)

// Terminal color per sticker color.
var colorStyles = map[cubeview.Color]lipgloss.Style{
	cubeview.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")),
	cubeview.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")),
	cubeview.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
	cubeview.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")),
	cubeview.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")),
	cubeview.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")),
}

// plasticStyle draws the backing quads between stickers.
var plasticStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))

// drawQuad is a projected polygon queued for painting.
type drawQuad struct {
	pts   [4][2]float64
	depth float64
	style lipgloss.Style
	// stickers paint over their own backing at equal depth
	sticker bool
}

// renderCube paints the projected cube into a width×height cell grid
// using the painter's algorithm: quads sorted back-to-front by projected
// centroid depth, stickers after backings when they tie.
func renderCube(geo *cubeview.Geometry, rot quat.Number, n, width, height int) string {
	quads := make([]drawQuad, 0, len(geo.Faces)+len(geo.Stickers))

	project := func(corners [4][3]float64, centroid [3]float64) ([4][2]float64, float64) {
		pts := ProjectQuad(corners, centroid, rot)
		var out [4][2]float64
		for i := 0; i < 4; i++ {
			out[i] = [2]float64{pts[i].X, pts[i].Y}
		}
		return out, pts[4].Depth
	}

	for _, f := range geo.Faces {
		pts, depth := project(f.Corners, f.Centroid)
		quads = append(quads, drawQuad{pts: pts, depth: depth, style: plasticStyle})
	}
	for _, s := range geo.Stickers {
		pts, depth := project(s.Corners, s.Centroid)
		quads = append(quads, drawQuad{pts: pts, depth: depth, style: colorStyles[s.Color], sticker: true})
	}

	sort.SliceStable(quads, func(i, j int) bool {
		if quads[i].depth != quads[j].depth {
			return quads[i].depth > quads[j].depth
		}
		return !quads[i].sticker && quads[j].sticker
	})

	// Half-extent of the visible world square. The cube's space diagonal
	// is N·√3, plus a little slack for perspective magnification.
	// Terminal cells are about twice as tall as wide; callers compensate
	// by passing width ≈ 2×height.
	lim := 0.95 * float64(n)

	type cell struct {
		set   bool
		style lipgloss.Style
	}
	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
	}

	toCol := func(x float64) float64 { return (x + lim) / (2 * lim) * float64(width) }
	toRow := func(y float64) float64 { return (lim - y) / (2 * lim) * float64(height) }

	for _, q := range quads {
		minC, maxC := width, -1
		minR, maxR := height, -1
		var poly [4][2]float64
		for i, p := range q.pts {
			c, r := toCol(p[0]), toRow(p[1])
			poly[i] = [2]float64{c, r}
			if int(c) < minC {
				minC = int(c)
			}
			if int(c) > maxC {
				maxC = int(c)
			}
			if int(r) < minR {
				minR = int(r)
			}
			if int(r) > maxR {
				maxR = int(r)
			}
		}

		for r := max(minR, 0); r <= min(maxR, height-1); r++ {
			for c := max(minC, 0); c <= min(maxC, width-1); c++ {
				if pointInQuad(float64(c)+0.5, float64(r)+0.5, poly) {
					grid[r][c] = cell{set: true, style: q.style}
				}
			}
		}
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if grid[r][c].set {
				b.WriteString(grid[r][c].style.Render(" "))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ProjectQuad projects a quad's four corners plus its centroid with the
// default camera. Index 4 of the result is the centroid.
func ProjectQuad(corners [4][3]float64, centroid [3]float64, rot quat.Number) []cubeview.Projected {
	pts := [][3]float64{corners[0], corners[1], corners[2], corners[3], centroid}
	return cubeview.ProjectPoints(pts, rot, cubeview.DefaultView, cubeview.DefaultUp)
}

// pointInQuad tests whether (x, y) lies inside a convex quad, accepting
// either winding order.
func pointInQuad(x, y float64, poly [4][2]float64) bool {
	sign := 0
	for i := 0; i < 4; i++ {
		a := poly[i]
		b := poly[(i+1)%4]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
