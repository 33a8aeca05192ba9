package cubeview

import (
	"math/rand"
	"strings"
)

// Color represents a sticker color, indexed to match the color-channel
// encoding of the pretrained move predictor.
type Color byte

const (
	Red    Color = 0 // Left face when solved
	Yellow Color = 1 // Up face when solved
	Orange Color = 2 // Right face when solved
	White  Color = 3 // Down face when solved
	Green  Color = 4 // Front face when solved
	Blue   Color = 5 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case White:
		return "W"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// SolvedColor returns the color a face shows when the cube is solved.
func SolvedColor(f Face) Color {
	switch f {
	case FaceL:
		return Red
	case FaceU:
		return Yellow
	case FaceR:
		return Orange
	case FaceD:
		return White
	case FaceF:
		return Green
	case FaceB:
		return Blue
	default:
		return Red
	}
}

// Sticker is one colored unit on the cube surface. Its position is the
// integer cubie coordinate (each axis in [0, N)) and its normal is the
// outward axis-aligned unit vector of the face it currently lies on.
// Rotations permute position and normal exactly; the color rides along.
type Sticker struct {
	Pos    [3]int
	Normal [3]int
	Color  Color
}

// Face returns the face this sticker currently belongs to, derived from
// its outward normal. Every sticker belongs to exactly one face.
func (s Sticker) Face() Face {
	switch {
	case s.Normal[0] == 1:
		return FaceR
	case s.Normal[0] == -1:
		return FaceL
	case s.Normal[1] == 1:
		return FaceU
	case s.Normal[1] == -1:
		return FaceD
	case s.Normal[2] == 1:
		return FaceF
	default:
		return FaceB
	}
}

// Cube is an N×N×N cube held as a flat collection of stickers plus the
// move history that produced the current state. All mutation goes through
// Apply and Undo, which are exact integer permutations, so replaying the
// inverted history always restores the solved state bit-for-bit.
type Cube struct {
	n        int
	stickers []Sticker
	history  []Move
}

// faceAxis returns the axis index (0=x, 1=y, 2=z) and outward sign of a
// face. ok is false for unrecognized faces.
func faceAxis(f Face) (axis, sign int, ok bool) {
	switch f {
	case FaceR:
		return 0, 1, true
	case FaceL:
		return 0, -1, true
	case FaceU:
		return 1, 1, true
	case FaceD:
		return 1, -1, true
	case FaceF:
		return 2, 1, true
	case FaceB:
		return 2, -1, true
	}
	return 0, 0, false
}

// NewCube creates a solved cube of edge length n.
// Returns ErrCubeSize for n < 2.
func NewCube(n int) (*Cube, error) {
	if n < 2 {
		return nil, ErrCubeSize
	}

	c := &Cube{
		n:        n,
		stickers: make([]Sticker, 0, 6*n*n),
	}

	// One sticker per boundary cell of each face.
	for _, f := range []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB} {
		axis, sign, _ := faceAxis(f)
		color := SolvedColor(f)

		coord := 0
		if sign > 0 {
			coord = n - 1
		}

		a, b := tangentAxes(axis)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				var s Sticker
				s.Pos[axis] = coord
				s.Pos[a] = i
				s.Pos[b] = j
				s.Normal[axis] = sign
				s.Color = color
				c.stickers = append(c.stickers, s)
			}
		}
	}

	return c, nil
}

// tangentAxes returns the two axes perpendicular to the given axis, in
// ascending order.
func tangentAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// Size returns the cube's edge length N.
func (c *Cube) Size() int {
	return c.n
}

// History returns a copy of the recorded move history.
func (c *Cube) History() []Move {
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// Clone creates a deep copy of the cube, including its history.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		n:        c.n,
		stickers: make([]Sticker, len(c.stickers)),
		history:  make([]Move, len(c.history)),
	}
	copy(clone.stickers, c.stickers)
	copy(clone.history, c.history)
	return clone
}

// IsSolved returns true if every face shows its solved color.
func (c *Cube) IsSolved() bool {
	for _, s := range c.stickers {
		if s.Color != SolvedColor(s.Face()) {
			return false
		}
	}
	return true
}

// rotatePos applies one +90° right-hand rotation about the given axis to
// an integer cubie coordinate. m is N-1.
func rotatePos(axis int, p [3]int, m int) [3]int {
	switch axis {
	case 0: // x: (y,z) -> (m-z, y)
		return [3]int{p[0], m - p[2], p[1]}
	case 1: // y: (x,z) -> (z, m-x)
		return [3]int{p[2], p[1], m - p[0]}
	default: // z: (x,y) -> (m-y, x)
		return [3]int{m - p[1], p[0], p[2]}
	}
}

// rotateVec applies the same +90° right-hand rotation to a direction.
func rotateVec(axis int, v [3]int) [3]int {
	switch axis {
	case 0:
		return [3]int{v[0], -v[2], v[1]}
	case 1:
		return [3]int{v[2], v[1], -v[0]}
	default:
		return [3]int{-v[1], v[0], v[2]}
	}
}

// Apply rotates the move's layer of stickers by 90°×turns around the
// face's axis and records the move in history.
//
// A net-zero rotation (turns ≡ 0 mod 4) is a no-op and is never recorded.
// A move that exactly cancels the previous history entry pops that entry
// instead of appending, so a sequence like U U' leaves the history empty.
// Returns ErrInvalidFace or ErrLayerOutOfRange without touching state.
func (c *Cube) Apply(m Move) error {
	axis, sign, ok := faceAxis(m.Face)
	if !ok {
		return ErrInvalidFace
	}
	if m.Layer < 0 || m.Layer >= c.n {
		return ErrLayerOutOfRange
	}

	turn := NormalizeTurn(int(m.Turn))
	if turn == 0 {
		return nil
	}

	c.rotateLayer(axis, sign, m.Layer, int(turn))
	c.record(Move{Face: m.Face, Turn: turn, Layer: m.Layer})
	return nil
}

// rotateLayer performs the integer permutation for a layer turn.
// turn is the signed quarter-turn count, clockwise positive when viewed
// from outside the face.
func (c *Cube) rotateLayer(axis, sign, layer, turn int) {
	m := c.n - 1

	// Coordinate of the rotating slice along the axis.
	target := layer
	if sign > 0 {
		target = m - layer
	}

	// A clockwise turn viewed from outside a positive face is a negative
	// right-hand rotation about that axis, and vice versa.
	steps := (((-turn * sign) % 4) + 4) % 4

	for i := range c.stickers {
		s := &c.stickers[i]
		if s.Pos[axis] != target {
			continue
		}
		for k := 0; k < steps; k++ {
			s.Pos = rotatePos(axis, s.Pos, m)
			s.Normal = rotateVec(axis, s.Normal)
		}
	}
}

// record appends a move to history, popping the previous entry instead
// when the new move exactly cancels it.
func (c *Cube) record(m Move) {
	if n := len(c.history); n > 0 && c.history[n-1].IsCancellation(m) {
		c.history = c.history[:n-1]
		return
	}
	c.history = append(c.history, m)
}

// Undo reverts the most recent history entry by applying its inverse
// without recording. Returns the undone move, or ok=false if the history
// is empty.
func (c *Cube) Undo() (Move, bool) {
	n := len(c.history)
	if n == 0 {
		return Move{}, false
	}
	m := c.history[n-1]
	c.history = c.history[:n-1]

	axis, sign, _ := faceAxis(m.Face)
	c.rotateLayer(axis, sign, m.Layer, -int(m.Turn))
	return m, true
}

// UndoAll replays the history in reverse with inverted turns, restoring
// the solved state exactly, and leaves the history empty.
func (c *Cube) UndoAll() {
	for {
		if _, ok := c.Undo(); !ok {
			return
		}
	}
}

// ApplyMove applies a notation-level move. Half turns decompose into two
// recorded quarter turns so that undo reverses them one quarter turn at a
// time.
func (c *Cube) ApplyMove(m Move) error {
	if m.Turn == Double {
		q := Move{Face: m.Face, Turn: CW, Layer: m.Layer}
		if err := c.Apply(q); err != nil {
			return err
		}
		return c.Apply(q)
	}
	return c.Apply(m)
}

// ApplyNotation parses a space-separated move sequence and applies it.
// Example: "R U R' U2"
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	for _, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// Scramble applies k random vocabulary tokens and returns them.
func (c *Cube) Scramble(rng *rand.Rand, k int) []Move {
	moves := make([]Move, 0, k)
	for i := 0; i < k; i++ {
		m := MoveFromToken(uint8(rng.Intn(VocabularySize)))
		if err := c.ApplyMove(m); err != nil {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// Facelets returns the face's color grid in reading order: row 0 is the
// top row when looking straight at the face with the cube in standard
// orientation (Up on top, Front toward the viewer).
func (c *Cube) Facelets(f Face) [][]Color {
	grid := make([][]Color, c.n)
	for i := range grid {
		grid[i] = make([]Color, c.n)
	}

	m := c.n - 1
	for _, s := range c.stickers {
		if s.Face() != f {
			continue
		}
		var row, col int
		x, y, z := s.Pos[0], s.Pos[1], s.Pos[2]
		switch f {
		case FaceU:
			row, col = z, x
		case FaceD:
			row, col = m-z, x
		case FaceF:
			row, col = m-y, x
		case FaceB:
			row, col = m-y, m-x
		case FaceR:
			row, col = m-y, m-z
		case FaceL:
			row, col = m-y, z
		}
		grid[row][col] = s.Color
	}
	return grid
}

// String returns the unfolded net of the cube: Up on top, then the
// Left/Front/Right/Back band, then Down.
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.n)

	writeRow := func(grid [][]Color, row int) {
		for col := 0; col < c.n; col++ {
			b.WriteString(grid[row][col].String())
			b.WriteByte(' ')
		}
	}

	up := c.Facelets(FaceU)
	for row := 0; row < c.n; row++ {
		b.WriteString(indent)
		writeRow(up, row)
		b.WriteByte('\n')
	}

	band := [][][]Color{
		c.Facelets(FaceL),
		c.Facelets(FaceF),
		c.Facelets(FaceR),
		c.Facelets(FaceB),
	}
	for row := 0; row < c.n; row++ {
		for _, grid := range band {
			writeRow(grid, row)
		}
		b.WriteByte('\n')
	}

	down := c.Facelets(FaceD)
	for row := 0; row < c.n; row++ {
		b.WriteString(indent)
		writeRow(down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
