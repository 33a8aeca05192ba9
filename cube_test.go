package cubeview

import (
	"math/rand"
	"testing"
)

func mustCube(t *testing.T, n int) *Cube {
	t.Helper()
	c, err := NewCube(n)
	if err != nil {
		t.Fatalf("NewCube(%d): %v", n, err)
	}
	return c
}

func sameState(a, b *Cube) bool {
	if a.n != b.n || len(a.stickers) != len(b.stickers) {
		return false
	}
	for i := range a.stickers {
		if a.stickers[i] != b.stickers[i] {
			return false
		}
	}
	return true
}

func TestNewCubeIsSolved(t *testing.T) {
	c := mustCube(t, 3)
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if len(c.stickers) != 6*9 {
		t.Errorf("Expected 54 stickers, got %d", len(c.stickers))
	}
}

func TestNewCubeSizeError(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := NewCube(n); err != ErrCubeSize {
			t.Errorf("NewCube(%d): expected ErrCubeSize, got %v", n, err)
		}
	}
}

func TestApplyInvalidFace(t *testing.T) {
	c := mustCube(t, 3)
	err := c.Apply(Move{Face: "X", Turn: CW})
	if err != ErrInvalidFace {
		t.Errorf("Expected ErrInvalidFace, got %v", err)
	}
	if len(c.history) != 0 {
		t.Error("Rejected move must not be recorded")
	}
}

func TestApplyLayerOutOfRange(t *testing.T) {
	c := mustCube(t, 3)
	for _, layer := range []int{-1, 3, 10} {
		err := c.Apply(Move{Face: FaceR, Turn: CW, Layer: layer})
		if err != ErrLayerOutOfRange {
			t.Errorf("Layer %d: expected ErrLayerOutOfRange, got %v", layer, err)
		}
	}
	if !c.IsSolved() {
		t.Error("Rejected moves must not touch state")
	}
}

func TestZeroTurnNotRecorded(t *testing.T) {
	c := mustCube(t, 3)
	for _, turns := range []Turn{0, 4, -4, 8} {
		if err := c.Apply(Move{Face: FaceR, Turn: turns}); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	if len(c.history) != 0 {
		t.Errorf("Net-zero turns recorded: history length %d", len(c.history))
	}
	if !c.IsSolved() {
		t.Error("Net-zero turns must leave state unchanged")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := mustCube(t, 3)
	c.Apply(Move{Face: FaceR, Turn: CW})
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestApplyThenInverseRestores(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}
	for n := 2; n <= 4; n++ {
		for _, face := range faces {
			for layer := 0; layer < n; layer++ {
				for _, turns := range []Turn{CW, CCW, Double} {
					c := mustCube(t, n)

					// Start from a non-trivial state so restoration is
					// meaningful, not just solved-to-solved.
					c.Apply(Move{Face: FaceF, Turn: CW})
					before := c.Clone()

					m := Move{Face: face, Turn: turns, Layer: layer}
					if err := c.Apply(m); err != nil {
						t.Fatalf("Apply(%v): %v", m, err)
					}
					if err := c.Apply(m.Inverse()); err != nil {
						t.Fatalf("Apply inverse: %v", err)
					}

					if !sameState(c, before) {
						t.Errorf("N=%d %v layer %d turn %d: inverse did not restore state",
							n, face, layer, turns)
					}
				}
			}
		}
	}
}

func TestFourQuarterTurnsAllFaces(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}
	for _, face := range faces {
		c := mustCube(t, 3)
		for i := 0; i < 4; i++ {
			c.Apply(Move{Face: face, Turn: CW})
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := mustCube(t, 3)
	for i := 0; i < 6; i++ {
		if err := c.ApplyNotation("R U R' U'"); err != nil {
			t.Fatalf("ApplyNotation: %v", err)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestUndoAllRestoresSolved(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 2; n <= 4; n++ {
		c := mustCube(t, n)
		for i := 0; i < 40; i++ {
			m := Move{
				Face:  []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}[rng.Intn(6)],
				Turn:  []Turn{CW, CCW, Double}[rng.Intn(3)],
				Layer: rng.Intn(n),
			}
			if err := c.Apply(m); err != nil {
				t.Fatalf("Apply: %v", err)
			}
		}

		c.UndoAll()
		if !c.IsSolved() {
			t.Errorf("N=%d: UndoAll did not restore solved state", n)
			t.Log(c.String())
		}
		if len(c.history) != 0 {
			t.Errorf("N=%d: history not empty after UndoAll", n)
		}
	}
}

func TestCancellingMovesEmptyHistory(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("U U'"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	if !c.IsSolved() {
		t.Error("U U' should restore solved state")
	}
	if len(c.history) != 0 {
		t.Errorf("U U' should leave empty history, got %d entries", len(c.history))
	}
}

func TestHalfTurnDecomposition(t *testing.T) {
	double := mustCube(t, 3)
	if err := double.ApplyNotation("R2"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}

	twice := mustCube(t, 3)
	if err := twice.ApplyNotation("R R"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}

	if !sameState(double, twice) {
		t.Error("R2 should produce the same state as R R")
	}
	if len(double.history) != 2 {
		t.Errorf("R2 should record two quarter turns, got %d entries", len(double.history))
	}
}

func TestDirectApplyDoubleIsOneEntry(t *testing.T) {
	// Apply is the low-level operation; only the notation path decomposes.
	c := mustCube(t, 3)
	if err := c.Apply(Move{Face: FaceR, Turn: Double}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(c.history) != 1 {
		t.Errorf("Direct Apply of a half turn should record one entry, got %d", len(c.history))
	}
	c.UndoAll()
	if !c.IsSolved() {
		t.Error("UndoAll should invert a half-turn entry")
	}
}

func TestScrambleThenUndoAll(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := mustCube(t, 3)
	moves := c.Scramble(rng, 6)
	if len(moves) != 6 {
		t.Errorf("Expected 6 scramble moves, got %d", len(moves))
	}

	c.UndoAll()
	if !c.IsSolved() {
		t.Error("UndoAll after scramble should restore solved state")
	}
}

func TestFaceletsSolved(t *testing.T) {
	c := mustCube(t, 3)
	for _, f := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		grid := c.Facelets(f)
		want := SolvedColor(f)
		for r := range grid {
			for col := range grid[r] {
				if grid[r][col] != want {
					t.Errorf("Face %v at (%d,%d): got %v, want %v", f, r, col, grid[r][col], want)
				}
			}
		}
	}
}

func TestEveryStickerHasOneFace(t *testing.T) {
	c := mustCube(t, 3)
	c.ApplyNotation("R U2 F' D B L2")

	counts := map[Face]int{}
	for _, s := range c.stickers {
		counts[s.Face()]++
	}
	for _, f := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		if counts[f] != 9 {
			t.Errorf("Face %v has %d stickers, want 9", f, counts[f])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := mustCube(t, 3)
	c.Apply(Move{Face: FaceR, Turn: CW})

	clone := c.Clone()
	clone.Apply(Move{Face: FaceU, Turn: CW})

	if len(c.history) != 1 {
		t.Error("Mutating a clone must not touch the original history")
	}
	if sameState(c, clone) {
		t.Error("Clone should have diverged from the original")
	}
}

func TestInnerLayerTurn(t *testing.T) {
	// Turning layer N-1 of R moves the L face stickers.
	c := mustCube(t, 3)
	if err := c.Apply(Move{Face: FaceR, Turn: CW, Layer: 2}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	grid := c.Facelets(FaceL)
	uniform := true
	for r := range grid {
		for col := range grid[r] {
			if grid[r][col] != grid[0][0] {
				uniform = false
			}
		}
	}
	if !uniform {
		t.Error("Innermost R layer turn should rotate the L face in place, keeping it uniform")
	}
	if c.IsSolved() {
		t.Error("Inner layer turn should disturb the side faces")
	}
}
