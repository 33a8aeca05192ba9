package cubeview

import "testing"

var canonicalTokens = []string{
	"R", "R'", "R2", "U", "U'", "U2", "F", "F'", "F2",
	"D", "D'", "D2", "B", "B'", "B2", "L", "L'", "L2",
}

func TestNotationRoundTrip(t *testing.T) {
	for _, token := range canonicalTokens {
		m, err := ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", token, err)
		}
		if got := m.Notation(); got != token {
			t.Errorf("ParseMove(%q).Notation() = %q", token, got)
		}
	}
}

func TestVocabularyOrder(t *testing.T) {
	// The token order is the predictor's output vocabulary and must not
	// drift: R R' R2 U U' U2 F F' F2 D D' D2 B B' B2 L L' L2.
	for i, want := range canonicalTokens {
		m := MoveFromToken(uint8(i))
		if got := m.Notation(); got != want {
			t.Errorf("Token %d: got %q, want %q", i, got, want)
		}
		tok, ok := m.Token()
		if !ok || int(tok) != i {
			t.Errorf("Token round trip for %q: got %d (ok=%v), want %d", want, tok, ok, i)
		}
	}
}

func TestTokenRejectsInnerLayers(t *testing.T) {
	m := Move{Face: FaceR, Turn: CW, Layer: 1}
	if _, ok := m.Token(); ok {
		t.Error("Inner-layer moves are outside the 18-token vocabulary")
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "X", "R3", "RU", "R''", "2"} {
		if _, err := ParseMove(s); err != ErrInvalidNotation {
			t.Errorf("ParseMove(%q): expected ErrInvalidNotation, got %v", s, err)
		}
	}
}

func TestParseMovesRejectsBadToken(t *testing.T) {
	if _, err := ParseMoves("R U X' F"); err != ErrInvalidNotation {
		t.Errorf("Expected ErrInvalidNotation, got %v", err)
	}
}

func TestParseMovesSequence(t *testing.T) {
	moves, err := ParseMoves("R U2  R' u'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := "R U2 R' U'"
	if got := FormatMoves(moves); got != want {
		t.Errorf("FormatMoves = %q, want %q", got, want)
	}
}

func TestInverse(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"R", "R'"},
		{"R'", "R"},
		{"R2", "R2"},
	}
	for _, tc := range cases {
		m, _ := ParseMove(tc.in)
		if got := m.Inverse().Notation(); got != tc.want {
			t.Errorf("%s inverse = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestInversePreservesLayer(t *testing.T) {
	m := Move{Face: FaceF, Turn: CW, Layer: 2}
	inv := m.Inverse()
	if inv.Layer != 2 || inv.Turn != CCW {
		t.Errorf("Inverse = %+v", inv)
	}
}

func TestIsCancellation(t *testing.T) {
	r := Move{Face: FaceR, Turn: CW}
	rp := Move{Face: FaceR, Turn: CCW}
	r2 := Move{Face: FaceR, Turn: Double}
	u := Move{Face: FaceU, Turn: CCW}
	rInner := Move{Face: FaceR, Turn: CCW, Layer: 1}

	if !r.IsCancellation(rp) {
		t.Error("R and R' should cancel")
	}
	if !r2.IsCancellation(r2) {
		t.Error("R2 and R2 should cancel")
	}
	if r.IsCancellation(u) {
		t.Error("R and U' must not cancel")
	}
	if r.IsCancellation(r) {
		t.Error("R and R must not cancel")
	}
	if r.IsCancellation(rInner) {
		t.Error("Moves on different layers must not cancel")
	}
}

func TestNormalizeTurn(t *testing.T) {
	cases := map[int]Turn{
		-3: 1, -2: 2, -1: -1, 0: 0, 1: 1, 2: 2, 3: -1, 4: 0, 5: 1,
	}
	for in, want := range cases {
		if got := NormalizeTurn(in); got != want {
			t.Errorf("NormalizeTurn(%d) = %d, want %d", in, got, want)
		}
	}
}
