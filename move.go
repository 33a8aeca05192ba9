package cubeview

import "strings"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single layer rotation: which face, how far, and how
// deep. Layer 0 is the outermost layer on the named face; inner layers
// count toward the opposite face.
type Move struct {
	Face  Face // Which face to turn
	Turn  Turn // Direction and amount
	Layer int  // Slice depth from the face, 0 = outer
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
// The layer index is not part of single-letter notation.
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// IsCancellation returns true if the other move exactly undoes this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face || m.Layer != other.Layer {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Double && other.Turn == Double)
}

// vocabFaces is the face ordering of the 18-token move vocabulary. The
// ordering matches the output layer of the pretrained move predictor and
// must not change.
var vocabFaces = [6]Face{FaceR, FaceU, FaceF, FaceD, FaceB, FaceL}

// vocabTurns is the per-face turn ordering of the vocabulary: X, X', X2.
var vocabTurns = [3]Turn{CW, CCW, Double}

// Token returns the vocabulary index of this outer-layer move.
// Tokens are ordered R R' R2 U U' U2 F F' F2 D D' D2 B B' B2 L L' L2.
// The second return is false for moves outside the 18-token vocabulary
// (inner layers or non-normalized turns).
func (m Move) Token() (uint8, bool) {
	if m.Layer != 0 {
		return 0, false
	}
	var faceCode uint8
	switch m.Face {
	case FaceR:
		faceCode = 0
	case FaceU:
		faceCode = 1
	case FaceF:
		faceCode = 2
	case FaceD:
		faceCode = 3
	case FaceB:
		faceCode = 4
	case FaceL:
		faceCode = 5
	default:
		return 0, false
	}
	var turnCode uint8
	switch m.Turn {
	case CW:
		turnCode = 0
	case CCW:
		turnCode = 1
	case Double:
		turnCode = 2
	default:
		return 0, false
	}
	return faceCode*3 + turnCode, true
}

// MoveFromToken decodes a vocabulary index back into a Move.
func MoveFromToken(token uint8) Move {
	return Move{
		Face: vocabFaces[(token%VocabularySize)/3],
		Turn: vocabTurns[token%3],
	}
}

// VocabularySize is the number of canonical move tokens.
const VocabularySize = 18

// NormalizeTurn reduces an arbitrary signed quarter-turn count to the
// canonical range {-1, 1, 2}. A net-zero rotation returns 0.
func NormalizeTurn(turns int) Turn {
	t := ((turns % 4) + 4) % 4
	if t == 3 {
		t = -1
	}
	return Turn(t)
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidNotation if the token is not one of the 18 canonical
// face/turn tokens.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Extract face
	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	// Extract turn
	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // Same as 180
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Returns ErrInvalidNotation on the first unrecognized token.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
