package cubeviz

import (
	"strings"
	"time"
)

// Face names one of the six outer layers a command can turn.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six command faces.
var Faces = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Layer returns the axis and layer coordinate the face turns.
func (f Face) Layer() (Axis, int) {
	switch f {
	case FaceU:
		return AxisY, 1
	case FaceD:
		return AxisY, -1
	case FaceL:
		return AxisX, -1
	case FaceR:
		return AxisX, 1
	case FaceF:
		return AxisZ, 1
	case FaceB:
		return AxisZ, -1
	default:
		panic("cubeviz: unknown face " + string(f))
	}
}

// Turn is the direction modifier of a command.
type Turn int

const (
	CW  Turn = 1  // Clockwise (normal)
	CCW Turn = -1 // Counter-clockwise (modified)
)

// Move is a single face command with an optional timestamp.
type Move struct {
	Face Face      // Which face to turn
	Turn Turn      // Direction
	Time time.Time // When the move was committed (optional)
}

// Direction returns the rotational sense of the move.
func (m Move) Direction() Direction {
	if m.Turn == CCW {
		return CounterClockwise
	}
	return Clockwise
}

// Notation returns the notation string for this move: R or R'.
func (m Move) Notation() string {
	if m.Turn == CCW {
		return string(m.Face) + "'"
	}
	return string(m.Face)
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	if m.Turn == CCW {
		inv.Turn = CW
	} else {
		inv.Turn = CCW
	}
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a face letter with an optional prime: R, R', u.
// Nothing beyond the six faces and the prime is accepted.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, ErrInvalidNotation
	}

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

	turn := CW
	if len(s) == 2 {
		switch s[1] {
		case '\'', '`':
			turn = CCW
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// It fails on the first invalid token.
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

// MoveForKey maps a key press to a command. Lowercase face letters turn
// clockwise, uppercase (shifted) letters turn counter-clockwise.
func MoveForKey(key string) (Move, bool) {
	if len(key) != 1 {
		return Move{}, false
	}
	c := key[0]
	turn := CW
	if c >= 'A' && c <= 'Z' {
		turn = CCW
		c += 'a' - 'A'
	}
	switch c {
	case 'u':
		return Move{Face: FaceU, Turn: turn}, true
	case 'd':
		return Move{Face: FaceD, Turn: turn}, true
	case 'l':
		return Move{Face: FaceL, Turn: turn}, true
	case 'r':
		return Move{Face: FaceR, Turn: turn}, true
	case 'f':
		return Move{Face: FaceF, Turn: turn}, true
	case 'b':
		return Move{Face: FaceB, Turn: turn}, true
	}
	return Move{}, false
}
