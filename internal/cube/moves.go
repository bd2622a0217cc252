package cube

import "fmt"

// Move is one of the 18 face turns, numbered in face-major order
// U, R, F, D, L, B with 90°, 180°, 270° within each face.
type Move uint8

const (
	MoveU Move = iota
	MoveU2
	MoveU3
	MoveR
	MoveR2
	MoveR3
	MoveF
	MoveF2
	MoveF3
	MoveD
	MoveD2
	MoveD3
	MoveL
	MoveL2
	MoveL3
	MoveB
	MoveB2
	MoveB3
)

// AllMoves lists the 18 moves in coordinate-table order.
var AllMoves = [NMove]Move{
	MoveU, MoveU2, MoveU3,
	MoveR, MoveR2, MoveR3,
	MoveF, MoveF2, MoveF3,
	MoveD, MoveD2, MoveD3,
	MoveL, MoveL2, MoveL3,
	MoveB, MoveB2, MoveB3,
}

// Phase2Moves is the subset generating the subgroup H = <U,D,R2,F2,L2,B2>.
var Phase2Moves = []Move{
	MoveU, MoveU2, MoveU3,
	MoveR2, MoveF2,
	MoveD, MoveD2, MoveD3,
	MoveL2, MoveB2,
}

var moveNames = [NMove]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

// ParseMove parses a single token of the move alphabet.
func ParseMove(token string) (Move, error) {
	for i, name := range moveNames {
		if token == name {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidScramble, token)
}

// Inverse returns the move undoing m.
func (m Move) Inverse() Move {
	return Move(uint8(m)/3*3 + 2 - uint8(m)%3)
}

// SameFace reports whether both moves turn the same face.
func (m Move) SameFace(other Move) bool {
	return m/3 == other/3
}

// SameAxis reports whether both moves turn faces on the same axis
// (U/D, R/L or F/B).
func (m Move) SameAxis(other Move) bool {
	return m/3%3 == other/3%3
}

// isPhase2 reports membership in the phase-2 move subset.
func (m Move) isPhase2() bool {
	switch m {
	case MoveU, MoveU2, MoveU3, MoveD, MoveD2, MoveD3,
		MoveR2, MoveF2, MoveL2, MoveB2:
		return true
	}
	return false
}
