package cube

import (
	"math/rand"
	"strings"
)

// ParseScramble parses a whitespace-separated move sequence.
func ParseScramble(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatScramble renders a move sequence as a scramble string.
func FormatScramble(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// GenScramble draws a random scramble of the given length, skipping moves
// that a canonical maneuver would never contain: a repeat of the previous
// face, or its axis partner in the non-canonical order.
func GenScramble(length int, rng *rand.Rand) []Move {
	moves := make([]Move, 0, length)
	for len(moves) < length {
		m := Move(rng.Intn(NMove))
		if len(moves) > 0 {
			diff := int(moves[len(moves)-1])/3 - int(m)/3
			if diff == 0 || diff == 3 {
				continue
			}
		}
		moves = append(moves, m)
	}
	return moves
}

// RandomCube returns the definition string of a uniformly random reachable
// cube state.
func RandomCube(rng *rand.Rand) string {
	cc := SolvedCubie()
	cc.Randomize(rng)
	fc, err := FaceletsFromCubie(&cc)
	if err != nil {
		// Randomize never produces mirrored orientations
		panic(err)
	}
	return fc.String()
}
