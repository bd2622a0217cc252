package cube

import "errors"

// Errors surfaced by the facelet codec, the cubie validators, the scramble
// parser and the table loader.
var (
	// ErrInvalidFaceletString means the definition string has the wrong
	// length, a character outside URFDLB, or the wrong count of some colour.
	ErrInvalidFaceletString = errors.New("cube: invalid facelet string")

	// ErrInvalidFaceletValue means the string parses but the stickers do not
	// form a reachable cube (bad colour set on a piece, or a parity
	// violation).
	ErrInvalidFaceletValue = errors.New("cube: facelets do not form a solvable cube")

	// ErrInvalidCubieValue means a cubie-level state violates the
	// permutation or orientation invariants.
	ErrInvalidCubieValue = errors.New("cube: invalid cubie state")

	// ErrInvalidScramble means a scramble string contains an unknown token.
	ErrInvalidScramble = errors.New("cube: invalid scramble token")

	// ErrUnexpectedEnd means a table file holds more bytes than its declared
	// element count accounts for.
	ErrUnexpectedEnd = errors.New("cube: table file has trailing bytes")
)
