package cube

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestParseFaceletsSolved(t *testing.T) {
	cc, err := ParseCube(SolvedFacelets)
	if err != nil {
		t.Fatalf("ParseCube(solved): %v", err)
	}
	if cc != SolvedCubie() {
		t.Error("solved facelets did not parse to the identity cube")
	}
}

func TestParseFaceletsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"53 characters", SolvedFacelets[:53], ErrInvalidFaceletString},
		{"55 characters", SolvedFacelets + "U", ErrInvalidFaceletString},
		{"bad alphabet", strings.Replace(SolvedFacelets, "U", "X", 1), ErrInvalidFaceletString},
		{"bad counts", strings.Replace(SolvedFacelets, "U", "R", 1), ErrInvalidFaceletString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFacelets(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseFacelets(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseCubeParityViolation(t *testing.T) {
	// swap the UR and UF edges only: colour sets stay legal, parity breaks
	b := []byte(SolvedFacelets)
	b[10], b[19] = b[19], b[10]
	_, err := ParseCube(string(b))
	if !errors.Is(err, ErrInvalidFaceletValue) {
		t.Errorf("swapped edge pair: error = %v, want %v", err, ErrInvalidFaceletValue)
	}
}

func TestFaceletRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		cc := SolvedCubie()
		cc.Randomize(rng)
		fc, err := FaceletsFromCubie(&cc)
		if err != nil {
			t.Fatalf("FaceletsFromCubie: %v", err)
		}
		got, err := ParseCube(fc.String())
		if err != nil {
			t.Fatalf("ParseCube(%s): %v", fc, err)
		}
		if got != cc {
			t.Fatalf("facelet round trip changed the cube")
		}
	}
}

func TestFaceletStringAfterScramble(t *testing.T) {
	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	cc := FromMoves(moves)
	fc, err := FaceletsFromCubie(&cc)
	if err != nil {
		t.Fatal(err)
	}
	s := fc.String()
	if len(s) != 54 {
		t.Fatalf("definition string has length %d", len(s))
	}
	// centres never move
	for face, idx := range centerIndices {
		if s[idx] != "URFDLB"[face] {
			t.Errorf("centre %d is %c", face, s[idx])
		}
	}
}
