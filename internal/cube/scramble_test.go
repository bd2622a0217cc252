package cube

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseScramble(t *testing.T) {
	want := []Move{MoveR, MoveU, MoveR3, MoveU3, MoveF, MoveL3, MoveD3, MoveB2, MoveR3, MoveU3}
	got, err := ParseScramble("R U R' U' F L' D' B2 R' U'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseScrambleBadToken(t *testing.T) {
	_, err := ParseScramble("R U X")
	if !errors.Is(err, ErrInvalidScramble) {
		t.Errorf("error = %v, want ErrInvalidScramble", err)
	}
}

func TestFormatScrambleRoundTrip(t *testing.T) {
	s := "R U R' U' F L' D' B2 R' U'"
	moves, err := ParseScramble(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatScramble(moves); got != s {
		t.Errorf("FormatScramble = %q, want %q", got, s)
	}
}

func TestGenScramble(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		moves := GenScramble(25, rng)
		if len(moves) != 25 {
			t.Fatalf("scramble has %d moves, want 25", len(moves))
		}
		for j := 1; j < len(moves); j++ {
			diff := int(moves[j-1])/3 - int(moves[j])/3
			if diff == 0 || diff == 3 {
				t.Fatalf("scramble %s has a redundant pair at %d", FormatScramble(moves), j)
			}
		}
	}
}

func TestRandomCubeParses(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 20; i++ {
		s := RandomCube(rng)
		if _, err := ParseCube(s); err != nil {
			t.Fatalf("RandomCube produced unparseable state %q: %v", s, err)
		}
	}
}
