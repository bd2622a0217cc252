package cube

import (
	"math/rand"
	"testing"
)

func TestMoveCubesHaveOrderFour(t *testing.T) {
	solved := SolvedCubie()
	for m := 0; m < 6; m++ {
		cc := SolvedCubie()
		for i := 0; i < 4; i++ {
			cc.Multiply(basicMoveCubes[m])
		}
		if cc != solved {
			t.Errorf("move cube %d applied four times is not the identity", m)
		}
	}
}

func TestMoveCubesVerify(t *testing.T) {
	for m := 0; m < 6; m++ {
		cc := basicMoveCubes[m]
		if err := cc.Verify(); err != nil {
			t.Errorf("move cube %d fails verification: %v", m, err)
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	solved := SolvedCubie()
	for i := 0; i < 50; i++ {
		cc := SolvedCubie()
		cc.Randomize(rng)
		inv := cc.Inverse()
		if got := inv.Inverse(); got != cc {
			t.Fatalf("double inverse differs from original")
		}
		prod := cc
		prod.Multiply(inv)
		if prod != solved {
			t.Fatalf("cube times its inverse is not solved")
		}
	}
}

func TestRandomizeIsSolvable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		cc := SolvedCubie()
		cc.Randomize(rng)
		if err := cc.Verify(); err != nil {
			t.Fatalf("randomized cube fails verification: %v", err)
		}
	}
}

func TestVerifyRejectsBadStates(t *testing.T) {
	cc := SolvedCubie()
	cc.co[0] = 1 // twist sum no longer divisible by 3
	if err := cc.Verify(); err == nil {
		t.Error("bad twist sum passed verification")
	}

	cc = SolvedCubie()
	cc.eo[0] = 1 // flip sum odd
	if err := cc.Verify(); err == nil {
		t.Error("bad flip sum passed verification")
	}

	cc = SolvedCubie()
	cc.ep[0], cc.ep[1] = cc.ep[1], cc.ep[0] // edge swap breaks parity
	if err := cc.Verify(); err == nil {
		t.Error("parity violation passed verification")
	}

	cc = SolvedCubie()
	cc.cp[0] = cc.cp[1] // not a permutation
	if err := cc.Verify(); err == nil {
		t.Error("duplicated corner passed verification")
	}
}

func TestApplyMovesMatchesMultiply(t *testing.T) {
	// R3 must equal three quarter turns of R
	cc := SolvedCubie()
	cc.ApplyMove(MoveR3)
	want := SolvedCubie()
	for i := 0; i < 3; i++ {
		want.Multiply(rMove)
	}
	if cc != want {
		t.Error("R' differs from three R quarter turns")
	}
}

func TestScrambleReachesSolvedAgain(t *testing.T) {
	moves, err := ParseScramble("R U R' U' F L' D' B2 R' U'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	cc := FromMoves(moves)
	if cc == SolvedCubie() {
		t.Fatal("scramble left the cube solved")
	}
	inverse := make([]Move, 0, len(moves))
	for i := len(moves) - 1; i >= 0; i-- {
		inverse = append(inverse, moves[i].Inverse())
	}
	cc.ApplyMoves(inverse)
	if cc != SolvedCubie() {
		t.Error("inverse scramble did not restore the cube")
	}
}

func TestSolvedCubeSymmetries(t *testing.T) {
	cc := SolvedCubie()
	syms := cc.Symmetries()
	// identity is fixed by all 48 symmetries and all 48 antisymmetries
	if len(syms) != 96 {
		t.Errorf("solved cube has %d (anti)symmetries, want 96", len(syms))
	}
}

func TestSymCubesInverses(t *testing.T) {
	sc, invIdx := symCubes()
	solved := SolvedCubie()
	for j := 0; j < NSym; j++ {
		d := sc[j]
		d.Multiply(sc[invIdx[j]])
		if d != solved {
			t.Errorf("sym %d times its inverse is not the identity", j)
		}
	}
}
