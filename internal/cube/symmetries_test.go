package cube

import "testing"

func TestFlipsliceClassCount(t *testing.T) {
	sy := testSymTables(t)
	if got := len(sy.FlipsliceRep); got != NFlipsliceClass {
		t.Errorf("flipslice classes = %d, want %d", got, NFlipsliceClass)
	}
	if sy.FlipsliceRep[0] != 0 {
		t.Errorf("first flipslice representative = %d, want 0", sy.FlipsliceRep[0])
	}
}

func TestCornerClassCount(t *testing.T) {
	sy := testSymTables(t)
	if got := len(sy.CornerRep); got != NCornersClass {
		t.Errorf("corner classes = %d, want %d", got, NCornersClass)
	}
	if sy.CornerRep[0] != 0 {
		t.Errorf("first corner representative = %d, want 0", sy.CornerRep[0])
	}
}

// Every raw coordinate must conjugate onto its class representative by its
// recorded witness symmetry.
func TestCornerSymWitness(t *testing.T) {
	sy := testSymTables(t)
	sc, invIdx := symCubes()
	cc := SolvedCubie()
	for _, cp := range []int{0, 1, 137, 3935, 40319} {
		cc.SetCorners(uint16(cp))
		s := int(sy.CornerSym[cp])
		ss := sc[s]
		ss.CornerMultiply(cc)
		ss.CornerMultiply(sc[invIdx[s]])
		rep := sy.CornerRep[sy.CornerClassidx[cp]]
		if got := ss.GetCorners(); got != rep {
			t.Errorf("corners %d: witness %d maps to %d, want representative %d", cp, s, got, rep)
		}
	}
}

// conj_move must satisfy s·m·s⁻¹ = m' on the cubie level.
func TestConjMove(t *testing.T) {
	sy := testSymTables(t)
	sc, invIdx := symCubes()
	for _, s := range []int{0, 1, 9, 16, 32, 47} {
		for m := 0; m < NMove; m++ {
			mc := SolvedCubie()
			mc.ApplyMove(Move(m))
			ss := sc[s]
			ss.Multiply(mc)
			ss.Multiply(sc[invIdx[s]])
			want := SolvedCubie()
			want.ApplyMove(Move(sy.ConjMove[NMove*s+m]))
			if ss != want {
				t.Errorf("conj_move[%d, %v] = %v does not match the cubie level",
					s, Move(m), Move(sy.ConjMove[NMove*s+m]))
			}
		}
	}
}

func TestTwistConjIdentity(t *testing.T) {
	sy := testSymTables(t)
	for _, twist := range []int{0, 1, 149, 2186} {
		if got := sy.TwistConj[twist<<4]; got != uint16(twist) {
			t.Errorf("conjugating twist %d by the identity gives %d", twist, got)
		}
	}
}
