package cube

import "testing"

func TestDistanceTable(t *testing.T) {
	pr := &PruneTables{}
	for i := 0; i < 20; i++ {
		for j := 0; j < 3; j++ {
			v := (i/3)*3 + j
			if i%3 == 2 && j == 0 {
				v += 3
			} else if i%3 == 0 && j == 2 && v >= 3 {
				v -= 3
			}
			pr.Distance[3*i+j] = uint16(v)
		}
	}
	tests := []struct {
		old  int
		mod3 int
		want uint16
	}{
		{0, 0, 0},  // solved stays solved
		{0, 1, 1},  // one move deeper
		{1, 0, 0},  // one move closer
		{1, 2, 2},  // deeper
		{2, 0, 3},  // 0 after 2 means 3, not 0
		{3, 2, 2},  // 2 after 3 means 2
		{4, 2, 5},  // deeper
		{11, 0, 12},
		{12, 2, 11},
	}
	for _, tt := range tests {
		if got := pr.Distance[3*tt.old+tt.mod3]; got != tt.want {
			t.Errorf("distance[3*%d+%d] = %d, want %d", tt.old, tt.mod3, got, tt.want)
		}
	}
}

func TestPackedDepth3Accessors(t *testing.T) {
	pr := &PruneTables{FlipsliceTwistDepth3: make([]uint32, 4)}
	for i := range pr.FlipsliceTwistDepth3 {
		pr.FlipsliceTwistDepth3[i] = 0xffffffff
	}
	for ix, v := range map[int]uint32{0: 0, 1: 2, 15: 1, 16: 0, 47: 2} {
		pr.setFlipsliceTwistDepth3(ix, v)
	}
	checks := map[int]uint32{0: 0, 1: 2, 2: 3, 15: 1, 16: 0, 17: 3, 47: 2, 63: 3}
	for ix, want := range checks {
		if got := pr.flipsliceTwistDepth3(ix); got != want {
			t.Errorf("entry %d = %d, want %d", ix, got, want)
		}
	}

	// the empty-word fast path relies on untouched words staying all-ones
	if pr.FlipsliceTwistDepth3[3] != 0xffffffff {
		t.Error("untouched word changed")
	}
}

func TestCornslicePrunSolved(t *testing.T) {
	if testing.Short() {
		t.Skip("table build skipped in short mode")
	}
	tb := testSolverTables(t)
	if got := tb.Pr.CornsliceDepth[0]; got != 0 {
		t.Errorf("cornslice depth of solved = %d", got)
	}
	// a single U turn is one move from solved
	cc := SolvedCubie()
	cc.ApplyMove(MoveU)
	idx := NPerm4*int(cc.GetCorners()) + int(cc.GetSliceSorted())
	if got := tb.Pr.CornsliceDepth[idx]; got != 1 {
		t.Errorf("cornslice depth after U = %d, want 1", got)
	}
}
