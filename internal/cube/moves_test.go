package cube

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		token   string
		want    Move
		wantErr bool
	}{
		{"U", MoveU, false},
		{"U2", MoveU2, false},
		{"U'", MoveU3, false},
		{"R", MoveR, false},
		{"B'", MoveB3, false},
		{"X", 0, true},
		{"R3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMove(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidScramble) {
					t.Errorf("ParseMove(%q) error = %v, want ErrInvalidScramble", tt.token, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for m := 0; m < NMove; m++ {
		got, err := ParseMove(Move(m).String())
		if err != nil {
			t.Fatalf("ParseMove(%v): %v", Move(m), err)
		}
		if got != Move(m) {
			t.Errorf("round trip %v -> %v", Move(m), got)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	tests := []struct {
		m, want Move
	}{
		{MoveR, MoveR3},
		{MoveR3, MoveR},
		{MoveR2, MoveR2},
		{MoveU, MoveU3},
		{MoveB2, MoveB2},
	}
	for _, tt := range tests {
		if got := tt.m.Inverse(); got != tt.want {
			t.Errorf("%v.Inverse() = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestMoveTwistTable(t *testing.T) {
	table := buildTwistMove()
	if len(table) != 39366 {
		t.Fatalf("move_twist length = %d, want 39366", len(table))
	}
	tests := []struct {
		idx  int
		want uint16
	}{
		{3, 1494},
		{39, 1505},
		{393, 158},
		{3936, 142},
		{39365, 1995},
	}
	for _, tt := range tests {
		if got := table[tt.idx]; got != tt.want {
			t.Errorf("move_twist[%d] = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestMoveFlipTable(t *testing.T) {
	table := buildFlipMove()
	if len(table) != 36864 {
		t.Fatalf("move_flip length = %d, want 36864", len(table))
	}
	tests := []struct {
		idx  int
		want uint16
	}{
		{3, 0},
		{36, 2},
		{368, 54},
		{3686, 204},
		{36863, 1910},
	}
	for _, tt := range tests {
		if got := table[tt.idx]; got != tt.want {
			t.Errorf("move_flip[%d] = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestMoveUDEdgesTable(t *testing.T) {
	table := buildUDEdgesMove()
	if len(table) != 725760 {
		t.Fatalf("move_ud_edges length = %d, want 725760", len(table))
	}
	if got := table[7]; got != 313 {
		t.Errorf("move_ud_edges[7] = %d, want 313", got)
	}
	if got := table[72]; got != 10 {
		t.Errorf("move_ud_edges[72] = %d, want 10", got)
	}
	if got := table[725759]; got != 0 {
		t.Errorf("move_ud_edges[725759] = %d, want 0", got)
	}
}

func TestMoveCornersTable(t *testing.T) {
	table := buildCornersMove()
	if len(table) != 725760 {
		t.Fatalf("move_corners length = %d, want 725760", len(table))
	}
	tests := []struct {
		idx  int
		want uint16
	}{
		{7, 157},
		{72, 10},
		{725, 22323},
		{7275, 27211},
		{725759, 16668},
	}
	for _, tt := range tests {
		if got := table[tt.idx]; got != tt.want {
			t.Errorf("move_corners[%d] = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestMoveSliceSortedTable(t *testing.T) {
	table := buildSliceSortedMove()
	if len(table) != 213840 {
		t.Fatalf("move_slice_sorted length = %d, want 213840", len(table))
	}
	tests := []struct {
		idx  int
		want uint16
	}{
		{2, 0},
		{213, 1914},
		{2138, 3490},
		{21383, 2849},
		{213839, 11687},
	}
	for _, tt := range tests {
		if got := table[tt.idx]; got != tt.want {
			t.Errorf("move_slice_sorted[%d] = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestMoveUEdgesDEdgesTables(t *testing.T) {
	uTable := buildUEdgesMove()
	dTable := buildDEdgesMove()
	if len(uTable) != 213840 || len(dTable) != 213840 {
		t.Fatalf("u/d edge table lengths = %d, %d, want 213840", len(uTable), len(dTable))
	}
	tests := []struct {
		idx  int
		want uint16
	}{
		{21, 7921},
		{213, 1769},
		{2138, 5260},
		{21383, 1187},
		{213839, 10967},
	}
	for _, tt := range tests {
		if got := uTable[tt.idx]; got != tt.want {
			t.Errorf("move_u_edges[%d] = %d, want %d", tt.idx, got, tt.want)
		}
		if got := dTable[tt.idx]; got != tt.want {
			t.Errorf("move_d_edges[%d] = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

// Applying a move on the cubie level and re-encoding must agree with the
// move tables.
func TestMoveTablesMatchCubieLevel(t *testing.T) {
	twistTable := buildTwistMove()
	cc := SolvedCubie()
	cc.SetTwist(777)
	for m := 0; m < NMove; m++ {
		d := cc
		d.ApplyMove(Move(m))
		if got, want := twistTable[NMove*777+m], d.GetTwist(); got != want {
			t.Errorf("move_twist[777][%v] = %d, cubie level gives %d", Move(m), got, want)
		}
	}
}
