package cube

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// testFacelets is the fixed scrambled cube the coordinate and solver tests
// probe against.
const testFacelets = "RLLBUFUUUBDURRBBUBRLRRFDFDDLLLUDFLRRDDFRLFDBUBFFLBBDUF"

var (
	testSyOnce sync.Once
	testSy     *SymTables
	testSyErr  error
)

// testSymTables builds the symmetry tables once per test binary, cached in
// a stable temp directory so repeated runs load instead of rebuilding.
func testSymTables(t *testing.T) *SymTables {
	t.Helper()
	testSyOnce.Do(func() {
		dir := filepath.Join(os.TempDir(), "twophase-test-tables")
		testSy, testSyErr = NewSymTables(dir)
	})
	if testSyErr != nil {
		t.Fatalf("building symmetry tables: %v", testSyErr)
	}
	return testSy
}

func TestCoordinateRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cc := SolvedCubie()
	for i := 0; i < 200; i++ {
		twist := uint16(rng.Intn(NTwist))
		cc.SetTwist(twist)
		if got := cc.GetTwist(); got != twist {
			t.Fatalf("twist round trip: %d -> %d", twist, got)
		}
		flip := uint16(rng.Intn(NFlip))
		cc.SetFlip(flip)
		if got := cc.GetFlip(); got != flip {
			t.Fatalf("flip round trip: %d -> %d", flip, got)
		}
		ss := uint16(rng.Intn(NSliceSorted))
		cc.SetSliceSorted(ss)
		if got := cc.GetSliceSorted(); got != ss {
			t.Fatalf("slice_sorted round trip: %d -> %d", ss, got)
		}
		if got := cc.GetSlice(); got != ss/NPerm4 {
			t.Fatalf("slice of slice_sorted %d: got %d, want %d", ss, got, ss/NPerm4)
		}
		ue := uint16(rng.Intn(NSliceSorted))
		cc.SetUEdges(ue)
		if got := cc.GetUEdges(); got != ue {
			t.Fatalf("u_edges round trip: %d -> %d", ue, got)
		}
		de := uint16(rng.Intn(NSliceSorted))
		cc.SetDEdges(de)
		if got := cc.GetDEdges(); got != de {
			t.Fatalf("d_edges round trip: %d -> %d", de, got)
		}
		co := uint16(rng.Intn(NCorners))
		cc.SetCorners(co)
		if got := cc.GetCorners(); got != co {
			t.Fatalf("corners round trip: %d -> %d", co, got)
		}
		ud := rng.Intn(NUDEdges)
		cc.SetUDEdges(ud)
		if got := int(cc.GetUDEdges()); got != ud {
			t.Fatalf("ud_edges round trip: %d -> %d", ud, got)
		}
		ed := rng.Intn(479001600)
		cc.SetEdges(ed)
		if got := cc.GetEdges(); got != ed {
			t.Fatalf("edges round trip: %d -> %d", ed, got)
		}
	}
}

func TestSolvedCoordinates(t *testing.T) {
	cc := SolvedCubie()
	if got := cc.GetTwist(); got != 0 {
		t.Errorf("solved twist = %d", got)
	}
	if got := cc.GetFlip(); got != 0 {
		t.Errorf("solved flip = %d", got)
	}
	if got := cc.GetSliceSorted(); got != 0 {
		t.Errorf("solved slice_sorted = %d", got)
	}
	if got := cc.GetUEdges(); got != 1656 {
		t.Errorf("solved u_edges = %d, want 1656", got)
	}
	if got := cc.GetDEdges(); got != 0 {
		t.Errorf("solved d_edges = %d", got)
	}
	if got := cc.GetCorners(); got != 0 {
		t.Errorf("solved corners = %d", got)
	}
	if got := cc.GetUDEdges(); got != 0 {
		t.Errorf("solved ud_edges = %d", got)
	}
}

func TestCoordCubeTestVector(t *testing.T) {
	sy := testSymTables(t)
	mvDir := filepath.Join(os.TempDir(), "twophase-test-tables")
	mv, err := NewMoveTables(mvDir)
	if err != nil {
		t.Fatalf("building move tables: %v", err)
	}

	cc, err := ParseCube(testFacelets)
	if err != nil {
		t.Fatalf("ParseCube: %v", err)
	}
	cdc, err := CoordFromCubie(&cc, sy)
	if err != nil {
		t.Fatalf("CoordFromCubie: %v", err)
	}

	want := CoordCube{
		Twist: 149, Flip: 1514, SliceSorted: 1701,
		UEdges: 407, DEdges: 9068, Corners: 3935, UDEdges: 65535,
		FlipsliceClassidx: 1940, FlipsliceSym: 9, FlipsliceRep: 3802,
		CornerClassidx: 716, CornerSym: 7, CornerRep: 1260,
	}
	if cdc != want {
		t.Fatalf("CoordFromCubie = %+v, want %+v", cdc, want)
	}

	cdc.Phase1Move(MoveU2, mv, sy)
	if cdc.Twist != 1229 || cdc.Flip != 1898 || cdc.SliceSorted != 5061 || cdc.Corners != 3876 {
		t.Fatalf("after U2: twist=%d flip=%d slice_sorted=%d corners=%d",
			cdc.Twist, cdc.Flip, cdc.SliceSorted, cdc.Corners)
	}
	if cdc.UDEdges != 65535 {
		t.Fatalf("after U2: ud_edges = %d, want undefined", cdc.UDEdges)
	}

	cdc.Phase2Move(MoveR2, mv)
	if cdc.UDEdges != 37019 || cdc.Corners != 7596 {
		t.Fatalf("after R2: ud_edges=%d corners=%d, want 37019, 7596",
			cdc.UDEdges, cdc.Corners)
	}
}

func TestEdgeMergeTable(t *testing.T) {
	table := buildEdgeMerge()
	if len(table) != 40320 {
		t.Fatalf("edge merge table length = %d, want 40320", len(table))
	}
	tests := []struct {
		idx  int
		want uint16
	}{
		{4, 24504},
		{40, 11521},
		{403, 15256},
		{4031, 23963},
		{40319, 39767},
	}
	for _, tt := range tests {
		if got := table[tt.idx]; got != tt.want {
			t.Errorf("edge merge[%d] = %d, want %d", tt.idx, got, tt.want)
		}
	}
}
