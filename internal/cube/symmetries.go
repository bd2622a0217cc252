package cube

import "sync"

// The 48 cube symmetries are generated by a 120° rotation about the
// URF-DBL diagonal, a 180° rotation about the F axis, a 90° rotation about
// the U axis and the left-right mirror.
var (
	symURF3 = CubieCube{
		cp: [8]Corner{URF, DFR, DLF, UFL, UBR, DRB, DBL, ULB},
		co: [8]byte{1, 2, 1, 2, 2, 1, 2, 1},
		ep: [12]Edge{UF, FR, DF, FL, UB, BR, DB, BL, UR, DR, DL, UL},
		eo: [12]byte{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	}
	symF2 = CubieCube{
		cp: [8]Corner{DLF, DFR, DRB, DBL, UFL, URF, UBR, ULB},
		co: [8]byte{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]Edge{DL, DF, DR, DB, UL, UF, UR, UB, FL, FR, BR, BL},
		eo: [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	symU4 = CubieCube{
		cp: [8]Corner{UBR, URF, UFL, ULB, DRB, DFR, DLF, DBL},
		co: [8]byte{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]Edge{UB, UR, UF, UL, DB, DR, DF, DL, BR, FR, FL, BL},
		eo: [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
	}
	symLR2 = CubieCube{
		cp: [8]Corner{UFL, URF, UBR, ULB, DLF, DFR, DRB, DBL},
		co: [8]byte{3, 3, 3, 3, 3, 3, 3, 3},
		ep: [12]Edge{UL, UF, UR, UB, DL, DF, DR, DB, FL, FR, BR, BL},
		eo: [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
)

var (
	symOnce   sync.Once
	symCubesV [NSym]CubieCube
	symInvIdx [NSym]uint8
)

// symCubes returns the 48 symmetry cubes and the index of each inverse.
// Index layout: 16·i_urf3 + 8·i_f2 + 2·i_u4 + i_lr2.
func symCubes() (*[NSym]CubieCube, *[NSym]uint8) {
	symOnce.Do(func() {
		cc := SolvedCubie()
		idx := 0
		for urf3 := 0; urf3 < 3; urf3++ {
			for f2 := 0; f2 < 2; f2++ {
				for u4 := 0; u4 < 4; u4++ {
					for lr2 := 0; lr2 < 2; lr2++ {
						symCubesV[idx] = cc
						idx++
						cc.Multiply(symLR2)
					}
					cc.Multiply(symU4)
				}
				cc.Multiply(symF2)
			}
			cc.Multiply(symURF3)
		}
		solved := SolvedCubie()
		for j := 0; j < NSym; j++ {
			for i := 0; i < NSym; i++ {
				d := symCubesV[j]
				d.Multiply(symCubesV[i])
				if d == solved {
					symInvIdx[j] = uint8(i)
					break
				}
			}
		}
	})
	return &symCubesV, &symInvIdx
}

// SymTables holds everything derived from the symmetry group: move
// conjugation, coordinate conjugation, and the symmetry-reduced flipslice
// and corner classes with their representatives.
type SymTables struct {
	Sc     *[NSym]CubieCube
	InvIdx *[NSym]uint8

	// ConjMove[NMove*s+m] is the move s·m·s⁻¹.
	ConjMove []uint16

	// TwistConj[(t<<4)+s] is the twist of s·c(t)·s⁻¹.
	TwistConj []uint16

	// UDEdgesConj[(e<<4)+s] is the ud_edges coordinate of s·c(e)·s⁻¹.
	UDEdgesConj []uint16

	FlipsliceClassidx []uint16
	FlipsliceSym      []uint8
	FlipsliceRep      []uint32

	CornerClassidx []uint16
	CornerSym      []uint8
	CornerRep      []uint16
}

// NewSymTables builds or loads all symmetry tables from dir.
func NewSymTables(dir string) (*SymTables, error) {
	sc, invIdx := symCubes()
	sy := &SymTables{Sc: sc, InvIdx: invIdx}
	sy.ConjMove = buildConjMove(sc, invIdx)

	var err error
	sy.TwistConj, err = loadOrBuildTable(dir, "conj_twist", NTwist*NSymD4h, func() []uint16 {
		return buildTwistConj(sc, invIdx)
	})
	if err != nil {
		return nil, err
	}
	sy.UDEdgesConj, err = loadOrBuildTable(dir, "conj_ud_edges", NUDEdges*NSymD4h, func() []uint16 {
		return buildUDEdgesConj(sc, invIdx)
	})
	if err != nil {
		return nil, err
	}

	built := false
	buildFS := func() {
		if !built {
			sy.buildFlipsliceClasses()
			built = true
		}
	}
	sy.FlipsliceClassidx, err = loadOrBuildTable(dir, "fs_classidx", NFlipslice, func() []uint16 {
		buildFS()
		return sy.FlipsliceClassidx
	})
	if err != nil {
		return nil, err
	}
	sy.FlipsliceSym, err = loadOrBuildTable(dir, "fs_sym", NFlipslice, func() []uint8 {
		buildFS()
		return sy.FlipsliceSym
	})
	if err != nil {
		return nil, err
	}
	sy.FlipsliceRep, err = loadOrBuildTable(dir, "fs_rep", NFlipsliceClass, func() []uint32 {
		buildFS()
		return sy.FlipsliceRep
	})
	if err != nil {
		return nil, err
	}

	builtCo := false
	buildCo := func() {
		if !builtCo {
			sy.buildCornerClasses()
			builtCo = true
		}
	}
	sy.CornerClassidx, err = loadOrBuildTable(dir, "co_classidx", NCorners, func() []uint16 {
		buildCo()
		return sy.CornerClassidx
	})
	if err != nil {
		return nil, err
	}
	sy.CornerSym, err = loadOrBuildTable(dir, "co_sym", NCorners, func() []uint8 {
		buildCo()
		return sy.CornerSym
	})
	if err != nil {
		return nil, err
	}
	sy.CornerRep, err = loadOrBuildTable(dir, "co_rep", NCornersClass, func() []uint16 {
		buildCo()
		return sy.CornerRep
	})
	if err != nil {
		return nil, err
	}
	return sy, nil
}

func buildConjMove(sc *[NSym]CubieCube, invIdx *[NSym]uint8) []uint16 {
	table := make([]uint16, NMove*NSym)
	var moveCubes [NMove]CubieCube
	for m := 0; m < NMove; m++ {
		cc := SolvedCubie()
		cc.ApplyMove(Move(m))
		moveCubes[m] = cc
	}
	for s := 0; s < NSym; s++ {
		for m := 0; m < NMove; m++ {
			ss := sc[s]
			ss.Multiply(moveCubes[m])
			ss.Multiply(sc[invIdx[s]])
			for m2 := 0; m2 < NMove; m2++ {
				if ss == moveCubes[m2] {
					table[NMove*s+m] = uint16(m2)
					break
				}
			}
		}
	}
	return table
}

func buildTwistConj(sc *[NSym]CubieCube, invIdx *[NSym]uint8) []uint16 {
	table := make([]uint16, NTwist*NSymD4h)
	cc := SolvedCubie()
	for t := 0; t < NTwist; t++ {
		cc.SetTwist(uint16(t))
		for s := 0; s < NSymD4h; s++ {
			ss := sc[s]
			ss.CornerMultiply(cc)            // s*t
			ss.CornerMultiply(sc[invIdx[s]]) // s*t*s^-1
			table[NSymD4h*t+s] = ss.GetTwist()
		}
	}
	return table
}

func buildUDEdgesConj(sc *[NSym]CubieCube, invIdx *[NSym]uint8) []uint16 {
	table := make([]uint16, NUDEdges*NSymD4h)
	cc := SolvedCubie()
	for e := 0; e < NUDEdges; e++ {
		cc.SetUDEdges(e)
		for s := 0; s < NSymD4h; s++ {
			ss := sc[s]
			ss.EdgeMultiply(cc)
			ss.EdgeMultiply(sc[invIdx[s]])
			table[NSymD4h*e+s] = ss.GetUDEdges()
		}
	}
	return table
}

const invalidClass = uint16(65535)

// buildFlipsliceClasses reduces the flipslice coordinate under the 16
// UD-axis symmetries: smallest orbit member becomes the representative,
// every member records its class and a witness symmetry mapping it onto
// the representative.
func (sy *SymTables) buildFlipsliceClasses() {
	sc, invIdx := symCubes()
	classidxTab := make([]uint16, NFlipslice)
	symTab := make([]uint8, NFlipslice)
	repTab := make([]uint32, NFlipsliceClass)
	for i := range classidxTab {
		classidxTab[i] = invalidClass
	}
	classidx := 0
	cc := SolvedCubie()
	for slice := 0; slice < NSlice; slice++ {
		cc.SetSlice(uint16(slice))
		for flip := 0; flip < NFlip; flip++ {
			cc.SetFlip(uint16(flip))
			idx := NFlip*slice + flip
			if classidxTab[idx] != invalidClass {
				continue
			}
			classidxTab[idx] = uint16(classidx)
			symTab[idx] = 0
			repTab[classidx] = uint32(idx)
			for s := 0; s < NSymD4h; s++ {
				ss := sc[invIdx[s]]
				ss.EdgeMultiply(cc)    // s^-1*cc
				ss.EdgeMultiply(sc[s]) // s^-1*cc*s
				idxNew := NFlip*int(ss.GetSlice()) + int(ss.GetFlip())
				if classidxTab[idxNew] == invalidClass {
					classidxTab[idxNew] = uint16(classidx)
					symTab[idxNew] = uint8(s)
				}
			}
			classidx++
		}
	}
	sy.FlipsliceClassidx = classidxTab
	sy.FlipsliceSym = symTab
	sy.FlipsliceRep = repTab
}

// buildCornerClasses is the analogue for the corner permutation.
func (sy *SymTables) buildCornerClasses() {
	sc, invIdx := symCubes()
	classidxTab := make([]uint16, NCorners)
	symTab := make([]uint8, NCorners)
	repTab := make([]uint16, NCornersClass)
	for i := range classidxTab {
		classidxTab[i] = invalidClass
	}
	classidx := 0
	cc := SolvedCubie()
	for cp := 0; cp < NCorners; cp++ {
		cc.SetCorners(uint16(cp))
		if classidxTab[cp] != invalidClass {
			continue
		}
		classidxTab[cp] = uint16(classidx)
		symTab[cp] = 0
		repTab[classidx] = uint16(cp)
		for s := 0; s < NSymD4h; s++ {
			ss := sc[invIdx[s]]
			ss.CornerMultiply(cc)
			ss.CornerMultiply(sc[s])
			cpNew := int(ss.GetCorners())
			if classidxTab[cpNew] == invalidClass {
				classidxTab[cpNew] = uint16(classidx)
				symTab[cpNew] = uint8(s)
			}
		}
		classidx++
	}
	sy.CornerClassidx = classidxTab
	sy.CornerSym = symTab
	sy.CornerRep = repTab
}
