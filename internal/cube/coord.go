package cube

// This file holds the bijections between the cubie level and the integer
// coordinates the search runs on, plus the CoordCube bundle of all
// coordinates of one state.

const invalidEdge Edge = 255

// GetTwist encodes the orientations of the first seven corners (0..2186).
func (c *CubieCube) GetTwist() uint16 {
	ret := 0
	for i := 0; i < 7; i++ {
		ret = 3*ret + int(c.co[i])
	}
	return uint16(ret)
}

// SetTwist decodes a twist coordinate; the eighth corner absorbs the parity.
func (c *CubieCube) SetTwist(twist uint16) {
	t := int(twist)
	parity := 0
	for i := 6; i >= 0; i-- {
		c.co[i] = byte(t % 3)
		parity += t % 3
		t /= 3
	}
	c.co[7] = byte((3 - parity%3) % 3)
}

// GetFlip encodes the orientations of the first eleven edges (0..2047).
func (c *CubieCube) GetFlip() uint16 {
	ret := 0
	for i := 0; i < 11; i++ {
		ret = 2*ret + int(c.eo[i])
	}
	return uint16(ret)
}

// SetFlip decodes a flip coordinate; the twelfth edge absorbs the parity.
func (c *CubieCube) SetFlip(flip uint16) {
	f := int(flip)
	parity := 0
	for i := 10; i >= 0; i-- {
		c.eo[i] = byte(f % 2)
		parity += f % 2
		f /= 2
	}
	c.eo[11] = byte((2 - parity%2) % 2)
}

// GetSlice encodes the unordered positions of the four E-slice edges
// (0..494).
func (c *CubieCube) GetSlice() uint16 {
	a, x := 0, 0
	for j := 11; j >= 0; j-- {
		if c.ep[j] >= FR && c.ep[j] <= BR {
			a += cNK(11-j, x+1)
			x++
		}
	}
	return uint16(a)
}

// SetSlice places the slice edges according to an unordered slice
// coordinate, the remaining edges in natural order.
func (c *CubieCube) SetSlice(slice uint16) {
	sliceEdge := [4]Edge{FR, FL, BL, BR}
	otherEdge := [8]Edge{UR, UF, UL, UB, DR, DF, DL, DB}
	a := int(slice)
	for i := range c.ep {
		c.ep[i] = invalidEdge
	}
	x := 4
	for j := 0; j < 12; j++ {
		if a-cNK(11-j, x) >= 0 {
			c.ep[j] = sliceEdge[4-x]
			a -= cNK(11-j, x)
			x--
		}
	}
	x = 0
	for j := 0; j < 12; j++ {
		if c.ep[j] == invalidEdge {
			c.ep[j] = otherEdge[x]
			x++
		}
	}
}

// GetSliceSorted encodes the ordered positions of the four E-slice edges
// (0..11879). GetSliceSorted()/24 is the phase-1 slice coordinate;
// GetSliceSorted()%24 is their permutation within the slice.
func (c *CubieCube) GetSliceSorted() uint16 {
	a, x := 0, 0
	var edge4 [4]Edge
	for j := 11; j >= 0; j-- {
		if c.ep[j] >= FR && c.ep[j] <= BR {
			a += cNK(11-j, x+1)
			edge4[3-x] = c.ep[j]
			x++
		}
	}
	b := 0
	for j := 3; j > 0; j-- {
		k := 0
		for edge4[j] != Edge(j+8) {
			rotateLeftEdges(edge4[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return uint16(NPerm4*a + b)
}

// SetSliceSorted decodes an ordered slice coordinate.
func (c *CubieCube) SetSliceSorted(idx uint16) {
	sliceEdge := [4]Edge{FR, FL, BL, BR}
	otherEdge := [8]Edge{UR, UF, UL, UB, DR, DF, DL, DB}
	b := int(idx) % NPerm4
	a := int(idx) / NPerm4
	for i := range c.ep {
		c.ep[i] = invalidEdge
	}
	for j := 1; j < 4; j++ {
		k := b % (j + 1)
		b /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(sliceEdge[:], 0, j)
		}
	}
	x := 4
	for j := 0; j < 12; j++ {
		if a-cNK(11-j, x) >= 0 {
			c.ep[j] = sliceEdge[4-x]
			a -= cNK(11-j, x)
			x--
		}
	}
	x = 0
	for j := 0; j < 12; j++ {
		if c.ep[j] == invalidEdge {
			c.ep[j] = otherEdge[x]
			x++
		}
	}
}

// GetUEdges encodes the ordered positions of the four U-layer edges
// (0..11879). Solved value is 1656.
func (c *CubieCube) GetUEdges() uint16 {
	a, x := 0, 0
	var edge4 [4]Edge
	epMod := c.ep
	for j := 0; j < 4; j++ {
		rotateRightEdges(epMod[:], 0, 11)
	}
	for j := 11; j >= 0; j-- {
		if epMod[j] <= UB {
			a += cNK(11-j, x+1)
			edge4[3-x] = epMod[j]
			x++
		}
	}
	b := 0
	for j := 3; j > 0; j-- {
		k := 0
		for edge4[j] != Edge(j) {
			rotateLeftEdges(edge4[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return uint16(NPerm4*a + b)
}

// SetUEdges decodes an ordered u_edges coordinate.
func (c *CubieCube) SetUEdges(idx uint16) {
	sliceEdge := [4]Edge{UR, UF, UL, UB}
	otherEdge := [8]Edge{DR, DF, DL, DB, FR, FL, BL, BR}
	b := int(idx) % NPerm4
	a := int(idx) / NPerm4
	for i := range c.ep {
		c.ep[i] = invalidEdge
	}
	for j := 1; j < 4; j++ {
		k := b % (j + 1)
		b /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(sliceEdge[:], 0, j)
		}
	}
	x := 4
	for j := 0; j < 12; j++ {
		if a-cNK(11-j, x) >= 0 {
			c.ep[j] = sliceEdge[4-x]
			a -= cNK(11-j, x)
			x--
		}
	}
	x = 0
	for j := 0; j < 12; j++ {
		if c.ep[j] == invalidEdge {
			c.ep[j] = otherEdge[x]
			x++
		}
	}
	for j := 0; j < 4; j++ {
		rotateLeftEdges(c.ep[:], 0, 11)
	}
}

// GetDEdges encodes the ordered positions of the four D-layer edges
// (0..11879).
func (c *CubieCube) GetDEdges() uint16 {
	a, x := 0, 0
	var edge4 [4]Edge
	epMod := c.ep
	for j := 0; j < 4; j++ {
		rotateRightEdges(epMod[:], 0, 11)
	}
	for j := 11; j >= 0; j-- {
		if epMod[j] >= DR && epMod[j] <= DB {
			a += cNK(11-j, x+1)
			edge4[3-x] = epMod[j]
			x++
		}
	}
	b := 0
	for j := 3; j > 0; j-- {
		k := 0
		for edge4[j] != Edge(j+4) {
			rotateLeftEdges(edge4[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return uint16(NPerm4*a + b)
}

// SetDEdges decodes an ordered d_edges coordinate.
func (c *CubieCube) SetDEdges(idx uint16) {
	sliceEdge := [4]Edge{DR, DF, DL, DB}
	otherEdge := [8]Edge{FR, FL, BL, BR, UR, UF, UL, UB}
	b := int(idx) % NPerm4
	a := int(idx) / NPerm4
	for i := range c.ep {
		c.ep[i] = invalidEdge
	}
	for j := 1; j < 4; j++ {
		k := b % (j + 1)
		b /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(sliceEdge[:], 0, j)
		}
	}
	x := 4
	for j := 0; j < 12; j++ {
		if a-cNK(11-j, x) >= 0 {
			c.ep[j] = sliceEdge[4-x]
			a -= cNK(11-j, x)
			x--
		}
	}
	x = 0
	for j := 0; j < 12; j++ {
		if c.ep[j] == invalidEdge {
			c.ep[j] = otherEdge[x]
			x++
		}
	}
	for j := 0; j < 4; j++ {
		rotateLeftEdges(c.ep[:], 0, 11)
	}
}

// GetCorners encodes the full corner permutation (0..40319).
func (c *CubieCube) GetCorners() uint16 {
	perm := c.cp
	b := 0
	for j := 7; j > 0; j-- {
		k := 0
		for perm[j] != Corner(j) {
			rotateLeftCorners(&perm, 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return uint16(b)
}

// SetCorners decodes a corner permutation coordinate.
func (c *CubieCube) SetCorners(idx uint16) {
	c.cp = [8]Corner{URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB}
	i := int(idx)
	for j := 1; j < 8; j++ {
		k := i % (j + 1)
		i /= j + 1
		for ; k > 0; k-- {
			rotateRightCorners(&c.cp, 0, j)
		}
	}
}

// GetUDEdges encodes the permutation of the eight U and D edges
// (0..40319). Only meaningful once the slice edges are home.
func (c *CubieCube) GetUDEdges() uint16 {
	var perm [8]Edge
	copy(perm[:], c.ep[:8])
	b := 0
	for j := 7; j > 0; j-- {
		k := 0
		for perm[j] != Edge(j) {
			rotateLeftEdges(perm[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return uint16(b)
}

// SetUDEdges decodes a ud_edges coordinate, leaving the slice edges home.
func (c *CubieCube) SetUDEdges(idx int) {
	perm := [8]Edge{UR, UF, UL, UB, DR, DF, DL, DB}
	for j := 1; j < 8; j++ {
		k := idx % (j + 1)
		idx /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(perm[:], 0, j)
		}
	}
	copy(c.ep[:8], perm[:])
	c.ep[8], c.ep[9], c.ep[10], c.ep[11] = FR, FL, BL, BR
}

// GetEdges encodes the full edge permutation (0..12!-1).
func (c *CubieCube) GetEdges() int {
	perm := c.ep
	b := 0
	for j := 11; j > 0; j-- {
		k := 0
		for perm[j] != Edge(j) {
			rotateLeftEdges(perm[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return b
}

// SetEdges decodes a full edge permutation coordinate.
func (c *CubieCube) SetEdges(idx int) {
	c.ep = [12]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR}
	for j := 1; j < 12; j++ {
		k := idx % (j + 1)
		idx /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(c.ep[:], 0, j)
		}
	}
}

// CoordCube represents a cube on the coordinate level. In phase 1 a state
// is determined by (flip, slice_sorted/24, twist); in phase 2 by (corners,
// ud_edges, slice_sorted%24). The symmetry-reduced fields locate the state
// in the pruning tables.
type CoordCube struct {
	Twist       uint16
	Flip        uint16
	SliceSorted uint16
	UEdges      uint16
	DEdges      uint16
	Corners     uint16
	UDEdges     uint16

	FlipsliceClassidx uint16
	FlipsliceSym      uint8
	FlipsliceRep      uint32
	CornerClassidx    uint16
	CornerSym         uint8
	CornerRep         uint16
}

// SolvedCoord returns the coordinates of the solved cube.
func SolvedCoord() CoordCube {
	return CoordCube{UEdges: 1656}
}

// CoordFromCubie projects a cubie state onto all coordinates. The state
// must satisfy the cubie invariants.
func CoordFromCubie(cc *CubieCube, sy *SymTables) (CoordCube, error) {
	if !cc.IsSolvable() {
		return CoordCube{}, ErrInvalidCubieValue
	}
	co := CoordCube{
		Twist:       cc.GetTwist(),
		Flip:        cc.GetFlip(),
		SliceSorted: cc.GetSliceSorted(),
		UEdges:      cc.GetUEdges(),
		DEdges:      cc.GetDEdges(),
		Corners:     cc.GetCorners(),
		UDEdges:     invalidUDEdges,
	}
	flipslice := NFlip*(int(co.SliceSorted)/NPerm4) + int(co.Flip)
	co.FlipsliceClassidx = sy.FlipsliceClassidx[flipslice]
	co.FlipsliceSym = sy.FlipsliceSym[flipslice]
	co.FlipsliceRep = sy.FlipsliceRep[co.FlipsliceClassidx]
	co.CornerClassidx = sy.CornerClassidx[co.Corners]
	co.CornerSym = sy.CornerSym[co.Corners]
	co.CornerRep = sy.CornerRep[co.CornerClassidx]
	if co.SliceSorted < NPerm4 {
		co.UDEdges = cc.GetUDEdges()
	}
	return co, nil
}

// Phase1Move updates all phase-1 coordinates under a move.
func (co *CoordCube) Phase1Move(m Move, mv *MoveTables, sy *SymTables) {
	co.Twist = mv.Twist[NMove*int(co.Twist)+int(m)]
	co.Flip = mv.Flip[NMove*int(co.Flip)+int(m)]
	co.SliceSorted = mv.SliceSorted[NMove*int(co.SliceSorted)+int(m)]
	co.UEdges = mv.UEdges[NMove*int(co.UEdges)+int(m)]
	co.DEdges = mv.DEdges[NMove*int(co.DEdges)+int(m)]
	co.Corners = mv.Corners[NMove*int(co.Corners)+int(m)]
	flipslice := NFlip*(int(co.SliceSorted)/NPerm4) + int(co.Flip)
	co.FlipsliceClassidx = sy.FlipsliceClassidx[flipslice]
	co.FlipsliceSym = sy.FlipsliceSym[flipslice]
	co.FlipsliceRep = sy.FlipsliceRep[co.FlipsliceClassidx]
	co.CornerClassidx = sy.CornerClassidx[co.Corners]
	co.CornerSym = sy.CornerSym[co.Corners]
	co.CornerRep = sy.CornerRep[co.CornerClassidx]
}

// Phase2Move updates the phase-2 coordinates under a phase-2 move.
func (co *CoordCube) Phase2Move(m Move, mv *MoveTables) {
	co.SliceSorted = mv.SliceSorted[NMove*int(co.SliceSorted)+int(m)]
	co.Corners = mv.Corners[NMove*int(co.Corners)+int(m)]
	if co.UDEdges == invalidUDEdges {
		co.UDEdges = mv.UDEdges[NUDEdges*NMove+int(m)-NMove]
	} else {
		co.UDEdges = mv.UDEdges[NMove*int(co.UDEdges)+int(m)]
	}
}

// buildEdgeMerge computes the table giving the phase-2 ud_edges coordinate
// from u_edges and d_edges%24 at the end of phase 1.
func buildEdgeMerge() []uint16 {
	table := make([]uint16, NUEdgesPhase2*NPerm4)
	cU := SolvedCubie()
	cD := SolvedCubie()
	cUD := SolvedCubie()
	isUEdge := func(e Edge) bool { return e <= UB }
	isDEdge := func(e Edge) bool { return e >= DR && e <= DB }
	for i := 0; i < NUEdgesPhase2; i++ {
		cU.SetUEdges(uint16(i))
		for j := 0; j < NChoose84; j++ {
			cD.SetDEdges(uint16(j * NPerm4))
			invalid := false
			for e := 0; e < 8; e++ {
				placed := false
				if isUEdge(cU.ep[e]) {
					cUD.ep[e] = cU.ep[e]
					placed = true
				}
				if isDEdge(cD.ep[e]) {
					cUD.ep[e] = cD.ep[e]
					placed = true
				}
				if !placed {
					invalid = true // edge collision
					break
				}
			}
			if invalid {
				continue
			}
			for k := 0; k < NPerm4; k++ {
				cD.SetDEdges(uint16(j*NPerm4 + k))
				for e := 0; e < 8; e++ {
					if isUEdge(cU.ep[e]) {
						cUD.ep[e] = cU.ep[e]
					}
					if isDEdge(cD.ep[e]) {
						cUD.ep[e] = cD.ep[e]
					}
				}
				table[NPerm4*i+k] = cUD.GetUDEdges()
			}
		}
	}
	return table
}
