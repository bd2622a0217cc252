package cube

import "math/rand"

// Corner names the eight corner cubies.
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

func (c Corner) String() string {
	return []string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}[c]
}

// Edge names the twelve edge cubies. FR..BR are the E-slice edges.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

func (e Edge) String() string {
	return []string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}[e]
}

// CubieCube represents the cube on the cubie level: a corner permutation
// with twists and an edge permutation with flips. Corner orientations 3..5
// encode mirrored states and only occur inside symmetry cubes.
type CubieCube struct {
	cp [8]Corner
	co [8]byte
	ep [12]Edge
	eo [12]byte
}

// SolvedCubie returns the identity cube.
func SolvedCubie() CubieCube {
	return CubieCube{
		cp: [8]Corner{URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB},
		ep: [12]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR},
	}
}

// The six basic moves as permutation/orientation literals.
var (
	uMove = CubieCube{
		cp: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		co: [8]byte{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		eo: [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	rMove = CubieCube{
		cp: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		co: [8]byte{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		eo: [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	fMove = CubieCube{
		cp: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		co: [8]byte{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		eo: [12]byte{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	dMove = CubieCube{
		cp: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		co: [8]byte{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		eo: [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	lMove = CubieCube{
		cp: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		co: [8]byte{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		eo: [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	bMove = CubieCube{
		cp: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		co: [8]byte{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		eo: [12]byte{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
)

// basicMoveCubes in colour order U, R, F, D, L, B.
var basicMoveCubes = [6]CubieCube{uMove, rMove, fMove, dMove, lMove, bMove}

// CornerMultiply composes the corner layer: c = c ∘ b. Orientations 3..5
// carry the mirrored cases needed when b or c is a reflection symmetry.
func (c *CubieCube) CornerMultiply(b CubieCube) {
	var cp [8]Corner
	var co [8]byte
	for i := 0; i < 8; i++ {
		cp[i] = c.cp[b.cp[i]]
		oriA := int(c.co[b.cp[i]])
		oriB := int(b.co[i])
		var ori int
		switch {
		case oriA < 3 && oriB < 3:
			ori = oriA + oriB
			if ori >= 3 {
				ori -= 3
			}
		case oriA < 3 && oriB >= 3:
			ori = oriA + oriB
			if ori >= 6 {
				ori -= 3
			}
		case oriA >= 3 && oriB < 3:
			ori = oriA - oriB
			if ori < 3 {
				ori += 3
			}
		default:
			ori = oriA - oriB
			if ori < 0 {
				ori += 3
			}
		}
		co[i] = byte(ori)
	}
	c.cp = cp
	c.co = co
}

// EdgeMultiply composes the edge layer: c = c ∘ b.
func (c *CubieCube) EdgeMultiply(b CubieCube) {
	var ep [12]Edge
	var eo [12]byte
	for i := 0; i < 12; i++ {
		ep[i] = c.ep[b.ep[i]]
		eo[i] = (b.eo[i] + c.eo[b.ep[i]]) % 2
	}
	c.ep = ep
	c.eo = eo
}

// Multiply composes both layers: c = c ∘ b.
func (c *CubieCube) Multiply(b CubieCube) {
	c.CornerMultiply(b)
	c.EdgeMultiply(b)
}

// Inverse returns the group inverse of the cube.
func (c CubieCube) Inverse() CubieCube {
	var d CubieCube
	for e := 0; e < 12; e++ {
		d.ep[c.ep[e]] = Edge(e)
	}
	for e := 0; e < 12; e++ {
		d.eo[e] = c.eo[d.ep[e]]
	}
	for i := 0; i < 8; i++ {
		d.cp[c.cp[i]] = Corner(i)
	}
	for i := 0; i < 8; i++ {
		ori := int(c.co[d.cp[i]])
		if ori >= 3 {
			d.co[i] = byte(ori)
		} else {
			ori = -ori
			if ori < 0 {
				ori += 3
			}
			d.co[i] = byte(ori)
		}
	}
	return d
}

// ApplyMove applies a face turn to the cube.
func (c *CubieCube) ApplyMove(m Move) {
	basic := basicMoveCubes[m/3]
	for i := 0; i <= int(m%3); i++ {
		c.Multiply(basic)
	}
}

// ApplyMoves applies a move sequence in order.
func (c *CubieCube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// FromMoves returns the cube produced by applying a scramble to the solved
// cube.
func FromMoves(moves []Move) CubieCube {
	c := SolvedCubie()
	c.ApplyMoves(moves)
	return c
}

// CornerParity returns the sign of the corner permutation.
func (c *CubieCube) CornerParity() int {
	s := 0
	for i := 7; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if c.cp[j] > c.cp[i] {
				s++
			}
		}
	}
	return s % 2
}

// EdgeParity returns the sign of the edge permutation. A reachable cube has
// EdgeParity == CornerParity.
func (c *CubieCube) EdgeParity() int {
	s := 0
	for i := 11; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if c.ep[j] > c.ep[i] {
				s++
			}
		}
	}
	return s % 2
}

// Verify checks the four algebraic invariants of a reachable cube: both
// layers are permutations, the twist sum is divisible by 3, the flip sum is
// even, and the two permutation signs agree.
func (c *CubieCube) Verify() error {
	var edgeCount [12]int
	for _, e := range c.ep {
		if int(e) > 11 {
			return ErrInvalidCubieValue
		}
		edgeCount[e]++
	}
	for _, n := range edgeCount {
		if n != 1 {
			return ErrInvalidCubieValue
		}
	}
	flip := 0
	for _, o := range c.eo {
		flip += int(o)
	}
	if flip%2 != 0 {
		return ErrInvalidCubieValue
	}
	var cornerCount [8]int
	for _, cr := range c.cp {
		if int(cr) > 7 {
			return ErrInvalidCubieValue
		}
		cornerCount[cr]++
	}
	for _, n := range cornerCount {
		if n != 1 {
			return ErrInvalidCubieValue
		}
	}
	twist := 0
	for _, o := range c.co {
		twist += int(o)
	}
	if twist%3 != 0 {
		return ErrInvalidCubieValue
	}
	if c.EdgeParity() != c.CornerParity() {
		return ErrInvalidCubieValue
	}
	return nil
}

// IsSolvable reports whether the state satisfies all invariants.
func (c *CubieCube) IsSolvable() bool {
	return c.Verify() == nil
}

// Symmetries returns the indices of all symmetries s with s·c·s⁻¹ = c, and,
// offset by 48, all antisymmetries s with s·c⁻¹·s⁻¹ = c.
func (c *CubieCube) Symmetries() []int {
	sc, invIdx := symCubes()
	var syms []int
	for j := 0; j < NSym; j++ {
		d := sc[j]
		d.Multiply(*c)
		d.Multiply(sc[invIdx[j]])
		if d == *c {
			syms = append(syms, j)
		}
	}
	inv := c.Inverse()
	for j := 0; j < NSym; j++ {
		d := sc[j]
		d.Multiply(inv)
		d.Multiply(sc[invIdx[j]])
		if d == *c {
			syms = append(syms, j+NSym)
		}
	}
	return syms
}

// Randomize sets the cube to a uniformly random reachable state.
func (c *CubieCube) Randomize(rng *rand.Rand) {
	c.SetEdges(rng.Intn(479001600)) // 12!
	p := c.EdgeParity()
	for {
		c.SetCorners(uint16(rng.Intn(NCorners)))
		if c.CornerParity() == p {
			break
		}
	}
	c.SetFlip(uint16(rng.Intn(NFlip)))
	c.SetTwist(uint16(rng.Intn(NTwist)))
}

func rotateLeftCorners(arr *[8]Corner, l, r int) {
	t := arr[l]
	for i := l; i < r; i++ {
		arr[i] = arr[i+1]
	}
	arr[r] = t
}

func rotateRightCorners(arr *[8]Corner, l, r int) {
	t := arr[r]
	for i := r; i > l; i-- {
		arr[i] = arr[i-1]
	}
	arr[l] = t
}

func rotateLeftEdges(arr []Edge, l, r int) {
	t := arr[l]
	for i := l; i < r; i++ {
		arr[i] = arr[i+1]
	}
	arr[r] = t
}

func rotateRightEdges(arr []Edge, l, r int) {
	t := arr[r]
	for i := r; i > l; i-- {
		arr[i] = arr[i-1]
	}
	arr[l] = t
}
