package cube

import (
	"fmt"
	"strings"
)

// Color names the six face colours by the face carrying them.
type Color uint8

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

func (c Color) String() string {
	return []string{"U", "R", "F", "D", "L", "B"}[c]
}

// allColors in the face order of the definition string and the move tables.
var allColors = [6]Color{ColorU, ColorR, ColorF, ColorD, ColorL, ColorB}

// FaceCube represents the cube on the facelet level: 54 stickers in face
// order U, R, F, D, L, B, row-major within each face.
type FaceCube struct {
	F [54]Color
}

// SolvedFacelets is the definition string of the solved cube.
const SolvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// centerIndices are the six fixed centre stickers.
var centerIndices = [6]int{4, 13, 22, 31, 40, 49}

// cornerFacelet lists, per corner slot, its three sticker positions; the
// first is the one on the U or D face.
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

// cornerColor lists, per corner cubie, its colours in the same order.
var cornerColor = [8][3]Color{
	{ColorU, ColorR, ColorF},
	{ColorU, ColorF, ColorL},
	{ColorU, ColorL, ColorB},
	{ColorU, ColorB, ColorR},
	{ColorD, ColorF, ColorR},
	{ColorD, ColorL, ColorF},
	{ColorD, ColorB, ColorL},
	{ColorD, ColorR, ColorB},
}

// edgeFacelet lists, per edge slot, its two sticker positions.
var edgeFacelet = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

// edgeColor lists, per edge cubie, its colours in the same order.
var edgeColor = [12][2]Color{
	{ColorU, ColorR},
	{ColorU, ColorF},
	{ColorU, ColorL},
	{ColorU, ColorB},
	{ColorD, ColorR},
	{ColorD, ColorF},
	{ColorD, ColorL},
	{ColorD, ColorB},
	{ColorF, ColorR},
	{ColorF, ColorL},
	{ColorB, ColorL},
	{ColorB, ColorR},
}

// ParseFacelets validates a 54-character definition string: correct
// alphabet, nine stickers of each colour and centres matching their face.
func ParseFacelets(s string) (*FaceCube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: length %d, want 54", ErrInvalidFaceletString, len(s))
	}
	var fc FaceCube
	var counts [6]int
	for i := 0; i < 54; i++ {
		switch s[i] {
		case 'U':
			fc.F[i] = ColorU
		case 'R':
			fc.F[i] = ColorR
		case 'F':
			fc.F[i] = ColorF
		case 'D':
			fc.F[i] = ColorD
		case 'L':
			fc.F[i] = ColorL
		case 'B':
			fc.F[i] = ColorB
		default:
			return nil, fmt.Errorf("%w: character %q at %d", ErrInvalidFaceletString, s[i], i)
		}
		counts[fc.F[i]]++
	}
	for c, n := range counts {
		if n != 9 {
			return nil, fmt.Errorf("%w: %d %v stickers, want 9", ErrInvalidFaceletString, n, Color(c))
		}
	}
	for face, idx := range centerIndices {
		if fc.F[idx] != Color(face) {
			return nil, fmt.Errorf("%w: centre of face %v is %v", ErrInvalidFaceletString, Color(face), fc.F[idx])
		}
	}
	return &fc, nil
}

// String returns the 54-character definition string.
func (fc *FaceCube) String() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, c := range fc.F {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ToCubie maps the stickers to a cubie state. It fails with
// ErrInvalidFaceletValue when some sticker triple or pair matches no piece.
func (fc *FaceCube) ToCubie() (CubieCube, error) {
	var cc CubieCube
	for i := 0; i < 8; i++ {
		var ori int
		// The twist is given by the position of the U or D sticker.
		for ori = 0; ori < 3; ori++ {
			col := fc.F[cornerFacelet[i][ori]]
			if col == ColorU || col == ColorD {
				break
			}
		}
		if ori == 3 {
			return CubieCube{}, fmt.Errorf("%w: corner slot %d has no U/D sticker", ErrInvalidFaceletValue, i)
		}
		colA := fc.F[cornerFacelet[i][(ori+1)%3]]
		colB := fc.F[cornerFacelet[i][(ori+2)%3]]
		found := false
		for j := 0; j < 8; j++ {
			if colA == cornerColor[j][1] && colB == cornerColor[j][2] {
				cc.cp[i] = Corner(j)
				cc.co[i] = byte(ori)
				found = true
				break
			}
		}
		if !found {
			return CubieCube{}, fmt.Errorf("%w: corner slot %d has colours of no corner", ErrInvalidFaceletValue, i)
		}
	}
	for i := 0; i < 12; i++ {
		found := false
		for j := 0; j < 12; j++ {
			a := fc.F[edgeFacelet[i][0]]
			b := fc.F[edgeFacelet[i][1]]
			if a == edgeColor[j][0] && b == edgeColor[j][1] {
				cc.ep[i] = Edge(j)
				cc.eo[i] = 0
				found = true
				break
			}
			if a == edgeColor[j][1] && b == edgeColor[j][0] {
				cc.ep[i] = Edge(j)
				cc.eo[i] = 1
				found = true
				break
			}
		}
		if !found {
			return CubieCube{}, fmt.Errorf("%w: edge slot %d has colours of no edge", ErrInvalidFaceletValue, i)
		}
	}
	return cc, nil
}

// FaceletsFromCubie renders a cubie state back to stickers. Symmetry cubes
// with mirrored corner orientations cannot be rendered.
func FaceletsFromCubie(cc *CubieCube) (*FaceCube, error) {
	var fc FaceCube
	for face, idx := range centerIndices {
		fc.F[idx] = Color(face)
	}
	for i := 0; i < 8; i++ {
		ori := int(cc.co[i])
		if ori >= 3 {
			return nil, ErrInvalidCubieValue
		}
		for k := 0; k < 3; k++ {
			fc.F[cornerFacelet[i][(k+ori)%3]] = cornerColor[cc.cp[i]][k]
		}
	}
	for i := 0; i < 12; i++ {
		ori := int(cc.eo[i])
		for k := 0; k < 2; k++ {
			fc.F[edgeFacelet[i][(k+ori)%2]] = edgeColor[cc.ep[i]][k]
		}
	}
	return &fc, nil
}

// ParseCube parses a definition string all the way down to a verified
// cubie state.
func ParseCube(s string) (CubieCube, error) {
	fc, err := ParseFacelets(s)
	if err != nil {
		return CubieCube{}, err
	}
	cc, err := fc.ToCubie()
	if err != nil {
		return CubieCube{}, err
	}
	if err := cc.Verify(); err != nil {
		return CubieCube{}, fmt.Errorf("%w: %v", ErrInvalidFaceletValue, err)
	}
	return cc, nil
}
