package cube

// MoveTables map (coordinate, move) to the successor coordinate, 18 moves
// per row. Built by applying each basic move cube one to four times to the
// canonical cubie for every coordinate value; the fourth multiplication
// restores the face.
type MoveTables struct {
	Twist       []uint16
	Flip        []uint16
	SliceSorted []uint16
	UEdges      []uint16
	DEdges      []uint16
	UDEdges     []uint16
	Corners     []uint16
}

// NewMoveTables builds or loads all move tables from dir.
func NewMoveTables(dir string) (*MoveTables, error) {
	mv := &MoveTables{}
	var err error
	mv.Twist, err = loadOrBuildTable(dir, "move_twist", NTwist*NMove, buildTwistMove)
	if err != nil {
		return nil, err
	}
	mv.Flip, err = loadOrBuildTable(dir, "move_flip", NFlip*NMove, buildFlipMove)
	if err != nil {
		return nil, err
	}
	mv.SliceSorted, err = loadOrBuildTable(dir, "move_slice_sorted", NSliceSorted*NMove, buildSliceSortedMove)
	if err != nil {
		return nil, err
	}
	mv.UEdges, err = loadOrBuildTable(dir, "move_u_edges", NSliceSorted*NMove, buildUEdgesMove)
	if err != nil {
		return nil, err
	}
	mv.DEdges, err = loadOrBuildTable(dir, "move_d_edges", NSliceSorted*NMove, buildDEdgesMove)
	if err != nil {
		return nil, err
	}
	mv.UDEdges, err = loadOrBuildTable(dir, "move_ud_edges", NUDEdges*NMove, buildUDEdgesMove)
	if err != nil {
		return nil, err
	}
	mv.Corners, err = loadOrBuildTable(dir, "move_corners", NCorners*NMove, buildCornersMove)
	if err != nil {
		return nil, err
	}
	return mv, nil
}

func buildTwistMove() []uint16 {
	table := make([]uint16, NTwist*NMove)
	a := SolvedCubie()
	for i := 0; i < NTwist; i++ {
		a.SetTwist(uint16(i))
		for j := range allColors {
			for k := 0; k < 3; k++ {
				a.CornerMultiply(basicMoveCubes[j])
				table[NMove*i+3*j+k] = a.GetTwist()
			}
			a.CornerMultiply(basicMoveCubes[j])
		}
	}
	return table
}

func buildFlipMove() []uint16 {
	table := make([]uint16, NFlip*NMove)
	a := SolvedCubie()
	for i := 0; i < NFlip; i++ {
		a.SetFlip(uint16(i))
		for j := range allColors {
			for k := 0; k < 3; k++ {
				a.EdgeMultiply(basicMoveCubes[j])
				table[NMove*i+3*j+k] = a.GetFlip()
			}
			a.EdgeMultiply(basicMoveCubes[j])
		}
	}
	return table
}

func buildSliceSortedMove() []uint16 {
	table := make([]uint16, NSliceSorted*NMove)
	a := SolvedCubie()
	for i := 0; i < NSliceSorted; i++ {
		a.SetSliceSorted(uint16(i))
		for j := range allColors {
			for k := 0; k < 3; k++ {
				a.EdgeMultiply(basicMoveCubes[j])
				table[NMove*i+3*j+k] = a.GetSliceSorted()
			}
			a.EdgeMultiply(basicMoveCubes[j])
		}
	}
	return table
}

func buildUEdgesMove() []uint16 {
	table := make([]uint16, NSliceSorted*NMove)
	a := SolvedCubie()
	for i := 0; i < NSliceSorted; i++ {
		a.SetUEdges(uint16(i))
		for j := range allColors {
			for k := 0; k < 3; k++ {
				a.EdgeMultiply(basicMoveCubes[j])
				table[NMove*i+3*j+k] = a.GetUEdges()
			}
			a.EdgeMultiply(basicMoveCubes[j])
		}
	}
	return table
}

func buildDEdgesMove() []uint16 {
	table := make([]uint16, NSliceSorted*NMove)
	a := SolvedCubie()
	for i := 0; i < NSliceSorted; i++ {
		a.SetDEdges(uint16(i))
		for j := range allColors {
			for k := 0; k < 3; k++ {
				a.EdgeMultiply(basicMoveCubes[j])
				table[NMove*i+3*j+k] = a.GetDEdges()
			}
			a.EdgeMultiply(basicMoveCubes[j])
		}
	}
	return table
}

// buildUDEdgesMove fills, in every row, only the entries of the ten phase-2
// moves; the entries for quarter turns of R, F, L and B stay zero and are
// never read.
func buildUDEdgesMove() []uint16 {
	table := make([]uint16, NUDEdges*NMove)
	a := SolvedCubie()
	for i := 0; i < NUDEdges; i++ {
		a.SetUDEdges(i)
		for j := range allColors {
			for k := 0; k < 3; k++ {
				a.EdgeMultiply(basicMoveCubes[j])
				c := allColors[j]
				if (c == ColorR || c == ColorF || c == ColorL || c == ColorB) && k != 1 {
					continue
				}
				table[NMove*i+3*j+k] = a.GetUDEdges()
			}
			a.EdgeMultiply(basicMoveCubes[j])
		}
	}
	return table
}

func buildCornersMove() []uint16 {
	table := make([]uint16, NCorners*NMove)
	a := SolvedCubie()
	for i := 0; i < NCorners; i++ {
		a.SetCorners(uint16(i))
		for j := range allColors {
			for k := 0; k < 3; k++ {
				a.CornerMultiply(basicMoveCubes[j])
				table[NMove*i+3*j+k] = a.GetCorners()
			}
			a.CornerMultiply(basicMoveCubes[j])
		}
	}
	return table
}
