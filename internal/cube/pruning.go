package cube

// PruneTables hold the distance lower bounds cutting the search tree. The
// two big tables store depth mod 3 in two bits, sixteen entries per uint32
// word; cornslice stores exact depths.
type PruneTables struct {
	// FlipsliceTwistDepth3[classidx*NTwist+twist] is exactly the number of
	// moves mod 3 to solve phase 1 from that state.
	FlipsliceTwistDepth3 []uint32

	// CornersUDEdgesDepth3[classidx*NUDEdges+udEdges] is at least the
	// number of moves mod 3 to solve phase 2; sentinel 3 means depth >= 11.
	CornersUDEdgesDepth3 []uint32

	// CornsliceDepth[corners*NPerm4+sliceSorted] is the exact phase-2 depth
	// of the corner/slice projection.
	CornsliceDepth []uint16

	// Distance[3*old+mod3] recovers an exact depth from the parent's exact
	// depth and the child's mod-3 value.
	Distance [60]uint16
}

func (pr *PruneTables) flipsliceTwistDepth3(ix int) uint32 {
	y := pr.FlipsliceTwistDepth3[ix/16]
	return (y >> ((ix % 16) * 2)) & 3
}

func (pr *PruneTables) setFlipsliceTwistDepth3(ix int, value uint32) {
	shift := uint(ix%16) * 2
	base := ix >> 4
	pr.FlipsliceTwistDepth3[base] &^= 3 << shift
	pr.FlipsliceTwistDepth3[base] |= value << shift
}

func (pr *PruneTables) cornersUDEdgesDepth3(ix int) uint32 {
	y := pr.CornersUDEdgesDepth3[ix/16]
	return (y >> ((ix % 16) * 2)) & 3
}

func (pr *PruneTables) setCornersUDEdgesDepth3(ix int, value uint32) {
	shift := uint(ix%16) * 2
	base := ix >> 4
	pr.CornersUDEdgesDepth3[base] &^= 3 << shift
	pr.CornersUDEdgesDepth3[base] |= value << shift
}

// NewPruneTables builds or loads the pruning tables from dir. The move and
// symmetry tables must already exist.
func NewPruneTables(dir string, sy *SymTables, mv *MoveTables) (*PruneTables, error) {
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
	var err error
	pr.FlipsliceTwistDepth3, err = loadOrBuildTable(dir, "phase1_prun",
		NFlipsliceClass*NTwist/16+1, func() []uint32 {
			return buildPhase1Prun(sy, mv)
		})
	if err != nil {
		return nil, err
	}
	pr.CornersUDEdgesDepth3, err = loadOrBuildTable(dir, "phase2_prun",
		NCornersClass*NUDEdges/16, func() []uint32 {
			return buildPhase2Prun(sy, mv)
		})
	if err != nil {
		return nil, err
	}
	pr.CornsliceDepth, err = loadOrBuildTable(dir, "phase2_cornsliceprun",
		NCorners*NPerm4, func() []uint16 {
			return buildCornslicePrun(mv)
		})
	if err != nil {
		return nil, err
	}
	return pr, nil
}

// buildPhase1Prun fills the phase-1 table by breadth-first search over the
// symmetry-reduced flipslice classes times raw twist, switching to a
// backward fill at depth 9 when most entries are already set.
func buildPhase1Prun(sy *SymTables, mv *MoveTables) []uint32 {
	pr := &PruneTables{FlipsliceTwistDepth3: make([]uint32, NFlipsliceClass*NTwist/16+1)}
	for i := range pr.FlipsliceTwistDepth3 {
		pr.FlipsliceTwistDepth3[i] = 0xffffffff
	}
	sc, invIdx := sy.Sc, sy.InvIdx

	// Self-symmetry mask of each flipslice class: bit s set when conjugating
	// the representative by s gives the representative back.
	fsSym := make([]uint16, NFlipsliceClass)
	cc := SolvedCubie()
	for i := 0; i < NFlipsliceClass; i++ {
		rep := int(sy.FlipsliceRep[i])
		cc.SetSlice(uint16(rep / NFlip))
		cc.SetFlip(uint16(rep % NFlip))
		for s := 0; s < NSymD4h; s++ {
			ss := sc[s]
			ss.EdgeMultiply(cc)            // s*cc
			ss.EdgeMultiply(sc[invIdx[s]]) // s*cc*s^-1
			if int(ss.GetSlice()) == rep/NFlip && int(ss.GetFlip()) == rep%NFlip {
				fsSym[i] |= 1 << s
			}
		}
	}

	total := NFlipsliceClass * NTwist
	pr.setFlipsliceTwistDepth3(0, 0) // solved phase 1
	done := 1
	depth := 0
	backsearch := false
	for done != total {
		depth3 := uint32(depth % 3)
		if depth == 9 {
			// backwards search is faster once the table is mostly filled
			backsearch = true
		}
		idx := 0
		for fsClassidx := 0; fsClassidx < NFlipsliceClass; fsClassidx++ {
			twist := 0
			for twist < NTwist {
				// sweep over whole empty words cheaply
				if !backsearch && idx%16 == 0 &&
					pr.FlipsliceTwistDepth3[idx/16] == 0xffffffff &&
					twist < NTwist-16 {
					twist += 16
					idx += 16
					continue
				}
				var match bool
				if backsearch {
					match = pr.flipsliceTwistDepth3(idx) == 3
				} else {
					match = pr.flipsliceTwistDepth3(idx) == depth3
				}
				if match {
					flipslice := int(sy.FlipsliceRep[fsClassidx])
					flip := flipslice % NFlip
					slice := flipslice >> 11
					for m := 0; m < NMove; m++ {
						twist1 := int(mv.Twist[NMove*twist+m])
						flip1 := int(mv.Flip[NMove*flip+m])
						slice1 := int(mv.SliceSorted[NMove*slice*NPerm4+m]) / NPerm4
						flipslice1 := slice1<<11 + flip1
						fs1Classidx := int(sy.FlipsliceClassidx[flipslice1])
						fs1Sym := int(sy.FlipsliceSym[flipslice1])
						twist1 = int(sy.TwistConj[twist1<<4+fs1Sym])
						idx1 := NTwist*fs1Classidx + twist1
						if !backsearch {
							if pr.flipsliceTwistDepth3(idx1) == 3 {
								pr.setFlipsliceTwistDepth3(idx1, uint32(depth+1)%3)
								done++
								// a symmetric class has more than one
								// representation of the same position
								if sym := fsSym[fs1Classidx]; sym != 1 {
									for k := 1; k < NSymD4h; k++ {
										sym >>= 1
										if sym%2 == 1 {
											twist2 := int(sy.TwistConj[twist1<<4+k])
											idx2 := NTwist*fs1Classidx + twist2
											if pr.flipsliceTwistDepth3(idx2) == 3 {
												pr.setFlipsliceTwistDepth3(idx2, uint32(depth+1)%3)
												done++
											}
										}
									}
								}
							}
						} else if pr.flipsliceTwistDepth3(idx1) == depth3 {
							pr.setFlipsliceTwistDepth3(idx, uint32(depth+1)%3)
							done++
							break
						}
					}
				}
				twist++
				idx++
			}
		}
		depth++
	}
	return pr.FlipsliceTwistDepth3
}

// buildPhase2Prun fills the phase-2 table to depth 10 over corner classes
// times raw ud_edges; unfilled entries mean depth >= 11.
func buildPhase2Prun(sy *SymTables, mv *MoveTables) []uint32 {
	pr := &PruneTables{CornersUDEdgesDepth3: make([]uint32, NCornersClass*NUDEdges/16)}
	for i := range pr.CornersUDEdgesDepth3 {
		pr.CornersUDEdgesDepth3[i] = 0xffffffff
	}
	sc, invIdx := sy.Sc, sy.InvIdx

	cSym := make([]uint16, NCornersClass)
	cc := SolvedCubie()
	for i := 0; i < NCornersClass; i++ {
		rep := sy.CornerRep[i]
		cc.SetCorners(rep)
		for s := 0; s < NSymD4h; s++ {
			ss := sc[s]
			ss.CornerMultiply(cc)
			ss.CornerMultiply(sc[invIdx[s]])
			if ss.GetCorners() == rep {
				cSym[i] |= 1 << s
			}
		}
	}

	pr.setCornersUDEdgesDepth3(0, 0) // solved phase 2
	depth := 0
	for depth < 10 {
		depth3 := uint32(depth % 3)
		idx := 0
		for cClassidx := 0; cClassidx < NCornersClass; cClassidx++ {
			udEdge := 0
			for udEdge < NUDEdges {
				if idx%16 == 0 &&
					pr.CornersUDEdgesDepth3[idx/16] == 0xffffffff &&
					udEdge < NUDEdges-16 {
					udEdge += 16
					idx += 16
					continue
				}
				if pr.cornersUDEdgesDepth3(idx) == depth3 {
					corner := int(sy.CornerRep[cClassidx])
					for _, m := range Phase2Moves {
						udEdge1 := int(mv.UDEdges[NMove*udEdge+int(m)])
						corner1 := int(mv.Corners[NMove*corner+int(m)])
						c1Classidx := int(sy.CornerClassidx[corner1])
						c1Sym := int(sy.CornerSym[corner1])
						udEdge1 = int(sy.UDEdgesConj[udEdge1<<4+c1Sym])
						idx1 := NUDEdges*c1Classidx + udEdge1
						if pr.cornersUDEdgesDepth3(idx1) == 3 {
							pr.setCornersUDEdgesDepth3(idx1, uint32(depth+1)%3)
							if sym := cSym[c1Classidx]; sym != 1 {
								for k := 1; k < NSymD4h; k++ {
									sym >>= 1
									if sym%2 == 1 {
										udEdge2 := int(sy.UDEdgesConj[udEdge1<<4+k])
										idx2 := NUDEdges*c1Classidx + udEdge2
										if pr.cornersUDEdgesDepth3(idx2) == 3 {
											pr.setCornersUDEdgesDepth3(idx2, uint32(depth+1)%3)
										}
									}
								}
							}
						}
					}
				}
				udEdge++
				idx++
			}
		}
		depth++
	}
	return pr.CornersUDEdgesDepth3
}

// buildCornslicePrun computes exact phase-2 depths for the corner
// permutation together with the slice-edge permutation.
func buildCornslicePrun(mv *MoveTables) []uint16 {
	table := make([]uint16, NCorners*NPerm4)
	for i := range table {
		table[i] = 65535
	}
	table[0] = 0
	done := 1
	depth := uint16(0)
	for done != NCorners*NPerm4 {
		for corners := 0; corners < NCorners; corners++ {
			for slice := 0; slice < NPerm4; slice++ {
				if table[NPerm4*corners+slice] != depth {
					continue
				}
				for _, m := range Phase2Moves {
					corners1 := int(mv.Corners[NMove*corners+int(m)])
					slice1 := int(mv.SliceSorted[NMove*slice+int(m)])
					idx1 := NPerm4*corners1 + slice1
					if table[idx1] == 65535 {
						table[idx1] = depth + 1
						done++
					}
				}
			}
		}
		depth++
	}
	return table
}
