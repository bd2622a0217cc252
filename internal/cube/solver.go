package cube

import (
	"sync"
	"time"
)

// SolutionResult carries a maneuver restoring the cube and the wall-clock
// time the search took (table load time excluded).
type SolutionResult struct {
	Solution  []Move
	SolveTime time.Duration
}

// solveState is the state the six workers of one solve share: the solution
// log with the shortest length found so far behind one mutex, and the
// termination flag behind another.
type solveState struct {
	mu        sync.Mutex
	solutions [][]Move
	shortest  int

	termMu     sync.Mutex
	terminated bool
}

func newSolveState() *solveState {
	return &solveState{shortest: 999}
}

func (st *solveState) isTerminated() bool {
	st.termMu.Lock()
	defer st.termMu.Unlock()
	return st.terminated
}

func (st *solveState) terminate() {
	st.termMu.Lock()
	st.terminated = true
	st.termMu.Unlock()
}

// Solve finds a maneuver of length <= maxLength restoring the cube given
// by its definition string. The timeout is soft: when it passes, the best
// solution found so far is returned, but if none has been found yet the
// search continues until the first one appears. A solved cube yields the
// empty solution.
func Solve(facelets string, maxLength int, timeout time.Duration) (*SolutionResult, error) {
	return Solver(facelets, SolvedFacelets, maxLength, timeout)
}

// Solver solves the cube defined by facelets to the position defined by
// goalFacelets: it searches the relative cube g⁻¹·s.
func Solver(facelets, goalFacelets string, maxLength int, timeout time.Duration) (*SolutionResult, error) {
	tb, err := Tables()
	if err != nil {
		return nil, err
	}
	cc0, err := ParseCube(facelets)
	if err != nil {
		return nil, err
	}
	ccg, err := ParseCube(goalFacelets)
	if err != nil {
		return nil, err
	}
	// cc0 * S = ccg  <=>  (ccg^-1 * cc0) * S = Id
	cc := ccg.Inverse()
	cc.Multiply(cc0)
	return solveCubie(cc, maxLength, timeout, tb), nil
}

// solveCubie runs up to six workers over the rotational conjugates and the
// inverse of the cube and returns the best solution posted.
func solveCubie(cc CubieCube, maxLength int, timeout time.Duration, tb *SolverTables) *SolutionResult {
	startTime := time.Now()

	syms := cc.Symmetries()
	hasRotSym := false
	hasAntiSym := false
	for _, s := range syms {
		switch {
		case s == 16 || s == 20 || s == 24 || s == 28:
			hasRotSym = true // rotational symmetry along a long diagonal
		case s >= NSym:
			hasAntiSym = true
		}
	}
	var tr []int
	if hasRotSym {
		// only one direction and the inverse are distinct
		tr = []int{0, 3}
	} else {
		tr = []int{0, 1, 2, 3, 4, 5}
	}
	if hasAntiSym {
		// inversion is redundant
		var direct []int
		for _, i := range tr {
			if i < 3 {
				direct = append(direct, i)
			}
		}
		tr = direct
	}

	st := newSolveState()
	var wg sync.WaitGroup
	for _, i := range tr {
		w := &solveWorker{
			cbCube:    cc,
			rot:       i % 3,
			inv:       i / 3,
			retLength: maxLength,
			timeout:   timeout,
			startTime: startTime,
			st:        st,
			tb:        tb,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run()
		}()
	}
	wg.Wait()

	res := &SolutionResult{Solution: []Move{}, SolveTime: time.Since(startTime)}
	st.mu.Lock()
	if len(st.solutions) > 0 {
		res.Solution = st.solutions[len(st.solutions)-1]
	}
	st.mu.Unlock()
	return res
}

// solveWorker runs the two-phase search on one conjugate/inversion of the
// input cube.
type solveWorker struct {
	cbCube      CubieCube
	coCube      CoordCube
	rot         int
	inv         int
	sofarPhase1 []Move
	sofarPhase2 []Move
	phase2Done  bool
	retLength   int
	timeout     time.Duration
	startTime   time.Time
	cornersave  uint16

	st *solveState
	tb *SolverTables
}

func (w *solveWorker) run() {
	sc := w.tb.Sy.Sc
	cb := w.cbCube
	switch w.rot {
	case 1: // conjugation by the 120° rotation
		cb = sc[32]
		cb.Multiply(w.cbCube)
		cb.Multiply(sc[16])
	case 2: // conjugation by the 240° rotation
		cb = sc[16]
		cb.Multiply(w.cbCube)
		cb.Multiply(sc[32])
	}
	if w.inv == 1 {
		cb = cb.Inverse()
	}
	co, err := CoordFromCubie(&cb, w.tb.Sy)
	if err != nil {
		return // caller verified the cube; conjugates stay solvable
	}
	w.coCube = co
	dist := w.depthPhase1()
	for togo1 := dist; togo1 < 20; togo1++ {
		w.sofarPhase1 = w.sofarPhase1[:0]
		w.searchPhase1(w.coCube.Flip, w.coCube.Twist, w.coCube.SliceSorted, dist, togo1)
	}
}

// depthPhase1 recovers the exact distance to the subgroup H from the mod-3
// pruning table by walking a descending path to the solved state.
func (w *solveWorker) depthPhase1() int {
	slice := int(w.coCube.SliceSorted) / NPerm4
	flip := int(w.coCube.Flip)
	twist := int(w.coCube.Twist)
	flipslice := NFlip*slice + flip
	classidx := int(w.tb.Sy.FlipsliceClassidx[flipslice])
	sym := int(w.tb.Sy.FlipsliceSym[flipslice])
	depthMod3 := w.tb.Pr.flipsliceTwistDepth3(
		NTwist*classidx + int(w.tb.Sy.TwistConj[twist<<4+sym]))

	depth := 0
	for flip != 0 || slice != 0 || twist != 0 {
		if depthMod3 == 0 {
			depthMod3 = 3
		}
		for m := 0; m < NMove; m++ {
			twist1 := int(w.tb.Mv.Twist[NMove*twist+m])
			flip1 := int(w.tb.Mv.Flip[NMove*flip+m])
			slice1 := int(w.tb.Mv.SliceSorted[NMove*slice*NPerm4+m]) / NPerm4
			flipslice1 := NFlip*slice1 + flip1
			classidx1 := int(w.tb.Sy.FlipsliceClassidx[flipslice1])
			sym1 := int(w.tb.Sy.FlipsliceSym[flipslice1])
			if w.tb.Pr.flipsliceTwistDepth3(
				NTwist*classidx1+int(w.tb.Sy.TwistConj[twist1<<4+sym1])) == depthMod3-1 {
				depth++
				twist = twist1
				flip = flip1
				slice = slice1
				depthMod3--
				break
			}
		}
	}
	return depth
}

// depthPhase2 is the analogous walk for phase 2; a sentinel table entry
// means the true depth is at least 11.
func (w *solveWorker) depthPhase2(corners, udEdges int) int {
	classidx := int(w.tb.Sy.CornerClassidx[corners])
	sym := int(w.tb.Sy.CornerSym[corners])
	depthMod3 := w.tb.Pr.cornersUDEdgesDepth3(
		NUDEdges*classidx + int(w.tb.Sy.UDEdgesConj[udEdges<<4+sym]))
	if depthMod3 == 3 {
		return 11
	}
	depth := 0
	for corners != 0 || udEdges != 0 {
		if depthMod3 == 0 {
			depthMod3 = 3
		}
		for _, m := range Phase2Moves {
			corners1 := int(w.tb.Mv.Corners[NMove*corners+int(m)])
			udEdges1 := int(w.tb.Mv.UDEdges[NMove*udEdges+int(m)])
			classidx1 := int(w.tb.Sy.CornerClassidx[corners1])
			sym1 := int(w.tb.Sy.CornerSym[corners1])
			if w.tb.Pr.cornersUDEdgesDepth3(
				NUDEdges*classidx1+int(w.tb.Sy.UDEdgesConj[udEdges1<<4+sym1])) == depthMod3-1 {
				depth++
				corners = corners1
				udEdges = udEdges1
				depthMod3--
				break
			}
		}
	}
	return depth
}

// searchPhase1 is the phase-1 IDA* body. At a terminal it sets up and runs
// the nested phase-2 search.
func (w *solveWorker) searchPhase1(flip, twist, sliceSorted uint16, dist, togo1 int) {
	if w.st.isTerminated() {
		return
	}

	if togo1 == 0 {
		// phase 1 solved; the deadline is only enforced once some solution
		// exists
		if time.Since(w.startTime) > w.timeout && w.hasSolution() {
			w.st.terminate()
			return
		}

		m := MoveU // irrelevant when there are no phase-1 moves
		if len(w.sofarPhase1) > 0 {
			m = w.sofarPhase1[len(w.sofarPhase1)-1]
		}

		var corners uint16
		if m == MoveR3 || m == MoveF3 || m == MoveL3 || m == MoveB3 {
			// phase-1 terminals come in pairs: apply R2, F2, L2 or B2 to
			// the corners saved at the previous terminal
			corners = w.tb.Mv.Corners[NMove*int(w.cornersave)+int(m)-1]
		} else {
			corners = w.coCube.Corners
			for _, mm := range w.sofarPhase1 {
				corners = w.tb.Mv.Corners[NMove*int(corners)+int(mm)]
			}
			w.cornersave = corners
		}

		// a new solution must be shorter, and phase 2 never needs more
		// than 11 moves
		togo2Limit := min(w.shortestLength()-len(w.sofarPhase1), 11)
		if int(w.tb.Pr.CornsliceDepth[NPerm4*int(corners)+int(sliceSorted)]) >= togo2Limit {
			return
		}

		uEdges := w.coCube.UEdges
		dEdges := w.coCube.DEdges
		for _, mm := range w.sofarPhase1 {
			uEdges = w.tb.Mv.UEdges[NMove*int(uEdges)+int(mm)]
			dEdges = w.tb.Mv.DEdges[NMove*int(dEdges)+int(mm)]
		}
		udEdges := w.tb.EdgeMerge[NPerm4*int(uEdges)+int(dEdges)%NPerm4]

		dist2 := w.depthPhase2(int(corners), int(udEdges))
		for togo2 := dist2; togo2 < togo2Limit; togo2++ {
			w.sofarPhase2 = w.sofarPhase2[:0]
			w.phase2Done = false
			w.searchPhase2(corners, udEdges, sliceSorted, dist2, togo2)
			if w.phase2Done {
				break
			}
		}
		return
	}

	for m := 0; m < NMove; m++ {
		mv := Move(m)
		// dist == 0 means the cube is already in H. With fewer than five
		// moves left every remaining move would be a phase-2 move, and
		// those are generated in phase 2 instead.
		if dist == 0 && togo1 < 5 && mv.isPhase2() {
			continue
		}
		if len(w.sofarPhase1) > 0 {
			diff := int(w.sofarPhase1[len(w.sofarPhase1)-1])/3 - m/3
			if diff == 0 || diff == 3 {
				// same face, or same axis in the wrong order
				continue
			}
		}

		flipNew := w.tb.Mv.Flip[NMove*int(flip)+m]
		twistNew := w.tb.Mv.Twist[NMove*int(twist)+m]
		sliceSortedNew := w.tb.Mv.SliceSorted[NMove*int(sliceSorted)+m]

		flipslice := NFlip*(int(sliceSortedNew)/NPerm4) + int(flipNew)
		classidx := int(w.tb.Sy.FlipsliceClassidx[flipslice])
		sym := int(w.tb.Sy.FlipsliceSym[flipslice])
		distNewMod3 := w.tb.Pr.flipsliceTwistDepth3(
			NTwist*classidx + int(w.tb.Sy.TwistConj[int(twistNew)<<4+sym]))
		distNew := int(w.tb.Pr.Distance[3*dist+int(distNewMod3)])
		if distNew >= togo1 {
			// cannot reach H in togo1 - 1 moves
			continue
		}

		w.sofarPhase1 = append(w.sofarPhase1, mv)
		w.searchPhase1(flipNew, twistNew, sliceSortedNew, distNew, togo1-1)
		w.sofarPhase1 = w.sofarPhase1[:len(w.sofarPhase1)-1]
	}
}

// searchPhase2 is the phase-2 IDA* body over the ten phase-2 moves.
func (w *solveWorker) searchPhase2(corners, udEdges, sliceSorted uint16, dist, togo2 int) {
	if w.st.isTerminated() || w.phase2Done {
		return
	}

	if togo2 == 0 && sliceSorted == 0 {
		w.postSolution()
		w.phase2Done = true
		return
	}

	for m := 0; m < NMove; m++ {
		mv := Move(m)
		if !mv.isPhase2() {
			continue
		}
		if len(w.sofarPhase2) > 0 {
			diff := int(w.sofarPhase2[len(w.sofarPhase2)-1])/3 - m/3
			if diff == 0 || diff == 3 {
				continue
			}
		} else if len(w.sofarPhase1) > 0 {
			diff := int(w.sofarPhase1[len(w.sofarPhase1)-1])/3 - m/3
			if diff == 0 || diff == 3 {
				continue
			}
		}

		cornersNew := w.tb.Mv.Corners[NMove*int(corners)+m]
		udEdgesNew := w.tb.Mv.UDEdges[NMove*int(udEdges)+m]
		sliceSortedNew := w.tb.Mv.SliceSorted[NMove*int(sliceSorted)+m]

		classidx := int(w.tb.Sy.CornerClassidx[cornersNew])
		sym := int(w.tb.Sy.CornerSym[cornersNew])
		distNewMod3 := w.tb.Pr.cornersUDEdgesDepth3(
			NUDEdges*classidx + int(w.tb.Sy.UDEdgesConj[int(udEdgesNew)<<4+sym]))
		distNew := int(w.tb.Pr.Distance[3*dist+int(distNewMod3)])
		if max(distNew, int(w.tb.Pr.CornsliceDepth[NPerm4*int(cornersNew)+int(sliceSortedNew)])) >= togo2 {
			continue // cannot solve in togo2 - 1 moves
		}

		w.sofarPhase2 = append(w.sofarPhase2, mv)
		w.searchPhase2(cornersNew, udEdgesNew, sliceSortedNew, distNew, togo2-1)
		w.sofarPhase2 = w.sofarPhase2[:len(w.sofarPhase2)-1]
	}
}

// postSolution rewrites the maneuver into the frame of the original cube
// and appends it to the shared log when it improves on the best so far.
func (w *solveWorker) postSolution() {
	man := make([]Move, 0, len(w.sofarPhase1)+len(w.sofarPhase2))
	man = append(man, w.sofarPhase1...)
	man = append(man, w.sofarPhase2...)

	w.st.mu.Lock()
	defer w.st.mu.Unlock()
	if len(w.st.solutions) == 0 || len(w.st.solutions[len(w.st.solutions)-1]) > len(man) {
		if w.inv == 1 {
			// the worker solved the inverse cube: reverse and complement
			for i, j := 0, len(man)-1; i < j; i, j = i+1, j-1 {
				man[i], man[j] = man[j], man[i]
			}
			for i, m := range man {
				man[i] = m.Inverse()
			}
		}
		// express each move in the unrotated frame
		for i, m := range man {
			man[i] = Move(w.tb.Sy.ConjMove[NMove*16*w.rot+int(m)])
		}
		w.st.shortest = len(man)
		w.st.solutions = append(w.st.solutions, man)
	}
	if w.st.shortest <= w.retLength {
		w.st.terminate()
	}
}

func (w *solveWorker) shortestLength() int {
	w.st.mu.Lock()
	defer w.st.mu.Unlock()
	return w.st.shortest
}

func (w *solveWorker) hasSolution() bool {
	w.st.mu.Lock()
	defer w.st.mu.Unlock()
	return len(w.st.solutions) > 0
}
