package cube

import "sync"

// SolverTables bundles every table the search needs. All fields are
// immutable after construction and safe to share across workers without
// locking.
type SolverTables struct {
	Sy *SymTables
	Mv *MoveTables
	Pr *PruneTables

	// EdgeMerge[24*uEdges+dEdges%24] is the initial phase-2 ud_edges
	// coordinate at the end of phase 1.
	EdgeMerge []uint16
}

// LoadSolverTables builds or loads every table from dir, in dependency
// order: symmetries, moves, pruning, edge merge.
func LoadSolverTables(dir string) (*SolverTables, error) {
	sy, err := NewSymTables(dir)
	if err != nil {
		return nil, err
	}
	mv, err := NewMoveTables(dir)
	if err != nil {
		return nil, err
	}
	pr, err := NewPruneTables(dir, sy, mv)
	if err != nil {
		return nil, err
	}
	em, err := loadOrBuildTable(dir, "phase2_edgemerge", NUEdgesPhase2*NPerm4, buildEdgeMerge)
	if err != nil {
		return nil, err
	}
	return &SolverTables{Sy: sy, Mv: mv, Pr: pr, EdgeMerge: em}, nil
}

var (
	tablesMu   sync.Mutex
	tablesDir  = "tables"
	tablesOnce sync.Once
	tablesVal  *SolverTables
	tablesErr  error
)

// SetTablesDir changes the cache directory for the process-wide tables.
// It must be called before the first call to Tables.
func SetTablesDir(dir string) {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	tablesDir = dir
}

// Tables returns the process-wide solver tables, building or loading them
// on first use. A load failure is permanent for the process: the solver
// cannot run without its tables.
func Tables() (*SolverTables, error) {
	tablesOnce.Do(func() {
		tablesMu.Lock()
		dir := tablesDir
		tablesMu.Unlock()
		tablesVal, tablesErr = LoadSolverTables(dir)
	})
	return tablesVal, tablesErr
}
