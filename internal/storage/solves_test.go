package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSolveRepository(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	repo := NewSolveRepository(db)
	id, err := repo.Create("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB",
		"R U R' U'", 4, 1500*time.Millisecond)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty id")
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("listed %d solves, want 1", len(solves))
	}
	s := solves[0]
	if s.SolveID != id || s.Solution != "R U R' U'" || s.MoveCount != 4 || s.DurationMs != 1500 {
		t.Errorf("unexpected solve row: %+v", s)
	}
}

func TestListEmpty(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	solves, err := NewSolveRepository(db).List(5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 0 {
		t.Errorf("listed %d solves, want 0", len(solves))
	}
}
