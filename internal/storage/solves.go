package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Facelets   string
	Solution   string
	MoveCount  int
	DurationMs int64
}

// SolveRepository provides access to recorded solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its ID.
func (r *SolveRepository) Create(facelets, solution string, moveCount int, took time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()
	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, facelets, solution, move_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), facelets, solution, moveCount, took.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("failed to insert solve: %w", err)
	}
	return id, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, facelets, solution, move_count, duration_ms
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAt string
		if err := rows.Scan(&s.SolveID, &createdAt, &s.Facelets, &s.Solution, &s.MoveCount, &s.DurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			s.CreatedAt = t
		}
		solves = append(solves, s)
	}
	return solves, rows.Err()
}
