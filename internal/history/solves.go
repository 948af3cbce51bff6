package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cubesolve/cubesolve"
	"github.com/cubesolve/cubesolve/internal/notation"
	"github.com/cubesolve/cubesolve/internal/search"
)

// Solve is one row of solve history: the scramble, the solution the search
// found for it, and the stats the search reported along the way.
type Solve struct {
	ID            string
	SolvedAt      time.Time
	Algorithm     string
	ScrambleMoves []cube.MoveID
	SolutionMoves []cube.MoveID
	MoveCount     int
	ExpandedNodes int
	Iterations    int
	ElapsedMs     int64
}

// Repository provides CRUD access to the solves table.
type Repository struct {
	db *DB
}

// NewRepository creates a repository backed by db.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Record inserts a new solve row and returns its generated ID.
func (r *Repository) Record(algorithm search.Algorithm, scrambleMoves, solutionMoves []cube.MoveID, stats search.Stats) (string, error) {
	id := uuid.New().String()
	solvedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, solved_at, algorithm, scramble_text, solution_text, move_count, expanded_nodes, iterations, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, solvedAt.Format(time.RFC3339), algorithm.String(),
		notation.FormatSequence(scrambleMoves), notation.FormatSequence(solutionMoves),
		len(solutionMoves), stats.ExpandedNodes, stats.Iterations, stats.ElapsedMs)
	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}
	return id, nil
}

// Get retrieves a solve by ID. It returns nil, nil if no such solve exists.
func (r *Repository) Get(id string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, solved_at, algorithm, scramble_text, solution_text, move_count, expanded_nodes, iterations, elapsed_ms
		FROM solves
		WHERE solve_id = ?
	`, id)
	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// List retrieves the most recent solves, newest first, up to limit rows.
func (r *Repository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, solved_at, algorithm, scramble_text, solution_text, move_count, expanded_nodes, iterations, elapsed_ms
		FROM solves
		ORDER BY solved_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Delete removes a solve by ID.
func (r *Repository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (*Solve, error) {
	var s Solve
	var solvedAtStr, scrambleText, solutionText string

	if err := row.Scan(&s.ID, &solvedAtStr, &s.Algorithm, &scrambleText, &solutionText,
		&s.MoveCount, &s.ExpandedNodes, &s.Iterations, &s.ElapsedMs); err != nil {
		return nil, err
	}

	parsedAt, err := time.Parse(time.RFC3339, solvedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solved_at: %w", err)
	}
	s.SolvedAt = parsedAt

	scrambleMoves, err := notation.ParseSequence(scrambleText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored scramble %q: %w", scrambleText, err)
	}
	s.ScrambleMoves = scrambleMoves

	solutionMoves, err := notation.ParseSequence(solutionText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored solution %q: %w", solutionText, err)
	}
	s.SolutionMoves = solutionMoves

	return &s, nil
}
