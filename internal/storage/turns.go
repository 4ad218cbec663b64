package storage

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubeviz"
)

// TurnRecord represents a committed turn in the database.
type TurnRecord struct {
	TurnID    int64
	SessionID string
	Seq       int
	TsMs      int64 // offset from session start
	Face      string
	Turn      int
	Notation  string
	Undo      bool
}

// TurnRepository provides CRUD operations for turns.
type TurnRepository struct {
	db *DB
}

// NewTurnRepository creates a new turn repository.
func NewTurnRepository(db *DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Create stores a committed turn and returns its ID.
func (r *TurnRepository) Create(sessionID string, seq int, tsMs int64, move cubeviz.Move, undo bool) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO turns (session_id, seq, ts_ms, face, turn, notation, is_undo)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, seq, tsMs, string(move.Face), int(move.Turn), move.Notation(), undo)

	if err != nil {
		return 0, fmt.Errorf("failed to create turn: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get turn ID: %w", err)
	}

	return id, nil
}

// GetBySession retrieves all turns for a session in order.
func (r *TurnRepository) GetBySession(sessionID string) ([]TurnRecord, error) {
	rows, err := r.db.Query(`
		SELECT turn_id, session_id, seq, ts_ms, face, turn, notation, is_undo
		FROM turns
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}
	defer rows.Close()

	var turns []TurnRecord
	for rows.Next() {
		var t TurnRecord
		err := rows.Scan(&t.TurnID, &t.SessionID, &t.Seq, &t.TsMs, &t.Face, &t.Turn, &t.Notation, &t.Undo)
		if err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}

	return turns, rows.Err()
}

// Count returns the number of turns for a session.
func (r *TurnRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM turns WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count turns: %w", err)
	}
	return count, nil
}

// ToMoves converts TurnRecords to moves stamped relative to start.
func ToMoves(records []TurnRecord, start time.Time) []cubeviz.Move {
	moves := make([]cubeviz.Move, len(records))
	for i, r := range records {
		moves[i] = cubeviz.Move{
			Face: cubeviz.Face(r.Face),
			Turn: cubeviz.Turn(r.Turn),
			Time: start.Add(time.Duration(r.TsMs) * time.Millisecond),
		}
	}
	return moves
}
