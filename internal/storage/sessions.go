package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed-width so timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Session represents one interactive run in the database.
type Session struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	AnimSpeed  float64
	AppVersion *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(startedAt time.Time, animSpeed float64, appVersion string) (string, error) {
	id := uuid.New().String()

	var appVersionPtr *string
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, anim_speed, app_version)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.UTC().Format(timeLayout), animSpeed, appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished. The start time is read and the end
// written in one transaction.
func (r *SessionRepository) End(sessionID string, endedAt time.Time) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		var startedAtStr string
		err := tx.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
		if err != nil {
			return fmt.Errorf("failed to get session start time: %w", err)
		}

		startedAt, err := time.Parse(timeLayout, startedAtStr)
		if err != nil {
			return fmt.Errorf("failed to parse start time: %w", err)
		}

		durationMs := endedAt.Sub(startedAt).Milliseconds()

		_, err = tx.Exec(`
			UPDATE sessions
			SET ended_at = ?, duration_ms = ?
			WHERE session_id = ?
		`, endedAt.UTC().Format(timeLayout), durationMs, sessionID)

		if err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}

		return nil
	})
}

const sessionColumns = `session_id, started_at, ended_at, duration_ms, anim_speed, app_version`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	if err := row.Scan(&s.SessionID, &startedAtStr, &endedAtStr, &s.DurationMs, &s.AnimSpeed, &s.AppVersion); err != nil {
		return nil, err
	}

	var err error
	s.StartedAt, err = time.Parse(timeLayout, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session time: %w", err)
	}
	if endedAtStr.Valid {
		t, err := time.Parse(timeLayout, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session time: %w", err)
		}
		s.EndedAt = &t
	}
	return &s, nil
}

// Get retrieves a session by ID. It returns nil when no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`, sessionID)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	row := r.db.QueryRow(`SELECT ` + sessionColumns + ` FROM sessions ORDER BY started_at DESC LIMIT 1`)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Count returns the number of sessions.
func (r *SessionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// Delete deletes a session and its turns (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
