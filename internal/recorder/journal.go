package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubeviz"
	"github.com/SeamusWaldron/cubeviz/internal/log"
	"github.com/SeamusWaldron/cubeviz/internal/storage"
)

// JournalState represents the current state of a journal.
type JournalState int

const (
	StateIdle JournalState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the journal state.
func (s JournalState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Journal writes every committed turn of one session to storage.
type Journal struct {
	stateFile *StateFile
	logger    log.Logger

	mu        sync.Mutex
	state     JournalState
	sessionID string
	startTime time.Time
	seq       int

	sessionRepo *storage.SessionRepository
	turnRepo    *storage.TurnRepository
}

// NewJournal creates a journal backed by db. stateFile may be nil.
func NewJournal(db *storage.DB, stateFile *StateFile, logger log.Logger) *Journal {
	if logger == nil {
		logger = log.Discard()
	}
	return &Journal{
		stateFile:   stateFile,
		logger:      logger,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		turnRepo:    storage.NewTurnRepository(db),
	}
}

// State returns the current journal state.
func (j *Journal) State() JournalState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// SessionID returns the current session ID.
func (j *Journal) SessionID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sessionID
}

// TurnCount returns the number of turns written so far.
func (j *Journal) TurnCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.seq
}

// Start opens a new session.
func (j *Journal) Start(now time.Time, animSpeed float64, appVersion string) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state == StateRecording {
		return "", fmt.Errorf("session already in progress")
	}

	id, err := j.sessionRepo.Create(now, animSpeed, appVersion)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	j.sessionID = id
	j.startTime = now
	j.seq = 0
	j.state = StateRecording

	if j.stateFile != nil {
		if err := j.stateFile.SetLastSession(id); err != nil {
			j.logger.Warnf("failed to update state file: %v", err)
		}
	}

	j.logger.WithField("session", id).Infof("session started")
	return id, nil
}

// Record writes a committed turn. Turns arriving outside a session are
// dropped.
func (j *Journal) Record(c cubeviz.Commit) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state != StateRecording {
		return nil
	}

	tsMs := c.Move.Time.Sub(j.startTime).Milliseconds()
	if _, err := j.turnRepo.Create(j.sessionID, j.seq, tsMs, c.Move, c.Undo); err != nil {
		return fmt.Errorf("failed to record turn %d: %w", j.seq, err)
	}
	j.seq++

	j.logger.WithFields(map[string]interface{}{
		"session": j.sessionID,
		"seq":     j.seq,
		"move":    c.Move.Notation(),
		"undo":    c.Undo,
	}).Debugf("turn recorded")
	return nil
}

// End closes the session.
func (j *Journal) End(now time.Time) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	if err := j.sessionRepo.End(j.sessionID, now); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	j.state = StateEnded

	j.logger.WithFields(map[string]interface{}{
		"session": j.sessionID,
		"turns":   j.seq,
	}).Infof("session ended")
	return nil
}
