package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one recorded scramble/solve interaction.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	CubeSize     int
	ScrambleText *string
	SolutionText *string
	Solved       bool
	Steps        int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create records the start of a session and returns its ID.
func (r *SessionRepository) Create(cubeSize int, scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, cube_size, scramble_text)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), cubeSize, scramblePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete with its outcome.
func (r *SessionRepository) End(sessionID, solution string, solved bool, steps int) error {
	endedAt := time.Now().UTC()

	var solutionPtr *string
	if solution != "" {
		solutionPtr = &solution
	}

	_, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, solution_text = ?, solved = ?, steps = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), solutionPtr, boolToInt(solved), steps, sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, cube_size,
		       scramble_text, solution_text, solved, steps
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
		var s Session
		var startedAt string
		var endedAt *string
		var solved int

		if err := rows.Scan(&s.SessionID, &startedAt, &endedAt, &s.CubeSize,
			&s.ScrambleText, &s.SolutionText, &solved, &s.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start time: %w", err)
		}
		if endedAt != nil {
			t, err := time.Parse(time.RFC3339, *endedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to parse end time: %w", err)
			}
			s.EndedAt = &t
		}
		s.Solved = solved != 0

		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
