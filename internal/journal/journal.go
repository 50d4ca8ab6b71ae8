// Package journal keeps an append-only sqlite log of what happened during
// explorations. It is an audit trail for review; sessions are never resumed
// from it.
package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"detectivequest/internal/debug"
	"detectivequest/internal/explorer"
)

const DefaultPath = "./journal.db"

type Entry struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Command   string    `json:"command"`
	Room      string    `json:"room"`
	Detail    string    `json:"detail"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata struct {
	ClueAdded bool `json:"clue_added,omitempty"`
	ClueCount int  `json:"clue_count,omitempty"`
	Terminal  bool `json:"terminal,omitempty"`
	Done      bool `json:"done,omitempty"`
}

type Journal struct {
	db *sql.DB
}

func Open(path string) (*Journal, error) {
	if path == "" {
		path = DefaultPath
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return j, nil
}

func (j *Journal) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		map_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL REFERENCES sessions(id),
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		kind TEXT NOT NULL,
		command TEXT NOT NULL,
		room TEXT NOT NULL,
		detail TEXT NOT NULL,
		metadata TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
	`

	_, err := j.db.Exec(schema)
	return err
}

// StartSession registers a new exploration and returns its ID.
func (j *Journal) StartSession(mapName string) (string, error) {
	id := uuid.NewString()
	if _, err := j.db.Exec(`INSERT INTO sessions (id, map_name) VALUES (?, ?)`, id, mapName); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	return id, nil
}

func (j *Journal) LogEvent(sessionID string, ev explorer.Event) error {
	var detail string
	switch ev.Kind {
	case explorer.EventEntered:
		detail = ev.Room.Clue
	case explorer.EventRejected:
		detail = ev.Reason
	}

	metadata := EventMetadata{
		ClueAdded: ev.ClueAdded,
		ClueCount: ev.Report.Count,
		Terminal:  ev.Room.Terminal(),
		Done:      ev.Done,
	}
	metadataJson, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = j.db.Exec(`
		INSERT INTO events (session_id, kind, command, room, detail, metadata)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, ev.Kind.String(), ev.Command.String(), ev.Room.Name, detail, string(metadataJson))

	return err
}

// Recent returns the latest events across sessions, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT id, session_id, timestamp, kind, command, room, detail, metadata
		FROM events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(&e.ID, &e.SessionID, &e.Timestamp, &e.Kind, &e.Command,
			&e.Room, &e.Detail, &e.Metadata)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Recorder returns an observer that writes every session event to the
// journal. Write failures are logged and otherwise ignored.
func (j *Journal) Recorder(sessionID string, logger *debug.Logger) explorer.Observer {
	return explorer.ObserverFunc(func(ev explorer.Event) {
		if err := j.LogEvent(sessionID, ev); err != nil {
			logger.Printf("Failed to journal %s event: %v", ev.Kind, err)
		}
	})
}

func (j *Journal) Close() error {
	return j.db.Close()
}
