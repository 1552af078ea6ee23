package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id                TEXT PRIMARY KEY,
	title             TEXT NOT NULL DEFAULT '',
	date              TEXT NOT NULL DEFAULT '',
	location          TEXT NOT NULL DEFAULT '',
	invitation_config TEXT,
	updated_at        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS attendees (
	id       TEXT PRIMARY KEY,
	event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	name     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS attendees_event_id ON attendees(event_id);
`

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens the database at path and creates the schema if needed.
// The special path ":memory:" opens a private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := "file::memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db, now: time.Now}, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) GetEvent(ctx context.Context, id string) (Event, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, date, location, invitation_config, updated_at FROM events WHERE id = ?`, id)

	var e Event
	var cfg sql.NullString
	var updated int64
	if err := row.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &cfg, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, fmt.Errorf("event %q: %w", id, ErrNotFound)
		}
		return Event{}, fmt.Errorf("get event: %w", err)
	}
	e.UpdatedAt = time.UnixMilli(updated).UTC()
	if cfg.Valid && cfg.String != "" {
		var c invitation.Config
		if err := json.Unmarshal([]byte(cfg.String), &c); err != nil {
			return Event{}, fmt.Errorf("decode invitation of %q: %w", id, err)
		}
		e.Invitation = &c
	}
	return e, nil
}

func (s *SQLite) PutEvent(ctx context.Context, e Event) (Event, error) {
	if e.ID == "" {
		return Event{}, errors.New("event id is required")
	}
	e = cloneEvent(e)
	e.UpdatedAt = time.UnixMilli(s.now().UnixMilli()).UTC()

	var cfg sql.NullString
	if e.Invitation != nil {
		data, err := json.Marshal(e.Invitation)
		if err != nil {
			return Event{}, fmt.Errorf("encode invitation: %w", err)
		}
		cfg = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, title, date, location, invitation_config, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    title = excluded.title,
		    date = excluded.date,
		    location = excluded.location,
		    invitation_config = COALESCE(excluded.invitation_config, events.invitation_config),
		    updated_at = excluded.updated_at`,
		e.ID, e.Title, e.Date, e.Location, cfg, e.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return Event{}, fmt.Errorf("put event: %w", err)
	}
	return s.GetEvent(ctx, e.ID)
}

func (s *SQLite) SaveInvitation(ctx context.Context, eventID string, cfg invitation.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode invitation: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET invitation_config = ?, updated_at = ? WHERE id = ?`,
		string(data), s.now().UnixMilli(), eventID,
	)
	if err != nil {
		return fmt.Errorf("save invitation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save invitation: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("event %q: %w", eventID, ErrNotFound)
	}
	return nil
}

func (s *SQLite) GetAttendee(ctx context.Context, id string) (Attendee, error) {
	var a Attendee
	err := s.db.QueryRowContext(ctx,
		`SELECT id, event_id, name FROM attendees WHERE id = ?`, id,
	).Scan(&a.ID, &a.EventID, &a.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attendee{}, fmt.Errorf("attendee %q: %w", id, ErrNotFound)
		}
		return Attendee{}, fmt.Errorf("get attendee: %w", err)
	}
	return a, nil
}

func (s *SQLite) PutAttendee(ctx context.Context, a Attendee) (Attendee, error) {
	if a.ID == "" {
		return Attendee{}, errors.New("attendee id is required")
	}
	if _, err := s.GetEvent(ctx, a.EventID); err != nil {
		return Attendee{}, err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attendees (id, event_id, name) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET event_id = excluded.event_id, name = excluded.name`,
		a.ID, a.EventID, a.Name,
	)
	if err != nil {
		return Attendee{}, fmt.Errorf("put attendee: %w", err)
	}
	return a, nil
}
