package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/SachinthaLakshan/evite-new-edition/invitation"
)

// FileStore keeps every record in memory and rewrites a single JSON file on
// each change.
type FileStore struct {
	mu        sync.RWMutex
	filePath  string
	events    map[string]Event
	attendees map[string]Attendee
	now       func() time.Time
}

// OpenFile loads the store from filePath, or starts empty if the file does
// not exist. It returns an error only on unexpected I/O or decode failures.
func OpenFile(filePath string) (*FileStore, error) {
	s := &FileStore{
		filePath:  filePath,
		events:    map[string]Event{},
		attendees: map[string]Attendee{},
		now:       time.Now,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	for _, e := range snap.Events {
		s.events[e.ID] = e
	}
	for _, a := range snap.Attendees {
		s.attendees[a.ID] = a
	}
	return s, nil
}

func (s *FileStore) GetEvent(_ context.Context, id string) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return Event{}, fmt.Errorf("event %q: %w", id, ErrNotFound)
	}
	return cloneEvent(e), nil
}

func (s *FileStore) PutEvent(_ context.Context, e Event) (Event, error) {
	if e.ID == "" {
		return Event{}, errors.New("event id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.events[e.ID]
	e = cloneEvent(e)
	if e.Invitation == nil && existed {
		e.Invitation = prev.Invitation
	}
	e.UpdatedAt = s.now().UTC()
	s.events[e.ID] = e
	if err := s.writeAtomic(); err != nil {
		if existed {
			s.events[e.ID] = prev
		} else {
			delete(s.events, e.ID)
		}
		return Event{}, err
	}
	return cloneEvent(e), nil
}

func (s *FileStore) SaveInvitation(_ context.Context, eventID string, cfg invitation.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.events[eventID]
	if !ok {
		return fmt.Errorf("event %q: %w", eventID, ErrNotFound)
	}
	next := prev
	cfg = cfg.Clone()
	next.Invitation = &cfg
	next.UpdatedAt = s.now().UTC()
	s.events[eventID] = next
	if err := s.writeAtomic(); err != nil {
		s.events[eventID] = prev
		return err
	}
	return nil
}

func (s *FileStore) GetAttendee(_ context.Context, id string) (Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.attendees[id]
	if !ok {
		return Attendee{}, fmt.Errorf("attendee %q: %w", id, ErrNotFound)
	}
	return a, nil
}

func (s *FileStore) PutAttendee(_ context.Context, a Attendee) (Attendee, error) {
	if a.ID == "" {
		return Attendee{}, errors.New("attendee id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[a.EventID]; !ok {
		return Attendee{}, fmt.Errorf("event %q: %w", a.EventID, ErrNotFound)
	}
	prev, existed := s.attendees[a.ID]
	s.attendees[a.ID] = a
	if err := s.writeAtomic(); err != nil {
		if existed {
			s.attendees[a.ID] = prev
		} else {
			delete(s.attendees, a.ID)
		}
		return Attendee{}, err
	}
	return a, nil
}

func (s *FileStore) Close() error { return nil }

// snapshot returns the records in id order so the file is stable.
// Caller must hold s.mu.
func (s *FileStore) snapshot() Snapshot {
	snap := Snapshot{
		Events:    make([]Event, 0, len(s.events)),
		Attendees: make([]Attendee, 0, len(s.attendees)),
	}
	for _, id := range slices.Sorted(maps.Keys(s.events)) {
		snap.Events = append(snap.Events, s.events[id])
	}
	for _, id := range slices.Sorted(maps.Keys(s.attendees)) {
		snap.Attendees = append(snap.Attendees, s.attendees[id])
	}
	return snap
}

// writeAtomic writes to a temp file then renames it over filePath.
// Caller must hold s.mu.
func (s *FileStore) writeAtomic() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp := s.filePath + ".tmp"
	data, err := json.MarshalIndent(s.snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
