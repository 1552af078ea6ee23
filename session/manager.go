package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/metrics"
	"github.com/SachinthaLakshan/evite-new-edition/render"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

var ErrNotFound = errors.New("session not found")
var ErrEventBusy = errors.New("event already has an editing session")

// Store is the part of the persistence layer sessions need.
type Store interface {
	GetEvent(ctx context.Context, id string) (store.Event, error)
	SaveInvitation(ctx context.Context, eventID string, cfg invitation.Config) error
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	byEvent  map[string]string

	cat   *catalog.Catalog
	store Store
	log   *zap.Logger
}

func NewManager(cat *catalog.Catalog, st Store, log *zap.Logger) *Manager {
	if cat == nil {
		cat = catalog.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		byEvent:  make(map[string]string),
		cat:      cat,
		store:    st,
		log:      log,
	}
}

// Create opens an editing session for eventID, starting from the event's
// saved invitation or the bootstrap default. An event has at most one
// session at a time.
func (m *Manager) Create(ctx context.Context, eventID string) (*Session, error) {
	ev, err := m.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.byEvent[eventID]; busy {
		return nil, ErrEventBusy
	}

	facts := render.EventFacts{Title: ev.Title, Date: ev.Date, Location: ev.Location}
	id := uuid.New().String()
	log := m.log.With(zap.String("session_id", id), zap.String("event_id", eventID))
	s := newSession(id, eventID, m.cat, ev.Invitation, facts, newPersister(eventID, m.store.SaveInvitation, log))

	m.sessions[s.ID] = s
	m.byEvent[eventID] = s.ID
	metrics.EditorSessionsActive.Inc()
	log.Info("editing session opened", zap.Bool("saved_config", ev.Invitation != nil))
	return s, nil
}

// List returns the open sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// ForEvent returns the open session of eventID.
func (m *Manager) ForEvent(eventID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEvent[eventID]
	if !ok {
		return nil, false
	}
	return m.sessions[id], true
}

// Close ends a session. Its last configuration is saved before Close
// returns.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.sessions, id)
	delete(m.byEvent, s.EventID)
	m.mu.Unlock()

	s.close()
	metrics.EditorSessionsActive.Dec()
	m.log.Info("editing session closed", zap.String("session_id", id), zap.String("event_id", s.EventID))
	return nil
}

// Shutdown closes every session.
func (m *Manager) Shutdown() {
	for _, s := range m.List() {
		_ = m.Close(s.ID)
	}
}
