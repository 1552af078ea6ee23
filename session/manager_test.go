package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/editor"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/position"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

type fakeStore struct {
	mu     sync.Mutex
	events map[string]store.Event
	saved  []invitation.Config
	gate   chan struct{}
	err    error
}

func newFakeStore() *fakeStore {
	modern := invitation.Bootstrap()
	modern.TemplateID = catalog.Modern
	return &fakeStore{events: map[string]store.Event{
		"e1": {ID: "e1", Title: "Ann & Ben", Date: "2024-06-15", Location: "Rose Garden"},
		"e2": {ID: "e2", Title: "Party", Invitation: &modern},
	}}
}

func (f *fakeStore) GetEvent(_ context.Context, id string) (store.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return store.Event{}, store.ErrNotFound
	}
	return e, nil
}

func (f *fakeStore) SaveInvitation(_ context.Context, _ string, cfg invitation.Config) error {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, cfg)
	return f.err
}

func (f *fakeStore) savedConfigs() []invitation.Config {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]invitation.Config, len(f.saved))
	copy(out, f.saved)
	return out
}

func newTestManager(t *testing.T, st *fakeStore) *Manager {
	t.Helper()
	m := NewManager(catalog.Default(), st, zaptest.NewLogger(t))
	t.Cleanup(m.Shutdown)
	return m
}

func TestCreateAndGet(t *testing.T) {
	m := newTestManager(t, newFakeStore())
	s, err := m.Create(context.Background(), "e1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.EventID != "e1" {
		t.Fatalf("expected event 'e1', got %q", s.EventID)
	}
	got, ok := m.Get(s.ID)
	if !ok || got != s {
		t.Fatal("Get did not return the created session")
	}
	if byEvent, ok := m.ForEvent("e1"); !ok || byEvent != s {
		t.Fatal("ForEvent did not return the created session")
	}
	if s.Config().TemplateID != catalog.Classic {
		t.Fatalf("expected bootstrap config, got %q", s.Config().TemplateID)
	}
	if s.Facts().Location != "Rose Garden" {
		t.Fatalf("unexpected facts: %+v", s.Facts())
	}
}

func TestCreateUsesSavedInvitation(t *testing.T) {
	m := newTestManager(t, newFakeStore())
	s, err := m.Create(context.Background(), "e2")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	cfg := s.Config()
	if cfg.TemplateID != catalog.Modern {
		t.Fatalf("expected saved template, got %q", cfg.TemplateID)
	}
}

func TestCreateUnknownEvent(t *testing.T) {
	m := newTestManager(t, newFakeStore())
	if _, err := m.Create(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound, got %v", err)
	}
}

func TestCreateEventBusy(t *testing.T) {
	m := newTestManager(t, newFakeStore())
	s, err := m.Create(context.Background(), "e1")
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := m.Create(context.Background(), "e1"); err != ErrEventBusy {
		t.Fatalf("expected ErrEventBusy, got %v", err)
	}
	if err := m.Close(s.ID); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := m.Create(context.Background(), "e1"); err != nil {
		t.Fatalf("Create after Close failed: %v", err)
	}
}

func TestList(t *testing.T) {
	m := newTestManager(t, newFakeStore())
	a, _ := m.Create(context.Background(), "e1")
	b, _ := m.Create(context.Background(), "e2")
	list := m.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(list))
	}
	seen := map[string]bool{list[0].ID: true, list[1].ID: true}
	if !seen[a.ID] || !seen[b.ID] {
		t.Fatalf("unexpected sessions: %v", seen)
	}
}

func TestClose(t *testing.T) {
	m := newTestManager(t, newFakeStore())
	s, _ := m.Create(context.Background(), "e1")
	if err := m.Close(s.ID); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, ok := m.Get(s.ID); ok {
		t.Fatal("session still exists after Close")
	}
	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed after Close")
	}
	if err := m.Close(s.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCloseFlushesLatestConfig(t *testing.T) {
	st := newFakeStore()
	m := newTestManager(t, st)
	s, _ := m.Create(context.Background(), "e1")

	s.Apply(invitation.SetCoupleName{Person: invitation.Person1, Name: "Ann"})
	s.Apply(invitation.SetTemplate{TemplateID: catalog.Floral})
	m.Close(s.ID)

	saved := st.savedConfigs()
	if len(saved) == 0 {
		t.Fatal("nothing saved")
	}
	last := saved[len(saved)-1]
	if last.TemplateID != catalog.Floral || last.CoupleNames.Person1 != "Ann" {
		t.Fatalf("last save is not the latest config: %+v", last)
	}
}

func TestPersisterCoalesces(t *testing.T) {
	st := newFakeStore()
	st.gate = make(chan struct{})
	m := newTestManager(t, st)
	s, _ := m.Create(context.Background(), "e1")
	s.SetBounds(editor.Rect{Width: 100, Height: 100})

	// The first save blocks on the gate while the drag continues.
	s.Pointer(editor.Pointer{Phase: editor.PhaseDown, Slot: position.SlotVenue})
	for i := 1; i <= 50; i++ {
		s.Pointer(editor.Pointer{Phase: editor.PhaseMove, X: float64(i), Y: float64(i)})
	}
	s.Pointer(editor.Pointer{Phase: editor.PhaseUp})
	close(st.gate)
	m.Close(s.ID)

	saved := st.savedConfigs()
	if len(saved) == 0 || len(saved) >= 50 {
		t.Fatalf("expected coalesced saves, got %d", len(saved))
	}
	if p := saved[len(saved)-1].TextPositions[position.SlotVenue]; p != (position.Position{X: 50, Y: 50}) {
		t.Fatalf("last save has venue at %+v", p)
	}
}

func TestSaveErrorDoesNotStopSession(t *testing.T) {
	st := newFakeStore()
	st.err = errors.New("disk full")
	m := newTestManager(t, st)
	s, _ := m.Create(context.Background(), "e1")

	s.Apply(invitation.SetCoupleName{Person: invitation.Person2, Name: "Ben"})
	s.Apply(invitation.SetCoupleName{Person: invitation.Person2, Name: "Benji"})

	if got := s.Config().CoupleNames.Person2; got != "Benji" {
		t.Fatalf("expected update applied, got %q", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(st.savedConfigs()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if len(st.savedConfigs()) == 0 {
		t.Fatal("save was never attempted")
	}
}

func TestShutdown(t *testing.T) {
	m := NewManager(catalog.Default(), newFakeStore(), zaptest.NewLogger(t))
	m.Create(context.Background(), "e1")
	m.Create(context.Background(), "e2")
	m.Shutdown()
	if n := len(m.List()); n != 0 {
		t.Fatalf("expected no sessions after Shutdown, got %d", n)
	}
}
