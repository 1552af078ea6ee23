package session

import (
	"sync"
	"time"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/editor"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/position"
	"github.com/SachinthaLakshan/evite-new-edition/render"
)

// Session is one editing session of an event's invitation. It owns the
// event's controller exclusively until it is closed.
type Session struct {
	ID        string
	EventID   string
	CreatedAt time.Time

	cat   *catalog.Catalog
	ctrl  *invitation.Controller
	facts render.EventFacts

	// mu serializes editor input; the editor is not safe for concurrent use.
	mu         sync.Mutex
	editor     *editor.Editor
	lastActive time.Time

	outMu     sync.Mutex
	outChan   chan invitation.Config
	kickChan  chan struct{}
	connected bool

	persist   *persister
	done      chan struct{}
	closeOnce sync.Once
}

// Info is the JSON view of a session.
type Info struct {
	ID         string             `json:"id"`
	EventID    string             `json:"event_id"`
	TemplateID catalog.TemplateID `json:"template_id"`
	GuestName  string             `json:"guest_name,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	LastActive time.Time          `json:"last_active"`
	Connected  bool               `json:"connected"`
}

func newSession(id, eventID string, cat *catalog.Catalog, initial *invitation.Config, facts render.EventFacts, persist *persister) *Session {
	now := time.Now()
	s := &Session{
		ID:         id,
		EventID:    eventID,
		CreatedAt:  now,
		lastActive: now,
		cat:        cat,
		facts:      facts,
		persist:    persist,
		done:       make(chan struct{}),
	}
	s.ctrl = invitation.NewController(cat, initial, s.changed)
	s.editor = editor.New(s.ctrl)
	return s
}

// changed runs under the controller lock after every update.
func (s *Session) changed(cfg invitation.Config) {
	if s.persist != nil {
		s.persist.Offer(cfg)
	}
	s.outMu.Lock()
	defer s.outMu.Unlock()
	if s.outChan != nil {
		offerLatest(s.outChan, cfg)
	}
}

// offerLatest sends cfg without blocking. A full channel has its stale
// value replaced so the client always ends on the newest config.
func offerLatest(ch chan invitation.Config, cfg invitation.Config) {
	select {
	case ch <- cfg:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- cfg:
	default:
	}
}

func (s *Session) Info() Info {
	s.mu.Lock()
	guest, last := s.editor.GuestName(), s.lastActive
	s.mu.Unlock()
	s.outMu.Lock()
	connected := s.connected
	s.outMu.Unlock()
	return Info{
		ID:         s.ID,
		EventID:    s.EventID,
		TemplateID: s.ctrl.Config().TemplateID,
		GuestName:  guest,
		CreatedAt:  s.CreatedAt,
		LastActive: last,
		Connected:  connected,
	}
}

// Config returns the current invitation configuration.
func (s *Session) Config() invitation.Config {
	return s.ctrl.Config()
}

// Facts returns the event details shown on the card.
func (s *Session) Facts() render.EventFacts {
	return s.facts
}

// Apply runs a configuration update.
func (s *Session) Apply(u invitation.Update) invitation.Config {
	s.touch()
	return s.ctrl.Apply(u)
}

func (s *Session) Pointer(p editor.Pointer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return s.editor.Pointer(p)
}

func (s *Session) Key(slot position.Slot, key editor.Key, modifier bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return s.editor.Key(slot, key, modifier)
}

// Reset restores the active template's default positions.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.editor.Reset()
}

func (s *Session) SetBounds(r editor.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.SetBounds(r)
}

// SetGuestName sets the preview guest. A blank name hides the guest slot.
func (s *Session) SetGuestName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.editor.SetGuestName(name)
}

func (s *Session) GuestName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.GuestName()
}

// Preview renders the editor surface: the inert card plus slot badges.
func (s *Session) Preview() *render.Surface {
	return s.PreviewAs(s.GuestName())
}

// PreviewAs renders the editor surface for guest without changing the
// session's own guest name.
func (s *Session) PreviewAs(guest string) *render.Surface {
	return editor.Compose(s.cat, s.ctrl.Config(), guest, s.facts)
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// SetClient registers a channel to receive configuration changes. If a
// previous client is connected it is kicked: its kick channel is closed so
// the transport can drop that connection. The returned kick channel is
// closed if this client is itself later displaced.
func (s *Session) SetClient(ch chan invitation.Config) <-chan struct{} {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	if s.kickChan != nil {
		close(s.kickChan)
	}
	kick := make(chan struct{})
	s.kickChan = kick
	s.outChan = ch
	s.connected = true
	return kick
}

// ClearClient is called when a connection ends. It only updates session
// state if ch is still the current owner, so a displaced connection cannot
// clear a newer one. It always closes ch so the pump goroutine exits.
func (s *Session) ClearClient(ch chan invitation.Config) {
	s.outMu.Lock()
	if s.outChan == ch {
		s.outChan = nil
		s.connected = false
		s.kickChan = nil
	}
	s.outMu.Unlock()
	close(ch)
}

// Connected reports whether a client is attached.
func (s *Session) Connected() bool {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	return s.connected
}

// Done returns a channel that is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// close ends the session and flushes any pending save.
func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.persist != nil {
			s.persist.Close()
		}
	})
}
