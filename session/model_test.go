package session

import (
	"context"
	"testing"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/editor"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/position"
	"github.com/SachinthaLakshan/evite-new-edition/render"
)

func newTestSession() *Session {
	return newSession("s1", "e1", catalog.Default(), nil, render.EventFacts{Location: "Rose Garden"}, nil)
}

func TestSetClientConnected(t *testing.T) {
	s := newTestSession()
	ch := make(chan invitation.Config, 1)
	kick := s.SetClient(ch)
	if !s.Connected() {
		t.Fatal("expected Connected to be true after SetClient")
	}
	if kick == nil {
		t.Fatal("expected non-nil kick channel")
	}
}

func TestSetClientKicksPrior(t *testing.T) {
	s := newTestSession()
	ch1 := make(chan invitation.Config, 1)
	kick1 := s.SetClient(ch1)

	ch2 := make(chan invitation.Config, 1)
	_ = s.SetClient(ch2)

	select {
	case <-kick1:
	default:
		t.Fatal("first client's kick channel was not closed on displacement")
	}
}

func TestClearClientOwnershipGuard(t *testing.T) {
	s := newTestSession()
	ch1 := make(chan invitation.Config, 1)
	s.SetClient(ch1)
	ch2 := make(chan invitation.Config, 1)
	s.SetClient(ch2)

	// The displaced client must not disconnect the new one.
	s.ClearClient(ch1)
	if !s.Connected() {
		t.Fatal("displaced client cleared the current one")
	}

	s.ClearClient(ch2)
	if s.Connected() {
		t.Fatal("expected Connected to be false after owner cleared")
	}
	if _, ok := <-ch2; ok {
		t.Fatal("expected ClearClient to close the channel")
	}
}

func TestClientReceivesLatestConfig(t *testing.T) {
	s := newTestSession()
	ch := make(chan invitation.Config, 1)
	s.SetClient(ch)

	s.Apply(invitation.SetCoupleName{Person: invitation.Person1, Name: "A"})
	s.Apply(invitation.SetCoupleName{Person: invitation.Person1, Name: "B"})
	s.Apply(invitation.SetCoupleName{Person: invitation.Person1, Name: "C"})

	got := <-ch
	if got.CoupleNames.Person1 != "C" {
		t.Fatalf("expected newest config, got %q", got.CoupleNames.Person1)
	}
}

func TestSessionEditorInput(t *testing.T) {
	s := newTestSession()
	s.SetBounds(editor.Rect{Width: 600, Height: 840})

	s.Pointer(editor.Pointer{Phase: editor.PhaseDown, Slot: position.SlotVenue})
	s.Pointer(editor.Pointer{Phase: editor.PhaseMove, X: 300, Y: 420})
	s.Pointer(editor.Pointer{Phase: editor.PhaseUp})
	if p := s.Config().TextPositions[position.SlotVenue]; p != (position.Position{X: 50, Y: 50}) {
		t.Fatalf("unexpected venue position %+v", p)
	}

	if s.Key(position.SlotGuestName, editor.KeyUp, false) {
		t.Fatal("guest slot moved without a guest name")
	}
	s.SetGuestName("Cleo")
	if !s.Key(position.SlotGuestName, editor.KeyUp, true) {
		t.Fatal("guest slot did not move with a guest name")
	}
	if p := s.Config().TextPositions[position.SlotGuestName]; p != (position.Position{X: 50, Y: 5}) {
		t.Fatalf("unexpected guest position %+v", p)
	}

	s.Reset()
	want := catalog.Default().Resolve(catalog.Classic).DefaultTextPositions
	if got := s.Config().TextPositions; len(got) != len(want) || got[position.SlotVenue] != want[position.SlotVenue] {
		t.Fatalf("reset did not restore defaults: %+v", got)
	}
}

func TestPreviewBadges(t *testing.T) {
	s := newTestSession()
	if n := len(s.Preview().Badges); n != 3 {
		t.Fatalf("expected 3 badges without guest, got %d", n)
	}
	s.SetGuestName("Cleo")
	p := s.Preview()
	if n := len(p.Badges); n != 4 {
		t.Fatalf("expected 4 badges with guest, got %d", n)
	}
	if !p.Inert {
		t.Fatal("preview card should be inert")
	}
	if info := s.Info(); info.GuestName != "Cleo" || info.EventID != "e1" {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestPreviewAsLeavesGuestUnchanged(t *testing.T) {
	s := newTestSession()
	s.SetGuestName("Cleo")

	p := s.PreviewAs("Dana")
	if n := len(p.Badges); n != 4 || p.Badges[3].Content != "Dana" {
		t.Fatalf("expected Dana's badge, got %+v", p.Badges)
	}
	if n := len(s.PreviewAs(" ").Badges); n != 3 {
		t.Fatalf("expected 3 badges for a blank guest, got %d", n)
	}
	if got := s.GuestName(); got != "Cleo" {
		t.Fatalf("expected guest Cleo, got %q", got)
	}
}

func TestPersisterKeepsNewest(t *testing.T) {
	var got []invitation.Config
	gate := make(chan struct{})
	p := newPersister("e1", func(_ context.Context, _ string, cfg invitation.Config) error {
		<-gate
		got = append(got, cfg)
		return nil
	}, nil)

	first := invitation.Bootstrap()
	p.Offer(first)
	for _, name := range []string{"a", "b", "c"} {
		cfg := invitation.Bootstrap()
		cfg.CoupleNames.Person1 = name
		p.Offer(cfg)
	}
	close(gate)
	p.Close()

	if len(got) < 1 || len(got) > 2 {
		t.Fatalf("expected one or two saves, got %d", len(got))
	}
	if got[len(got)-1].CoupleNames.Person1 != "c" {
		t.Fatalf("expected newest config last, got %+v", got[len(got)-1].CoupleNames)
	}
}
