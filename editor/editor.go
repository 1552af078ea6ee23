package editor

import (
	"github.com/SachinthaLakshan/evite-new-edition/position"
	"github.com/SachinthaLakshan/evite-new-edition/render"
)

// Target receives position edits. The invitation controller implements it.
type Target interface {
	Position(slot position.Slot) position.Position
	SetPosition(slot position.Slot, p position.Position)
	ResetPositions()
}

// Editor turns pointer and keyboard input into position edits on a Target.
// It is not safe for concurrent use; callers serialize input per editor.
type Editor struct {
	target Target
	bounds Rect
	guest  string
	state  State
	active position.Slot
}

func New(target Target) *Editor {
	return &Editor{target: target}
}

// SetBounds records the container's current bounding box.
func (e *Editor) SetBounds(r Rect) {
	e.bounds = r
}

func (e *Editor) Bounds() Rect {
	return e.bounds
}

// SetGuestName sets the guest shown in the editor, normalized the way the
// renderer and overlay normalize it. Clearing it while the guest badge is
// being dragged ends the drag.
func (e *Editor) SetGuestName(name string) {
	e.guest = render.Plain(name)
	if e.guest == "" && e.active == position.SlotGuestName {
		e.release()
	}
}

func (e *Editor) GuestName() string {
	return e.guest
}

func (e *Editor) State() State {
	return e.state
}

// Active returns the slot being dragged.
func (e *Editor) Active() (position.Slot, bool) {
	return e.active, e.state == Dragging
}

// Available reports whether slot has a badge. The guest slot only has one
// while a guest name is set.
func (e *Editor) Available(slot position.Slot) bool {
	if _, err := position.ParseSlot(string(slot)); err != nil {
		return false
	}
	return slot != position.SlotGuestName || e.guest != ""
}

// Pointer advances the drag state machine. It reports whether a position
// was emitted.
func (e *Editor) Pointer(p Pointer) bool {
	switch p.Phase {
	case PhaseDown:
		if !e.Available(p.Slot) {
			return false
		}
		e.state = Dragging
		e.active = p.Slot
	case PhaseMove:
		if e.state != Dragging || e.bounds.Empty() {
			return false
		}
		e.target.SetPosition(e.active, e.bounds.Normalize(p.X, p.Y))
		return true
	case PhaseUp, PhaseLeave, PhaseCancel:
		e.release()
	}
	return false
}

// Key nudges slot by one step, or five with modifier held. Keys other than
// the arrows are ignored. It reports whether a position was emitted.
func (e *Editor) Key(slot position.Slot, key Key, modifier bool) bool {
	dx, dy, ok := key.delta()
	if !ok || !e.Available(slot) {
		return false
	}
	step := position.Step(modifier)
	cur := e.target.Position(slot)
	e.target.SetPosition(slot, position.ApplyDelta(cur, dx*step, dy*step))
	return true
}

// Reset restores the template's default positions in one update.
func (e *Editor) Reset() {
	e.target.ResetPositions()
}

func (e *Editor) release() {
	e.state = Idle
	e.active = ""
}
