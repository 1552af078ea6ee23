package position

import (
	"fmt"
	"math"
)

const (
	Min = 0.0
	Max = 100.0

	// DefaultStep and ModifiedStep are the keyboard nudge sizes.
	DefaultStep  = 1.0
	ModifiedStep = 5.0
)

// Position is a point expressed as percentages of the card's bounding box,
// anchored at the element's own center.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Slot names one of the positionable text elements of a card.
type Slot string

const (
	SlotCoupleNames Slot = "couple_names"
	SlotVenue       Slot = "venue"
	SlotDate        Slot = "date"
	SlotGuestName   Slot = "guest_name"
)

var slots = []Slot{SlotCoupleNames, SlotVenue, SlotDate, SlotGuestName}

// Slots returns every slot in overlay order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// ParseSlot validates a slot name.
func ParseSlot(s string) (Slot, error) {
	for _, slot := range slots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown slot %q", s)
}

// Clamp restricts both coordinates to [Min, Max]. NaN becomes Min.
func Clamp(x, y float64) Position {
	return Position{X: clampAxis(x), Y: clampAxis(y)}
}

// Clamped returns p with both coordinates restricted to [Min, Max].
func (p Position) Clamped() Position {
	return Clamp(p.X, p.Y)
}

// ApplyDelta moves p by (dx, dy) and clamps the result.
func ApplyDelta(p Position, dx, dy float64) Position {
	return Clamp(p.X+dx, p.Y+dy)
}

// Step returns the nudge size for a key press.
func Step(modifier bool) float64 {
	if modifier {
		return ModifiedStep
	}
	return DefaultStep
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return Min
	}
	return math.Min(Max, math.Max(Min, v))
}
