package position

// Set maps slots to positions. A slot missing from the map means "use the
// template default".
type Set map[Slot]Position

// Clone returns an independent copy of s. A nil set clones to nil.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Clamped returns a copy of s with every entry clamped.
func (s Set) Clamped() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v.Clamped()
	}
	return out
}

// Lookup returns the position for slot, falling back to defaults.
func (s Set) Lookup(slot Slot, defaults Set) Position {
	if p, ok := s[slot]; ok {
		return p.Clamped()
	}
	if p, ok := defaults[slot]; ok {
		return p.Clamped()
	}
	return Clamp(50, 50)
}

// Resolve returns a complete set: every known slot is present, taken from s
// when set there and from defaults otherwise.
func (s Set) Resolve(defaults Set) Set {
	out := make(Set, len(slots))
	for _, slot := range slots {
		out[slot] = s.Lookup(slot, defaults)
	}
	return out
}
