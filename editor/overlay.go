package editor

import (
	"strings"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/position"
	"github.com/SachinthaLakshan/evite-new-edition/render"
)

var labels = map[position.Slot]string{
	position.SlotCoupleNames: "Names",
	position.SlotVenue:       "Venue",
	position.SlotDate:        "Date",
	position.SlotGuestName:   "Guest Name",
}

// Label is the display name of slot's badge.
func Label(slot position.Slot) string {
	return labels[slot]
}

// Overlay adds one badge per slot to s at the slot's resolved position. The
// guest badge is left out when guestName is blank.
func Overlay(s *render.Surface, cat *catalog.Catalog, cfg invitation.Config, guestName string, facts render.EventFacts) {
	if cat == nil {
		cat = catalog.Default()
	}
	guest := render.Plain(guestName)
	positions := invitation.ResolvedPositions(cat, cfg)

	for _, slot := range position.Slots() {
		var content string
		switch slot {
		case position.SlotCoupleNames:
			content = strings.TrimSpace(render.Plain(cfg.CoupleNames.Person1) + " & " + render.Plain(cfg.CoupleNames.Person2))
		case position.SlotVenue:
			content = render.Plain(facts.Location)
		case position.SlotDate:
			content = render.FormatLongDate(render.Plain(facts.Date))
		case position.SlotGuestName:
			if guest == "" {
				continue
			}
			content = guest
		}
		s.Badges = append(s.Badges, render.Badge{
			Slot:    slot,
			Label:   Label(slot),
			Content: content,
			At:      positions[slot],
		})
	}
}

// Compose renders cfg in interactive mode with the badge overlay on top.
func Compose(cat *catalog.Catalog, cfg invitation.Config, guestName string, facts render.EventFacts) *render.Surface {
	s := render.Render(cat, cfg, guestName, facts, render.Interactive)
	Overlay(s, cat, cfg, guestName, facts)
	return s
}
