// Package socialcard draws the link-preview image shared with guests.
package socialcard

import (
	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/render"
)

const (
	Width  = 1200
	Height = 630
)

// Placeholders used when event or guest data is missing.
const (
	DefaultTitle    = "You are invited"
	DefaultDate     = "Date coming soon"
	DefaultLocation = "Location to be announced"
	DefaultGuest    = "Guest"
)

const footer = "We can’t wait to celebrate with you."

// FallbackStyling applies when the event has no saved invitation.
var FallbackStyling = catalog.Styling{
	FontFamily:     "Playfair Display",
	PrimaryColor:   "#4F46E5",
	SecondaryColor: "#EC4899",
	TextColor:      "#0F172A",
}

// GuestFacts identifies the guest a card is addressed to.
type GuestFacts struct {
	Name string `json:"name"`
}

// panel geometry
const (
	panelX       = 100
	panelY       = 55
	panelW       = 1000
	panelH       = 520
	panelPad     = 48
	contentL     = panelX + panelPad
	contentR     = panelX + panelW - panelPad
	contentT     = panelY + panelPad
	contentB     = panelY + panelH - panelPad
	titleLines   = 2
	middleTop    = contentT + 44 + 12
	middleBottom = contentB - 44
)

// RenderStatic lays out the social card. Any argument may be nil; missing
// facts are replaced by placeholders.
func RenderStatic(event *render.EventFacts, guest *GuestFacts, cfg *invitation.Config) *render.Surface {
	title, date, location, name := DefaultTitle, DefaultDate, DefaultLocation, DefaultGuest
	if event != nil {
		if v := render.Plain(event.Title); v != "" {
			title = v
		}
		if v := render.FormatLongDate(render.Plain(event.Date)); v != "" {
			date = v
		}
		if v := render.Plain(event.Location); v != "" {
			location = v
		}
	}
	if guest != nil {
		if v := render.Plain(guest.Name); v != "" {
			name = v
		}
	}
	st := FallbackStyling
	if cfg != nil {
		st = render.ResolveStyling(cfg.Styling, FallbackStyling)
	}

	s := &render.Surface{
		Width:      Width,
		Height:     Height,
		Mode:       render.Static,
		FontFamily: st.FontFamily,
	}
	s.Shapes = append(s.Shapes,
		render.Shape{Kind: render.ShapeRect, Role: render.RoleBackground, W: Width, H: Height, Fill: "#F7F7FF", Opacity: 1},
		render.Shape{Kind: render.ShapeCircle, Role: render.RoleDecoration, X: 240, Y: 126, R: 260, Fill: st.PrimaryColor, Opacity: 0.13},
		render.Shape{Kind: render.ShapeCircle, Role: render.RoleDecoration, X: 960, Y: 189, R: 220, Fill: st.SecondaryColor, Opacity: 0.13},
		render.Shape{Kind: render.ShapeRect, Role: render.RoleBackground, X: panelX, Y: panelY, W: panelW, H: panelH, R: 28, Fill: "#FFFFFF", Opacity: 0.9},
	)

	header(s, st, name)
	middle(s, st, title, date, location)
	footerRow(s, st)
	return s
}

func style(size float64, weight int, color string) render.Style {
	return render.Style{Size: size, Weight: weight, Color: color, Opacity: 1}
}

func header(s *render.Surface, st catalog.Styling, guest string) {
	pill := style(20, 600, st.PrimaryColor)
	pill.Tracking = 1.6
	label := render.Upper("Invitation")
	w := render.TextWidth(label, pill) + 32
	guestSt := style(20, 500, "#475569")
	room := float64(contentR) - (contentL + w + 24)

	s.Shapes = append(s.Shapes, render.Shape{
		Kind: render.ShapeRect, Role: render.RolePill,
		X: contentL, Y: contentT, W: w, H: 44, R: 22,
		Fill: st.PrimaryColor, Opacity: 0.13,
	})
	s.Texts = append(s.Texts,
		render.Text{Role: render.RolePill, X: contentL + 16, Y: contentT + 29, Anchor: render.AnchorStart, Content: label, Style: pill},
		render.Text{Role: render.RoleGuest, X: contentR, Y: contentT + 29, Anchor: render.AnchorEnd, Content: render.Truncate("For "+guest, guestSt, room), Style: guestSt},
	)
}

// middle centers the title block vertically between the header and footer.
func middle(s *render.Surface, st catalog.Styling, title, date, location string) {
	titleSt := style(60, 700, st.PrimaryColor)
	dateSt := style(28, 500, st.TextColor)
	locSt := style(24, 400, "#334155")
	width := float64(contentR - contentL)

	lines := render.Wrap(title, titleSt, width)
	if len(lines) > titleLines {
		lines = lines[:titleLines]
		lines[titleLines-1] = render.Truncate(lines[titleLines-1]+"…", titleSt, width)
	}
	date = render.Truncate(date, dateSt, width)
	location = render.Truncate(location, locSt, width)
	h := float64(len(lines))*titleSt.Size*1.1 + 20 + dateSt.Size*1.3 + 10 + locSt.Size*1.3
	y := middleTop + (middleBottom-middleTop-h)/2
	cx := float64(Width) / 2

	for _, line := range lines {
		s.Texts = append(s.Texts, render.Text{Role: render.RoleTitle, X: cx, Y: y + titleSt.Size*0.9, Anchor: render.AnchorMiddle, Content: line, Style: titleSt})
		y += titleSt.Size * 1.1
	}
	y += 20
	s.Texts = append(s.Texts, render.Text{Role: render.RoleDate, X: cx, Y: y + dateSt.Size, Anchor: render.AnchorMiddle, Content: date, Style: dateSt})
	y += dateSt.Size*1.3 + 10
	s.Texts = append(s.Texts, render.Text{Role: render.RoleVenue, X: cx, Y: y + locSt.Size, Anchor: render.AnchorMiddle, Content: location, Style: locSt})
}

func footerRow(s *render.Surface, st catalog.Styling) {
	action := style(24, 700, "#FFFFFF")
	w := render.TextWidth("RSVP", action) + 36
	right := float64(contentR - 8)

	s.Shapes = append(s.Shapes, render.Shape{
		Kind: render.ShapeRect, Role: render.RoleAction,
		X: right - w, Y: contentB - 44, W: w, H: 44, R: 12,
		Fill: st.SecondaryColor, Opacity: 1,
	})
	s.Texts = append(s.Texts,
		render.Text{Role: render.RoleFooter, X: contentL + 8, Y: contentB - 14, Anchor: render.AnchorStart, Content: footer, Style: style(24, 400, "#475569")},
		render.Text{Role: render.RoleAction, X: right - w/2, Y: contentB - 14, Anchor: render.AnchorMiddle, Content: "RSVP", Style: action},
	)
}
