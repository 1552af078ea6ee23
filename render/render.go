package render

import (
	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/metrics"
)

// Card dimensions in pixels. Cards grow taller when their content needs it.
const (
	CardWidth  = 600
	CardHeight = 840
)

// card is the sanitized input shared by all variants.
type card struct {
	style   catalog.Styling
	person1 string
	person2 string
	message string
	extra   string
	guest   string
	region  catalog.GuestNamePosition
	date    string
	venue   string
}

func newCard(def catalog.Definition, cfg invitation.Config, guestName string, facts EventFacts) card {
	region := cfg.GuestNamePosition
	if !region.Valid() {
		region = def.DefaultGuestNamePosition
	}
	return card{
		style:   ResolveStyling(cfg.Styling, def.DefaultStyling),
		person1: Plain(cfg.CoupleNames.Person1),
		person2: Plain(cfg.CoupleNames.Person2),
		message: Plain(cfg.CustomText.MainMessage),
		extra:   Plain(cfg.CustomText.AdditionalInfo),
		guest:   Plain(guestName),
		region:  region,
		date:    FormatLongDate(Plain(facts.Date)),
		venue:   Plain(facts.Location),
	}
}

// salutation places the guest line when region is the configured one.
func (c card) salutation(f *flow, region catalog.GuestNamePosition, st Style, transform func(string) string) {
	if c.guest == "" || c.region != region {
		return
	}
	line := "Dear " + c.guest + ","
	if transform != nil {
		line = transform(line)
	}
	f.block(RoleGuest, line, st)
}

// Render draws cfg as the card of its template. Unknown template ids are
// drawn with the classic variant. A blank guestName omits the salutation.
func Render(cat *catalog.Catalog, cfg invitation.Config, guestName string, facts EventFacts, mode Mode) *Surface {
	if cat == nil {
		cat = catalog.Default()
	}
	if mode != Interactive {
		mode = Static
	}
	def := cat.Resolve(cfg.TemplateID)
	c := newCard(def, cfg, guestName, facts)

	s := &Surface{
		Width:      CardWidth,
		Height:     CardHeight,
		Template:   cfg.TemplateID,
		Mode:       mode,
		Inert:      mode == Interactive,
		FontFamily: c.style.FontFamily,
	}

	switch cfg.TemplateID {
	case catalog.Classic:
		classic(s, c)
	case catalog.Modern:
		modern(s, c)
	case catalog.Floral:
		floral(s, c)
	case catalog.Minimal:
		minimal(s, c)
	default:
		metrics.TemplateFallbacks.WithLabelValues(string(mode)).Inc()
		s.Template = catalog.Classic
		classic(s, c)
	}

	metrics.Renders.WithLabelValues(string(s.Template), string(mode)).Inc()
	return s
}

// background prepends shapes so they paint below everything already placed.
func background(s *Surface, shapes ...Shape) {
	s.Shapes = append(shapes, s.Shapes...)
}

func text(size float64, weight int, color string) Style {
	return Style{Size: size, Weight: weight, Color: color, Opacity: 1}
}

func (st Style) italic() Style {
	st.Italic = true
	return st
}

func (st Style) faded(o float64) Style {
	st.Opacity = o
	return st
}

func (st Style) tracked(t float64) Style {
	st.Tracking = t
	return st
}
