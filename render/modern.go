package render

import "github.com/SachinthaLakshan/evite-new-edition/catalog"

const labelColor = "#6B7280"

func modern(s *Surface, c card) {
	const padding, gap = 64.0, 40.0
	st := c.style
	f := newFlow(s, padding, gap, AnchorStart)

	guest := text(20, 300, st.TextColor)
	c.salutation(f, catalog.GuestTop, guest, nil)
	c.salutation(f, catalog.GuestHeader, guest, nil)

	f.block(RoleMainMessage, c.message, text(18, 300, st.TextColor).tracked(0.5))

	name := text(56, 200, st.PrimaryColor).tracked(2)
	f.region()
	f.lines(RolePerson1, Upper(c.person1), name)
	f.space(8)
	f.separator("&", text(30, 300, st.TextColor), 0, 16, st.SecondaryColor)
	f.space(8)
	f.lines(RolePerson2, Upper(c.person2), name)

	c.salutation(f, catalog.GuestCenter, guest, nil)

	// Details sit in an indented column behind a primary-colored rule.
	f.region()
	top := f.y
	left := f.left
	f.left += 32
	label := text(12, 400, labelColor).tracked(3)
	value := text(20, 300, st.TextColor)
	f.lines(RoleDateLabel, Upper("Date"), label)
	f.space(4)
	f.lines(RoleDate, c.date, value)
	f.space(16)
	f.lines(RoleVenueLabel, Upper("Venue"), label)
	f.space(4)
	f.lines(RoleVenue, c.venue, value)
	f.left = left
	s.Shapes = append(s.Shapes, Shape{
		Kind: ShapeLine, Role: RoleBorder,
		X: left + 1, Y: top, X2: left + 1, Y2: f.y,
		Stroke: st.PrimaryColor, StrokeWidth: 2, Opacity: 1,
	})

	f.block(RoleAdditionalInfo, c.extra, text(16, 300, st.TextColor).italic())

	c.salutation(f, catalog.GuestBottom, guest, nil)
	f.finish(padding, CardHeight)

	background(s,
		Shape{Kind: ShapeRect, Role: RoleBackground, W: s.Width, H: s.Height, R: 16, Fill: "#FFFFFF", Opacity: 1},
		Shape{
			Kind: ShapePolygon, Role: RoleDecoration,
			Points:  []Point{{s.Width - 256, 0}, {s.Width, 0}, {s.Width, 256}},
			Fill:    st.PrimaryColor,
			Opacity: 0.1,
		},
		Shape{
			Kind: ShapePolygon, Role: RoleDecoration,
			Points:  []Point{{s.Width - 128, 0}, {s.Width, 0}, {s.Width, 128}},
			Fill:    st.SecondaryColor,
			Opacity: 0.1,
		},
	)
}
