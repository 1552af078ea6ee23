package render

import "github.com/SachinthaLakshan/evite-new-edition/catalog"

func minimal(s *Surface, c card) {
	const padding, gap = 80.0, 48.0
	st := c.style
	f := newFlow(s, padding, gap, AnchorMiddle)

	guest := text(14, 400, st.TextColor).tracked(3)
	c.salutation(f, catalog.GuestTop, guest, Upper)
	c.salutation(f, catalog.GuestHeader, guest, Upper)

	f.block(RoleMainMessage, Upper(c.message), text(14, 400, st.TextColor).tracked(3))

	name := text(36, 300, st.PrimaryColor).tracked(1)
	f.region()
	f.lines(RolePerson1, c.person1, name)
	f.space(24)
	f.bar(RoleSeparator, 32, 1, st.TextColor)
	f.space(24)
	f.lines(RolePerson2, c.person2, name)

	c.salutation(f, catalog.GuestCenter, guest, Upper)

	label := text(12, 400, st.TextColor).tracked(3).faded(0.6)
	value := text(18, 300, st.TextColor)
	f.region()
	f.lines(RoleDateLabel, Upper("Date"), label)
	f.space(8)
	f.lines(RoleDate, c.date, value)
	f.space(24)
	f.lines(RoleVenueLabel, Upper("Location"), label)
	f.space(8)
	f.lines(RoleVenue, c.venue, value)

	f.block(RoleAdditionalInfo, c.extra, text(14, 400, st.TextColor).faded(0.8))

	c.salutation(f, catalog.GuestBottom, guest, Upper)
	f.finish(padding, CardHeight)

	background(s,
		Shape{Kind: ShapeRect, Role: RoleBackground, W: s.Width, H: s.Height, R: 2, Fill: "#FFFFFF", Stroke: "#E5E7EB", StrokeWidth: 1, Opacity: 1},
	)
}
