package render

import "github.com/SachinthaLakshan/evite-new-edition/catalog"

func classic(s *Surface, c card) {
	const padding, gap = 56.0, 32.0
	st := c.style
	f := newFlow(s, padding, gap, AnchorMiddle)

	guest := text(18, 500, st.TextColor)
	c.salutation(f, catalog.GuestTop, guest, nil)
	c.salutation(f, catalog.GuestHeader, guest, nil)

	f.region()
	f.bar(RoleDivider, 96, 4, st.SecondaryColor)

	f.block(RoleMainMessage, c.message, text(18, 400, st.TextColor))

	name := text(48, 700, st.PrimaryColor)
	f.region()
	f.lines(RolePerson1, c.person1, name)
	f.space(16)
	f.separator("&", text(24, 400, st.TextColor), 48, 16, st.SecondaryColor)
	f.space(16)
	f.lines(RolePerson2, c.person2, name)

	c.salutation(f, catalog.GuestCenter, guest, nil)

	f.block(RoleDate, c.date, text(20, 500, st.TextColor))
	if c.date != "" {
		f.space(12)
		f.lines(RoleVenue, c.venue, text(18, 400, st.TextColor))
	} else {
		f.block(RoleVenue, c.venue, text(18, 400, st.TextColor))
	}

	f.block(RoleAdditionalInfo, c.extra, text(16, 400, st.TextColor).italic())

	f.region()
	f.bar(RoleDivider, 96, 4, st.SecondaryColor)

	c.salutation(f, catalog.GuestBottom, guest, nil)
	f.finish(padding, CardHeight)

	background(s,
		Shape{Kind: ShapeRect, Role: RoleBackground, W: s.Width, H: s.Height, R: 8, Fill: "#FFFFFF", Opacity: 1},
		Shape{Kind: ShapeRect, Role: RoleBorder, X: 4, Y: 4, W: s.Width - 8, H: s.Height - 8, R: 8, Stroke: st.PrimaryColor, StrokeWidth: 8, Opacity: 1},
	)
}
