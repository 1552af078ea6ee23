package render

import (
	"math"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
)

func floral(s *Surface, c card) {
	const padding, gap = 64.0, 32.0
	st := c.style
	f := newFlow(s, padding, gap, AnchorMiddle)

	guest := text(20, 400, st.TextColor).italic()
	c.salutation(f, catalog.GuestTop, guest, nil)
	c.salutation(f, catalog.GuestHeader, guest, nil)

	f.region()
	vine(f, st)

	f.block(RoleMainMessage, c.message, text(18, 400, st.TextColor).italic())

	name := text(48, 400, st.PrimaryColor).italic()
	f.region()
	f.lines(RolePerson1, c.person1, name)
	f.space(24)
	f.separator("❀", text(30, 400, st.TextColor), 64, 24, st.SecondaryColor)
	f.space(24)
	f.lines(RolePerson2, c.person2, name)

	c.salutation(f, catalog.GuestCenter, guest, nil)

	f.region()
	vine(f, st)

	f.block(RoleDate, c.date, text(20, 500, st.TextColor))
	if c.date != "" {
		f.space(12)
		f.lines(RoleVenue, c.venue, text(18, 400, st.TextColor))
	} else {
		f.block(RoleVenue, c.venue, text(18, 400, st.TextColor))
	}

	f.block(RoleAdditionalInfo, c.extra, text(16, 400, st.TextColor).italic())

	c.salutation(f, catalog.GuestBottom, guest, nil)
	f.finish(padding, CardHeight)

	shapes := []Shape{{Kind: ShapeRect, Role: RoleBackground, W: s.Width, H: s.Height, R: 24, Fill: "#FDF2F8", Opacity: 1}}
	for _, corner := range []Point{{0, 0}, {s.Width, 0}, {0, s.Height}, {s.Width, s.Height}} {
		shapes = append(shapes, blossom(corner, 40, st.SecondaryColor, 0.2)...)
	}
	background(s, shapes...)
}

// vine is the floral divider: a thin rule with a small blossom at its center.
func vine(f *flow, st catalog.Styling) {
	cx, cy := f.x(), f.y+16
	f.s.Shapes = append(f.s.Shapes,
		Shape{Kind: ShapeLine, Role: RoleDivider, X: cx - 80, Y: cy, X2: cx - 14, Y2: cy, Stroke: st.SecondaryColor, StrokeWidth: 1, Opacity: 0.6},
		Shape{Kind: ShapeLine, Role: RoleDivider, X: cx + 14, Y: cy, X2: cx + 80, Y2: cy, Stroke: st.SecondaryColor, StrokeWidth: 1, Opacity: 0.6},
	)
	f.s.Shapes = append(f.s.Shapes, blossom(Point{cx, cy}, 8, st.PrimaryColor, 0.6)...)
	f.space(32)
}

// blossom is five petals around a center point.
func blossom(at Point, r float64, color string, opacity float64) []Shape {
	out := make([]Shape, 0, 6)
	for i := 0; i < 5; i++ {
		a := float64(i) * 2 * math.Pi / 5
		out = append(out, Shape{
			Kind: ShapeCircle, Role: RoleDecoration,
			X: at.X + r*math.Sin(a), Y: at.Y - r*math.Cos(a), R: r * 0.6,
			Fill: color, Opacity: opacity,
		})
	}
	return append(out, Shape{Kind: ShapeCircle, Role: RoleDecoration, X: at.X, Y: at.Y, R: r * 0.4, Fill: color, Opacity: opacity})
}
