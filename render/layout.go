package render

// flow stacks regions top to bottom inside a column, the way block elements
// with vertical spacing lay out.
type flow struct {
	s      *Surface
	y      float64
	left   float64
	right  float64
	anchor Anchor
	gap    float64
	// started is false until the first region is placed, so the gap only
	// separates regions.
	started bool
}

func newFlow(s *Surface, padding, gap float64, anchor Anchor) *flow {
	return &flow{
		s:      s,
		y:      padding,
		left:   padding,
		right:  s.Width - padding,
		anchor: anchor,
		gap:    gap,
	}
}

func (f *flow) x() float64 {
	switch f.anchor {
	case AnchorMiddle:
		return (f.left + f.right) / 2
	case AnchorEnd:
		return f.right
	}
	return f.left
}

func (f *flow) width() float64 {
	return f.right - f.left
}

// region opens a new block, adding the inter-region gap when needed.
func (f *flow) region() {
	if f.started {
		f.y += f.gap
	}
	f.started = true
}

// lines appends content wrapped to the column width. Blank content takes no
// space.
func (f *flow) lines(role Role, content string, st Style) {
	for _, line := range Wrap(content, st, f.width()) {
		f.s.Texts = append(f.s.Texts, Text{
			Role:    role,
			X:       f.x(),
			Y:       f.y + st.Size,
			Anchor:  f.anchor,
			Content: line,
			Style:   st,
		})
		f.y += st.Size * 1.3
	}
}

// block is lines preceded by a region gap; blank content is skipped whole.
func (f *flow) block(role Role, content string, st Style) {
	if len(Wrap(content, st, f.width())) == 0 {
		return
	}
	f.region()
	f.lines(role, content, st)
}

func (f *flow) space(h float64) {
	f.y += h
}

// bar draws a horizontal rule of width w centered on the column anchor.
func (f *flow) bar(role Role, w, h float64, color string) {
	x := f.x()
	switch f.anchor {
	case AnchorMiddle:
		x -= w / 2
	case AnchorEnd:
		x -= w
	}
	f.s.Shapes = append(f.s.Shapes, Shape{
		Kind:    ShapeRect,
		Role:    role,
		X:       x,
		Y:       f.y,
		W:       w,
		H:       h,
		R:       h / 2,
		Fill:    color,
		Opacity: 1,
	})
	f.y += h
}

// separator draws a "line symbol line" row. When lineW is zero the lines
// stretch to the column edges.
func (f *flow) separator(symbol string, st Style, lineW, gap float64, lineColor string) {
	mid := f.y + st.Size*0.65
	cx := f.x()
	half := TextWidth(symbol, st) / 2
	if f.anchor == AnchorStart {
		cx = (f.left + f.right) / 2
	}
	l1, l2 := cx-half-gap-lineW, cx-half-gap
	r1, r2 := cx+half+gap, cx+half+gap+lineW
	if lineW == 0 {
		l1, r2 = f.left, f.right
	}
	f.s.Shapes = append(f.s.Shapes,
		Shape{Kind: ShapeLine, Role: RoleSeparator, X: l1, Y: mid, X2: l2, Y2: mid, Stroke: lineColor, StrokeWidth: 1, Opacity: 1},
		Shape{Kind: ShapeLine, Role: RoleSeparator, X: r1, Y: mid, X2: r2, Y2: mid, Stroke: lineColor, StrokeWidth: 1, Opacity: 1},
	)
	f.s.Texts = append(f.s.Texts, Text{
		Role:    RoleSeparator,
		X:       cx,
		Y:       f.y + st.Size,
		Anchor:  AnchorMiddle,
		Content: symbol,
		Style:   st,
	})
	f.y += st.Size * 1.3
}

// finish sizes the surface to fit the flowed content, never below minHeight.
func (f *flow) finish(padding, minHeight float64) {
	h := f.y + padding
	if h < minHeight {
		h = minHeight
	}
	f.s.Height = h
}
