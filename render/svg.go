package render

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"
)

const badgeContentMax = 22

// WriteSVG writes s as a standalone SVG document. The card is one group;
// in interactive mode it carries pointer-events="none" and the badges are
// drawn above it as focusable buttons.
func WriteSVG(w io.Writer, s *Surface) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width, height := px(s.Width), px(s.Height)
	canvas.Startview(width, height, 0, 0, width, height)

	card := []string{
		attr("class", "card"),
		attr("data-template", string(s.Template)),
		attr("data-mode", string(s.Mode)),
		attr("font-family", s.FontFamily),
	}
	if s.Inert {
		card = append(card, attr("pointer-events", "none"), attr("aria-hidden", "true"))
	}
	canvas.Group(card...)
	for _, sh := range s.Shapes {
		writeShape(canvas, sh)
	}
	for _, t := range s.Texts {
		writeText(canvas, t)
	}
	canvas.Gend()

	if len(s.Badges) > 0 {
		canvas.Group(attr("class", "badges"))
		for _, b := range s.Badges {
			writeBadge(canvas, s, b)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

func writeShape(canvas *svg.SVG, sh Shape) {
	a := []string{attr("data-role", string(sh.Role))}
	fill := sh.Fill
	if fill == "" {
		fill = "none"
	}
	a = append(a, attr("fill", fill))
	if sh.Stroke != "" {
		a = append(a, attr("stroke", sh.Stroke), attr("stroke-width", num(sh.StrokeWidth)))
	}
	if sh.Opacity != 1 {
		a = append(a, attr("opacity", num(sh.Opacity)))
	}

	switch sh.Kind {
	case ShapeRect:
		if r := px(sh.R); r > 0 {
			canvas.Roundrect(px(sh.X), px(sh.Y), px(sh.W), px(sh.H), r, r, a...)
			return
		}
		canvas.Rect(px(sh.X), px(sh.Y), px(sh.W), px(sh.H), a...)
	case ShapeLine:
		canvas.Line(px(sh.X), px(sh.Y), px(sh.X2), px(sh.Y2), a...)
	case ShapeCircle:
		canvas.Circle(px(sh.X), px(sh.Y), px(sh.R), a...)
	case ShapePolygon:
		xs := make([]int, len(sh.Points))
		ys := make([]int, len(sh.Points))
		for i, p := range sh.Points {
			xs[i], ys[i] = px(p.X), px(p.Y)
		}
		canvas.Polygon(xs, ys, a...)
	}
}

func writeText(canvas *svg.SVG, t Text) {
	a := []string{
		attr("data-role", string(t.Role)),
		attr("text-anchor", string(t.Anchor)),
		attr("font-size", num(t.Style.Size)),
		attr("fill", t.Style.Color),
	}
	if t.Style.Weight != 0 && t.Style.Weight != 400 {
		a = append(a, attr("font-weight", strconv.Itoa(t.Style.Weight)))
	}
	if t.Style.Italic {
		a = append(a, attr("font-style", "italic"))
	}
	if t.Style.Tracking != 0 {
		a = append(a, attr("letter-spacing", num(t.Style.Tracking)))
	}
	if t.Style.Opacity != 1 {
		a = append(a, attr("opacity", num(t.Style.Opacity)))
	}
	canvas.Text(px(t.X), px(t.Y), t.Content, a...)
}

func writeBadge(canvas *svg.SVG, s *Surface, b Badge) {
	x, y := s.Pixel(b.At)
	canvas.Group(
		attr("class", "badge"),
		attr("data-slot", string(b.Slot)),
		attr("role", "button"),
		attr("tabindex", "0"),
		attr("aria-label", "Move "+b.Label),
		attr("transform", fmt.Sprintf("translate(%d,%d)", px(x), px(y))),
	)
	canvas.Roundrect(-70, -22, 140, 44, 22, 22,
		attr("fill", "#FFFFFF"), attr("fill-opacity", "0.85"),
		attr("stroke", "#E5E7EB"), attr("stroke-width", "1"))
	canvas.Text(0, -5, Upper(b.Label),
		attr("data-role", "badge_label"), attr("text-anchor", "middle"),
		attr("font-size", "10"), attr("fill", "#6B7280"))
	canvas.Text(0, 13, badgeText(b),
		attr("data-role", "badge_content"), attr("text-anchor", "middle"),
		attr("font-size", "14"), attr("font-weight", "500"), attr("fill", "#1F2937"))
	canvas.Gend()
}

// badgeText is the badge content truncated for display, or the label when
// the content is blank.
func badgeText(b Badge) string {
	c := b.Content
	if c == "" {
		return b.Label
	}
	if utf8.RuneCountInString(c) <= badgeContentMax {
		return c
	}
	r := []rune(c)
	return string(r[:badgeContentMax-1]) + "…"
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func px(v float64) int {
	return int(math.Round(v))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
