package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type fontStyle int

const (
	regular fontStyle = iota
	bold
	italic
	boldItalic
)

var (
	fontsOnce sync.Once
	fontsErr  error
	fontSet   [4]*truetype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		for i, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			f, err := truetype.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("parse font %d: %w", i, err)
				return
			}
			fontSet[i] = f
		}
	})
	return fontsErr
}

func styleOf(st Style) fontStyle {
	b := st.Weight >= 600
	switch {
	case b && st.Italic:
		return boldItalic
	case b:
		return bold
	case st.Italic:
		return italic
	}
	return regular
}

type faceKey struct {
	style fontStyle
	size  float64
}

// faces caches font faces by style and size. Faces are not safe for
// concurrent use; each raster pass owns its own cache.
type faces map[faceKey]font.Face

func (fc faces) get(st Style) (font.Face, *truetype.Font) {
	k := faceKey{style: styleOf(st), size: st.Size}
	f := fontSet[k.style]
	if face, ok := fc[k]; ok {
		return face, f
	}
	face := truetype.NewFace(f, &truetype.Options{Size: st.Size, Hinting: font.HintingNone})
	fc[k] = face
	return face, f
}

// WritePNG rasterizes s and encodes it as PNG. Text is drawn with the Go
// font family; the surface font family only applies to SVG output.
func WritePNG(w io.Writer, s *Surface) error {
	if err := loadFonts(); err != nil {
		return err
	}
	dc := gg.NewContext(px(s.Width), px(s.Height))
	fc := faces{}

	for _, sh := range s.Shapes {
		rasterShape(dc, sh)
	}
	for _, t := range s.Texts {
		rasterText(dc, fc, t)
	}
	for _, b := range s.Badges {
		rasterBadge(dc, fc, s, b)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func rasterShape(dc *gg.Context, sh Shape) {
	switch sh.Kind {
	case ShapeRect:
		if sh.R > 0 {
			dc.DrawRoundedRectangle(sh.X, sh.Y, sh.W, sh.H, sh.R)
		} else {
			dc.DrawRectangle(sh.X, sh.Y, sh.W, sh.H)
		}
	case ShapeLine:
		dc.DrawLine(sh.X, sh.Y, sh.X2, sh.Y2)
	case ShapeCircle:
		dc.DrawCircle(sh.X, sh.Y, sh.R)
	case ShapePolygon:
		for i, p := range sh.Points {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
				continue
			}
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	default:
		return
	}

	if sh.Fill != "" {
		dc.SetColor(parseHex(sh.Fill, sh.Opacity))
		if sh.Stroke != "" {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if sh.Stroke != "" {
		dc.SetColor(parseHex(sh.Stroke, sh.Opacity))
		dc.SetLineWidth(sh.StrokeWidth)
		dc.Stroke()
	}
	dc.ClearPath()
}

func rasterText(dc *gg.Context, fc faces, t Text) {
	face, f := fc.get(t.Style)
	content := drawable(f, t.Content)
	if content == "" {
		return
	}
	dc.SetFontFace(face)
	dc.SetColor(parseHex(t.Style.Color, t.Style.Opacity))
	ax := 0.0
	switch t.Anchor {
	case AnchorMiddle:
		ax = 0.5
	case AnchorEnd:
		ax = 1
	}
	dc.DrawStringAnchored(content, t.X, t.Y, ax, 0)
}

func rasterBadge(dc *gg.Context, fc faces, s *Surface, b Badge) {
	x, y := s.Pixel(b.At)
	dc.DrawRoundedRectangle(x-70, y-22, 140, 44, 22)
	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 217})
	dc.FillPreserve()
	dc.SetColor(parseHex("#E5E7EB", 1))
	dc.SetLineWidth(1)
	dc.Stroke()
	rasterText(dc, fc, Text{X: x, Y: y - 5, Anchor: AnchorMiddle, Content: Upper(b.Label), Style: text(10, 400, "#6B7280")})
	rasterText(dc, fc, Text{X: x, Y: y + 13, Anchor: AnchorMiddle, Content: badgeText(b), Style: text(14, 500, "#1F2937")})
}

// drawable drops runes the font has no glyph for.
func drawable(f *truetype.Font, s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == ' ' || f.Index(r) != 0 {
			return r
		}
		return -1
	}, s))
}

// parseHex converts #rgb, #rrggbb or #rrggbbaa to a color, scaling alpha by
// opacity. Anything else is black.
func parseHex(s string, opacity float64) color.NRGBA {
	c := color.NRGBA{A: 255}
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) == 8 {
		if v, err := strconv.ParseUint(h, 16, 32); err == nil {
			c = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
		}
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity < 1 {
		c.A = uint8(float64(c.A)*opacity + 0.5)
	}
	return c
}
