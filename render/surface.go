package render

import (
	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/position"
)

// Mode selects whether a surface is shown inside the editor.
type Mode string

const (
	Static      Mode = "static"
	Interactive Mode = "interactive"
)

// EventFacts are the event details printed on a card.
type EventFacts struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// Role names the purpose of a text or shape. It is written out as
// data-role so clients and tests can address individual elements.
type Role string

const (
	RoleGuest          Role = "guest"
	RoleMainMessage    Role = "main_message"
	RolePerson1        Role = "person1"
	RoleSeparator      Role = "separator"
	RolePerson2        Role = "person2"
	RoleDate           Role = "date"
	RoleDateLabel      Role = "date_label"
	RoleVenue          Role = "venue"
	RoleVenueLabel     Role = "venue_label"
	RoleAdditionalInfo Role = "additional_info"
	RoleTitle          Role = "title"
	RolePill           Role = "pill"
	RoleFooter         Role = "footer"
	RoleAction         Role = "action"
	RoleBackground     Role = "background"
	RoleBorder         Role = "border"
	RoleDivider        Role = "divider"
	RoleDecoration     Role = "decoration"
)

// Anchor is the horizontal alignment of a text run around its X.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Style is the typographic style of one text run.
type Style struct {
	Size     float64
	Weight   int
	Italic   bool
	Color    string
	Opacity  float64
	Tracking float64
}

// Text is a single line of text with its baseline at Y.
type Text struct {
	Role    Role
	X, Y    float64
	Anchor  Anchor
	Content string
	Style   Style
}

type ShapeKind string

const (
	ShapeRect    ShapeKind = "rect"
	ShapeLine    ShapeKind = "line"
	ShapeCircle  ShapeKind = "circle"
	ShapePolygon ShapeKind = "polygon"
)

type Point struct {
	X, Y float64
}

// Shape is a filled or stroked primitive. Rects use X, Y, W, H and R as the
// corner radius; circles use X, Y as the center and R; lines run from X, Y
// to X2, Y2.
type Shape struct {
	Kind        ShapeKind
	Role        Role
	X, Y        float64
	W, H        float64
	X2, Y2      float64
	R           float64
	Points      []Point
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

// Badge is an editor handle for one slot, centered on a normalized position.
type Badge struct {
	Slot    position.Slot
	Label   string
	Content string
	At      position.Position
}

// Surface is the visual tree of one rendered card. Coordinates are pixels
// in a Width x Height box with the origin at the top left.
type Surface struct {
	Width      float64
	Height     float64
	Template   catalog.TemplateID
	Mode       Mode
	Inert      bool
	FontFamily string
	Shapes     []Shape
	Texts      []Text
	Badges     []Badge
}

// TextsByRole returns the text runs carrying role, in paint order.
func (s *Surface) TextsByRole(role Role) []Text {
	var out []Text
	for _, t := range s.Texts {
		if t.Role == role {
			out = append(out, t)
		}
	}
	return out
}

// Pixel converts a normalized position to surface pixels.
func (s *Surface) Pixel(p position.Position) (float64, float64) {
	p = p.Clamped()
	return p.X / 100 * s.Width, p.Y / 100 * s.Height
}
