package catalog

import (
	"errors"

	"github.com/SachinthaLakshan/evite-new-edition/position"
)

// TemplateID identifies an invitation template.
type TemplateID string

const (
	Classic TemplateID = "classic"
	Modern  TemplateID = "modern"
	Floral  TemplateID = "floral"
	Minimal TemplateID = "minimal"
)

// GuestNamePosition selects the structural region of a template that hosts
// the guest salutation. It is independent of the guest_name slot coordinate.
type GuestNamePosition string

const (
	GuestTop    GuestNamePosition = "top"
	GuestHeader GuestNamePosition = "header"
	GuestCenter GuestNamePosition = "center"
	GuestBottom GuestNamePosition = "bottom"
)

// Valid reports whether p is one of the known regions.
func (p GuestNamePosition) Valid() bool {
	switch p {
	case GuestTop, GuestHeader, GuestCenter, GuestBottom:
		return true
	}
	return false
}

// Styling is the font and color bundle of an invitation.
type Styling struct {
	FontFamily     string `json:"font_family" yaml:"font_family"`
	PrimaryColor   string `json:"primary_color" yaml:"primary_color"`
	SecondaryColor string `json:"secondary_color" yaml:"secondary_color"`
	TextColor      string `json:"text_color" yaml:"text_color"`
}

// Definition is an immutable catalog entry.
type Definition struct {
	ID                       TemplateID        `json:"id" yaml:"id"`
	Name                     string            `json:"name" yaml:"name"`
	Description              string            `json:"description" yaml:"description"`
	DefaultStyling           Styling           `json:"default_styling" yaml:"default_styling"`
	DefaultGuestNamePosition GuestNamePosition `json:"default_guest_name_position" yaml:"default_guest_name_position"`
	DefaultTextPositions     position.Set      `json:"default_text_positions" yaml:"default_text_positions"`
}

// ErrUnknownTemplate is returned by Get. Callers outside this package are
// expected to use Resolve instead of surfacing it.
var ErrUnknownTemplate = errors.New("unknown template")

// GuestNamePositionOption is a labelled choice for selection UIs.
type GuestNamePositionOption struct {
	Value GuestNamePosition `json:"value"`
	Label string            `json:"label"`
}

// GuestNamePositions lists the guest salutation regions with display labels.
func GuestNamePositions() []GuestNamePositionOption {
	return []GuestNamePositionOption{
		{Value: GuestTop, Label: "Top of Card"},
		{Value: GuestHeader, Label: "Header Section"},
		{Value: GuestCenter, Label: "Center"},
		{Value: GuestBottom, Label: "Bottom of Card"},
	}
}

var fonts = []string{
	"Playfair Display",
	"Great Vibes",
	"Cormorant Garamond",
	"Cinzel",
	"Dancing Script",
	"Montserrat",
	"Lora",
	"Raleway",
}

// Fonts returns the supported font families.
func Fonts() []string {
	out := make([]string, len(fonts))
	copy(out, fonts)
	return out
}
