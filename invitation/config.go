package invitation

import (
	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/position"
)

// CoupleNames is the ordered pair of names shown on the card.
type CoupleNames struct {
	Person1 string `json:"person1"`
	Person2 string `json:"person2"`
}

// CustomText holds the free-text lines of the card.
type CustomText struct {
	MainMessage    string `json:"main_message"`
	AdditionalInfo string `json:"additional_info"`
}

// Config is the full, persisted description of an invitation card.
type Config struct {
	TemplateID        catalog.TemplateID        `json:"template_id"`
	CoupleNames       CoupleNames               `json:"couple_names"`
	CustomText        CustomText                `json:"custom_text"`
	TextPositions     position.Set              `json:"text_positions"`
	Styling           catalog.Styling           `json:"styling"`
	GuestNamePosition catalog.GuestNamePosition `json:"guest_name_position"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.TextPositions = c.TextPositions.Clone()
	return c
}

// Bootstrap returns the configuration used when no initial one is supplied.
func Bootstrap() Config {
	return Config{
		TemplateID: catalog.Classic,
		CustomText: CustomText{
			MainMessage:    "Together with their families",
			AdditionalInfo: "Reception to follow",
		},
		TextPositions: position.Set{
			position.SlotCoupleNames: {X: 50, Y: 30},
			position.SlotVenue:       {X: 50, Y: 60},
			position.SlotDate:        {X: 50, Y: 70},
			position.SlotGuestName:   {X: 50, Y: 10},
		},
		Styling: catalog.Styling{
			FontFamily:     "Playfair Display",
			PrimaryColor:   "#8B5CF6",
			SecondaryColor: "#D946EF",
			TextColor:      "#1F2937",
		},
		GuestNamePosition: catalog.GuestTop,
	}
}

// Normalize prepares an inbound configuration (for example one loaded from
// storage) for editing: positions are clamped, a blank template id becomes the
// catalog fallback, and blank styling fields or an invalid guest-name position
// are taken from the template defaults. Everything else is kept as is.
func Normalize(cat *catalog.Catalog, c Config) Config {
	c = c.Clone()
	if c.TemplateID == "" {
		c.TemplateID = cat.Fallback().ID
	}
	def := cat.Resolve(c.TemplateID)
	c.TextPositions = c.TextPositions.Clamped()
	if c.TextPositions == nil {
		c.TextPositions = position.Set{}
	}
	if c.Styling.FontFamily == "" {
		c.Styling.FontFamily = def.DefaultStyling.FontFamily
	}
	if c.Styling.PrimaryColor == "" {
		c.Styling.PrimaryColor = def.DefaultStyling.PrimaryColor
	}
	if c.Styling.SecondaryColor == "" {
		c.Styling.SecondaryColor = def.DefaultStyling.SecondaryColor
	}
	if c.Styling.TextColor == "" {
		c.Styling.TextColor = def.DefaultStyling.TextColor
	}
	if !c.GuestNamePosition.Valid() {
		c.GuestNamePosition = def.DefaultGuestNamePosition
	}
	return c
}

// ResolvedPositions returns every slot position, using the active template's
// defaults for slots missing from c.
func ResolvedPositions(cat *catalog.Catalog, c Config) position.Set {
	return c.TextPositions.Resolve(cat.Resolve(c.TemplateID).DefaultTextPositions)
}
