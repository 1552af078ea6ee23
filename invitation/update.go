package invitation

import (
	"encoding/json"
	"fmt"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/position"
)

// Update is one discriminated edit of a Config. Apply is total: it never
// rejects input and always returns a new configuration.
type Update interface {
	Op() string
	Apply(cat *catalog.Catalog, c Config) Config
}

// Person selects one of the couple names.
type Person string

const (
	Person1 Person = "person1"
	Person2 Person = "person2"
)

// TextField selects one of the custom text lines.
type TextField string

const (
	MainMessage    TextField = "main_message"
	AdditionalInfo TextField = "additional_info"
)

// StyleField selects one styling attribute.
type StyleField string

const (
	FontFamily     StyleField = "font_family"
	PrimaryColor   StyleField = "primary_color"
	SecondaryColor StyleField = "secondary_color"
	TextColor      StyleField = "text_color"
)

// SetTemplate switches the template and adopts its styling and guest-name
// position. Names, custom text and positions are preserved.
type SetTemplate struct {
	TemplateID catalog.TemplateID `json:"template_id"`
}

func (SetTemplate) Op() string { return "set_template" }

func (u SetTemplate) Apply(cat *catalog.Catalog, c Config) Config {
	def := cat.Resolve(u.TemplateID)
	c.TemplateID = u.TemplateID
	c.Styling = def.DefaultStyling
	c.GuestNamePosition = def.DefaultGuestNamePosition
	return c
}

type SetCoupleName struct {
	Person Person `json:"person"`
	Name   string `json:"name"`
}

func (SetCoupleName) Op() string { return "set_couple_name" }

func (u SetCoupleName) Apply(_ *catalog.Catalog, c Config) Config {
	switch u.Person {
	case Person1:
		c.CoupleNames.Person1 = u.Name
	case Person2:
		c.CoupleNames.Person2 = u.Name
	}
	return c
}

type SetCustomText struct {
	Field TextField `json:"field"`
	Text  string    `json:"text"`
}

func (SetCustomText) Op() string { return "set_custom_text" }

func (u SetCustomText) Apply(_ *catalog.Catalog, c Config) Config {
	switch u.Field {
	case MainMessage:
		c.CustomText.MainMessage = u.Text
	case AdditionalInfo:
		c.CustomText.AdditionalInfo = u.Text
	}
	return c
}

type SetStyling struct {
	Field StyleField `json:"field"`
	Value string     `json:"value"`
}

func (SetStyling) Op() string { return "set_styling" }

func (u SetStyling) Apply(_ *catalog.Catalog, c Config) Config {
	switch u.Field {
	case FontFamily:
		c.Styling.FontFamily = u.Value
	case PrimaryColor:
		c.Styling.PrimaryColor = u.Value
	case SecondaryColor:
		c.Styling.SecondaryColor = u.Value
	case TextColor:
		c.Styling.TextColor = u.Value
	}
	return c
}

type SetGuestNamePosition struct {
	Position catalog.GuestNamePosition `json:"position"`
}

func (SetGuestNamePosition) Op() string { return "set_guest_name_position" }

func (u SetGuestNamePosition) Apply(_ *catalog.Catalog, c Config) Config {
	if u.Position.Valid() {
		c.GuestNamePosition = u.Position
	}
	return c
}

// SetPosition replaces one slot's coordinates, clamped.
type SetPosition struct {
	Slot     position.Slot     `json:"slot"`
	Position position.Position `json:"position"`
}

func (SetPosition) Op() string { return "set_position" }

func (u SetPosition) Apply(_ *catalog.Catalog, c Config) Config {
	if _, err := position.ParseSlot(string(u.Slot)); err != nil {
		return c
	}
	next := c.TextPositions.Clone()
	if next == nil {
		next = position.Set{}
	}
	next[u.Slot] = u.Position.Clamped()
	c.TextPositions = next
	return c
}

// ResetPositions replaces every position with the active template's defaults.
type ResetPositions struct{}

func (ResetPositions) Op() string { return "reset_positions" }

func (ResetPositions) Apply(cat *catalog.Catalog, c Config) Config {
	c.TextPositions = cat.Resolve(c.TemplateID).DefaultTextPositions.Clone()
	return c
}

// DecodeUpdate parses a wire update of the form {"op": "...", ...fields}.
func DecodeUpdate(data []byte) (Update, error) {
	var head struct {
		Op string `json:"op"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode update: %w", err)
	}
	var u Update
	var err error
	switch head.Op {
	case SetTemplate{}.Op():
		var v SetTemplate
		err = json.Unmarshal(data, &v)
		u = v
	case SetCoupleName{}.Op():
		var v SetCoupleName
		err = json.Unmarshal(data, &v)
		u = v
	case SetCustomText{}.Op():
		var v SetCustomText
		err = json.Unmarshal(data, &v)
		u = v
	case SetStyling{}.Op():
		var v SetStyling
		err = json.Unmarshal(data, &v)
		u = v
	case SetGuestNamePosition{}.Op():
		var v SetGuestNamePosition
		err = json.Unmarshal(data, &v)
		u = v
	case SetPosition{}.Op():
		var v SetPosition
		err = json.Unmarshal(data, &v)
		u = v
	case ResetPositions{}.Op():
		u = ResetPositions{}
	default:
		return nil, fmt.Errorf("decode update: unknown op %q", head.Op)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", head.Op, err)
	}
	return u, nil
}
