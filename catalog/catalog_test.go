package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SachinthaLakshan/evite-new-edition/position"
)

func TestDefaultCatalogOrder(t *testing.T) {
	list := Default().List()
	require.Len(t, list, 4)

	ids := make([]TemplateID, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []TemplateID{Classic, Modern, Floral, Minimal}, ids)
}

func TestDefaultCatalogStyling(t *testing.T) {
	tests := []struct {
		id    TemplateID
		font  string
		guest GuestNamePosition
	}{
		{Classic, "Playfair Display", GuestTop},
		{Modern, "Montserrat", GuestTop},
		{Floral, "Dancing Script", GuestHeader},
		{Minimal, "Lora", GuestTop},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			d, err := Default().Get(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.font, d.DefaultStyling.FontFamily)
			assert.Equal(t, tt.guest, d.DefaultGuestNamePosition)
			assert.Len(t, d.DefaultTextPositions, 4)
		})
	}
}

func TestClassicDefaultPositions(t *testing.T) {
	d, err := Default().Get(Classic)
	require.NoError(t, err)
	assert.Equal(t, position.Set{
		position.SlotCoupleNames: {X: 50, Y: 30},
		position.SlotVenue:       {X: 50, Y: 60},
		position.SlotDate:        {X: 50, Y: 70},
		position.SlotGuestName:   {X: 50, Y: 10},
	}, d.DefaultTextPositions)
}

func TestGetUnknown(t *testing.T) {
	_, err := Default().Get("art-deco")
	assert.True(t, errors.Is(err, ErrUnknownTemplate))
}

func TestResolveFallsBackToFirst(t *testing.T) {
	for _, id := range []TemplateID{"", "art-deco", "CLASSIC"} {
		d := Default().Resolve(id)
		assert.Equal(t, Classic, d.ID)
	}
	assert.Equal(t, Floral, Default().Resolve(Floral).ID)
	assert.False(t, Default().Known("art-deco"))
	assert.True(t, Default().Known(Minimal))
}

func TestResolveReturnsCopies(t *testing.T) {
	d := Default().Resolve(Classic)
	d.DefaultTextPositions[position.SlotVenue] = position.Position{X: 1, Y: 1}

	again := Default().Resolve(Classic)
	assert.Equal(t, position.Position{X: 50, Y: 60}, again.DefaultTextPositions[position.SlotVenue])
}

func TestLoadRejectsIncompleteTemplates(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "templates: []"},
		{"missing id", `
templates:
  - name: x
    default_guest_name_position: top
`},
		{"missing slot", `
templates:
  - id: a
    default_guest_name_position: top
    default_text_positions:
      venue: {x: 1, y: 1}
`},
		{"bad guest position", `
templates:
  - id: a
    default_guest_name_position: sideways
`},
		{"duplicate", `
templates:
  - id: a
    default_guest_name_position: top
    default_text_positions: {couple_names: {x: 1, y: 1}, venue: {x: 1, y: 1}, date: {x: 1, y: 1}, guest_name: {x: 1, y: 1}}
  - id: a
    default_guest_name_position: top
    default_text_positions: {couple_names: {x: 1, y: 1}, venue: {x: 1, y: 1}, date: {x: 1, y: 1}, guest_name: {x: 1, y: 1}}
`},
		{"not yaml", "templates: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadClampsDefaults(t *testing.T) {
	c, err := Load([]byte(`
templates:
  - id: wide
    default_guest_name_position: bottom
    default_text_positions: {couple_names: {x: -10, y: 150}, venue: {x: 1, y: 1}, date: {x: 1, y: 1}, guest_name: {x: 1, y: 1}}
`))
	require.NoError(t, err)
	d := c.Resolve("wide")
	assert.Equal(t, position.Position{X: 0, Y: 100}, d.DefaultTextPositions[position.SlotCoupleNames])
}

func TestFontsAndGuestPositions(t *testing.T) {
	assert.Contains(t, Fonts(), "Montserrat")
	assert.Len(t, Fonts(), 8)
	opts := GuestNamePositions()
	require.Len(t, opts, 4)
	for _, o := range opts {
		assert.True(t, o.Value.Valid())
	}
	assert.False(t, GuestNamePosition("left").Valid())
}
