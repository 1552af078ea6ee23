package invitation

import (
	"sync"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/metrics"
	"github.com/SachinthaLakshan/evite-new-edition/position"
)

// ChangeFunc receives the full configuration after every update.
type ChangeFunc func(Config)

// Controller owns one mutable Config. Every update replaces the configuration
// copy-on-write and then calls the change callback with the new value.
//
// The callback runs while the controller is locked so that observers see
// changes in order; it must not call back into the controller.
type Controller struct {
	mu       sync.Mutex
	cat      *catalog.Catalog
	cfg      Config
	onChange ChangeFunc
}

// NewController starts from initial, or from Bootstrap when initial is nil.
func NewController(cat *catalog.Catalog, initial *Config, onChange ChangeFunc) *Controller {
	if cat == nil {
		cat = catalog.Default()
	}
	cfg := Bootstrap()
	if initial != nil {
		cfg = Normalize(cat, *initial)
	}
	return &Controller{cat: cat, cfg: cfg, onChange: onChange}
}

// Config returns a snapshot of the current configuration.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Clone()
}

// Catalog returns the catalog used to resolve templates.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.cat
}

// Apply runs u against the current configuration and notifies the observer.
func (c *Controller) Apply(u Update) Config {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := u.Apply(c.cat, c.cfg.Clone())
	c.cfg = next
	metrics.ConfigChanges.WithLabelValues(u.Op()).Inc()
	if c.onChange != nil {
		c.onChange(next.Clone())
	}
	return next.Clone()
}

func (c *Controller) SetTemplate(id catalog.TemplateID) Config {
	return c.Apply(SetTemplate{TemplateID: id})
}

func (c *Controller) SetCoupleName(p Person, name string) Config {
	return c.Apply(SetCoupleName{Person: p, Name: name})
}

func (c *Controller) SetCustomText(f TextField, text string) Config {
	return c.Apply(SetCustomText{Field: f, Text: text})
}

func (c *Controller) SetStyling(f StyleField, value string) Config {
	return c.Apply(SetStyling{Field: f, Value: value})
}

func (c *Controller) SetGuestNamePosition(p catalog.GuestNamePosition) Config {
	return c.Apply(SetGuestNamePosition{Position: p})
}

// SetPosition stores a clamped position for slot.
func (c *Controller) SetPosition(slot position.Slot, p position.Position) {
	c.Apply(SetPosition{Slot: slot, Position: p})
}

// ResetPositions restores the active template's default positions.
func (c *Controller) ResetPositions() {
	c.Apply(ResetPositions{})
}

// Position returns the effective position of slot, falling back to the
// active template's default when the slot is not set.
func (c *Controller) Position(slot position.Slot) position.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.TextPositions.Lookup(slot, c.cat.Resolve(c.cfg.TemplateID).DefaultTextPositions)
}
