package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/SachinthaLakshan/evite-new-edition/position"
)

//go:embed templates.yaml
var embeddedTemplates []byte

var defaultCatalog = mustLoad(embeddedTemplates)

// Default returns the process-wide catalog built from the embedded templates.
func Default() *Catalog {
	return defaultCatalog
}

// Catalog is an ordered, read-only set of template definitions.
type Catalog struct {
	defs []Definition
	byID map[TemplateID]int
}

type catalogFile struct {
	Templates []Definition `yaml:"templates"`
}

// Load parses a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(file.Templates)
}

// New builds a catalog from definitions in selection order.
func New(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog has no templates")
	}
	c := &Catalog{
		defs: make([]Definition, 0, len(defs)),
		byID: make(map[TemplateID]int, len(defs)),
	}
	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("template %d: missing id", i)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", d.ID)
		}
		if !d.DefaultGuestNamePosition.Valid() {
			return nil, fmt.Errorf("template %q: invalid guest name position %q", d.ID, d.DefaultGuestNamePosition)
		}
		for _, slot := range position.Slots() {
			if _, ok := d.DefaultTextPositions[slot]; !ok {
				return nil, fmt.Errorf("template %q: missing default position for %s", d.ID, slot)
			}
		}
		d.DefaultTextPositions = d.DefaultTextPositions.Clamped()
		c.byID[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

func mustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the definition for id or ErrUnknownTemplate.
func (c *Catalog) Get(id TemplateID) (Definition, error) {
	i, ok := c.byID[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return cloneDefinition(c.defs[i]), nil
}

// Known reports whether id names a catalog entry.
func (c *Catalog) Known(id TemplateID) bool {
	_, ok := c.byID[id]
	return ok
}

// Resolve returns the definition for id, or the first entry when id is unknown.
func (c *Catalog) Resolve(id TemplateID) Definition {
	d, err := c.Get(id)
	if err != nil {
		return cloneDefinition(c.defs[0])
	}
	return d
}

// Fallback returns the first catalog entry.
func (c *Catalog) Fallback() Definition {
	return cloneDefinition(c.defs[0])
}

// List returns all definitions in selection order.
func (c *Catalog) List() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		out[i] = cloneDefinition(d)
	}
	return out
}

func cloneDefinition(d Definition) Definition {
	d.DefaultTextPositions = d.DefaultTextPositions.Clone()
	return d
}
