package socialcard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/SachinthaLakshan/evite-new-edition/cardcache"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/metrics"
	"github.com/SachinthaLakshan/evite-new-edition/render"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

// Format is the encoding of a generated card.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// cache entries are invalidated by bumping this when the layout changes
const layoutVersion = "social-v1"

// Lookup reads the records a card is built from. store.Store satisfies it.
type Lookup interface {
	GetEvent(ctx context.Context, id string) (store.Event, error)
	GetAttendee(ctx context.Context, id string) (store.Attendee, error)
}

// Cache keeps encoded cards. cardcache.Cache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
}

// Generator produces social cards for an event and attendee. It never
// fails on missing or unreachable data; placeholders are drawn instead.
type Generator struct {
	lookup   Lookup
	cache    Cache
	log      *zap.Logger
	writePNG func(io.Writer, *render.Surface) error
	writeSVG func(io.Writer, *render.Surface) error
}

// NewGenerator creates a generator. cache may be nil.
func NewGenerator(lookup Lookup, cache Cache, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		lookup:   lookup,
		cache:    cache,
		log:      log,
		writePNG: render.WritePNG,
		writeSVG: render.WriteSVG,
	}
}

// placeholderSVG is the blank card served when encoding fails.
const placeholderSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630"><rect width="1200" height="630" fill="#F7F7FF"/></svg>
`

// placeholderPNG is the raster counterpart of placeholderSVG. Encoding a
// fixed image into a bytes.Buffer cannot fail.
var placeholderPNG = sync.OnceValue(func() []byte {
	dc := gg.NewContext(Width, Height)
	dc.SetHexColor("#F7F7FF")
	dc.Clear()
	var buf bytes.Buffer
	_ = dc.EncodePNG(&buf)
	return buf.Bytes()
})

func placeholder(format Format) []byte {
	if format == PNG {
		return placeholderPNG()
	}
	return []byte(placeholderSVG)
}

// inputs are the resolved facts a card is drawn from.
type inputs struct {
	event  *render.EventFacts
	guest  *GuestFacts
	config *invitation.Config
}

func (in inputs) key(format Format) string {
	var event render.EventFacts
	if in.event != nil {
		event = *in.event
	}
	var guest string
	if in.guest != nil {
		guest = in.guest.Name
	}
	var cfg []byte
	if in.config != nil {
		// Config holds only plain values and maps, which encode deterministically.
		cfg, _ = json.Marshal(in.config)
	}
	return cardcache.Key(layoutVersion, string(format), event.Title, event.Date, event.Location, guest, string(cfg))
}

func (g *Generator) resolve(ctx context.Context, eventID, attendeeID string) inputs {
	var in inputs
	if eventID != "" && g.lookup != nil {
		ev, err := g.lookup.GetEvent(ctx, eventID)
		if err != nil {
			g.degraded("event", eventID, err)
		} else {
			in.event = &render.EventFacts{Title: ev.Title, Date: ev.Date, Location: ev.Location}
			in.config = ev.Invitation
		}
	}
	if attendeeID != "" && g.lookup != nil {
		a, err := g.lookup.GetAttendee(ctx, attendeeID)
		if err != nil {
			g.degraded("attendee", attendeeID, err)
		} else {
			in.guest = &GuestFacts{Name: a.Name}
		}
	}
	return in
}

func (g *Generator) degraded(kind, id string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		metrics.SocialCardDegraded.WithLabelValues(kind + "_not_found").Inc()
		g.log.Debug("social card record missing", zap.String("kind", kind), zap.String("id", id))
		return
	}
	metrics.SocialCardDegraded.WithLabelValues(kind + "_lookup").Inc()
	g.log.Warn("social card lookup failed", zap.String("kind", kind), zap.String("id", id), zap.Error(err))
}

// PNG returns the raster card. If encoding fails a blank card of the same
// size is returned instead.
func (g *Generator) PNG(ctx context.Context, eventID, attendeeID string) []byte {
	return g.generate(ctx, PNG, eventID, attendeeID)
}

// SVG returns the vector card.
func (g *Generator) SVG(ctx context.Context, eventID, attendeeID string) []byte {
	return g.generate(ctx, SVG, eventID, attendeeID)
}

func (g *Generator) generate(ctx context.Context, format Format, eventID, attendeeID string) []byte {
	in := g.resolve(ctx, eventID, attendeeID)
	key := in.key(format)

	if g.cache != nil {
		b, ok, err := g.cache.Get(ctx, key)
		if err != nil {
			metrics.SocialCardDegraded.WithLabelValues("cache_get").Inc()
			g.log.Warn("social card cache read failed", zap.Error(err))
		} else if ok {
			metrics.SocialCards.WithLabelValues(string(format), "cache").Inc()
			return b
		}
	}

	start := time.Now()
	surface := RenderStatic(in.event, in.guest, in.config)
	var buf bytes.Buffer
	var err error
	if format == PNG {
		err = g.writePNG(&buf, surface)
	} else {
		err = g.writeSVG(&buf, surface)
	}
	metrics.SocialCardDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SocialCardDegraded.WithLabelValues("encode").Inc()
		g.log.Error("social card encoding failed", zap.String("format", string(format)), zap.Error(err))
		return placeholder(format)
	}
	metrics.SocialCards.WithLabelValues(string(format), "render").Inc()

	out := buf.Bytes()
	if g.cache != nil {
		if err := g.cache.Set(ctx, key, out); err != nil {
			metrics.SocialCardDegraded.WithLabelValues("cache_set").Inc()
			g.log.Warn("social card cache write failed", zap.Error(err))
		}
	}
	return out
}
