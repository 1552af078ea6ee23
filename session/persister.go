package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/metrics"
)

const saveTimeout = 5 * time.Second

// SaveFunc stores the configuration of an event.
type SaveFunc func(ctx context.Context, eventID string, cfg invitation.Config) error

// persister writes configurations in the background. Only the newest
// pending configuration is kept; older ones are overwritten, never queued.
type persister struct {
	eventID string
	save    SaveFunc
	log     *zap.Logger

	mu      sync.Mutex
	pending *invitation.Config

	wake    chan struct{}
	quit    chan struct{}
	stopped chan struct{}
}

func newPersister(eventID string, save SaveFunc, log *zap.Logger) *persister {
	p := &persister{
		eventID: eventID,
		save:    save,
		log:     log,
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go p.run()
	return p
}

// Offer replaces the pending configuration and wakes the writer.
func (p *persister) Offer(cfg invitation.Config) {
	cfg = cfg.Clone()
	p.mu.Lock()
	p.pending = &cfg
	p.mu.Unlock()
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Close flushes the pending configuration and stops the writer.
func (p *persister) Close() {
	close(p.quit)
	<-p.stopped
}

func (p *persister) run() {
	defer close(p.stopped)
	for {
		select {
		case <-p.wake:
			p.flush()
		case <-p.quit:
			p.flush()
			return
		}
	}
}

func (p *persister) flush() {
	p.mu.Lock()
	cfg := p.pending
	p.pending = nil
	p.mu.Unlock()
	if cfg == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := p.save(ctx, p.eventID, *cfg); err != nil {
		metrics.InvitationSaves.WithLabelValues("error").Inc()
		p.log.Warn("save invitation failed", zap.String("event_id", p.eventID), zap.Error(err))
		return
	}
	metrics.InvitationSaves.WithLabelValues("ok").Inc()
}
