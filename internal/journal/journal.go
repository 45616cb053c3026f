// Package journal keeps an audit trail of contact and preference changes in
// the profile log.
package journal

import (
	"context"

	"github.com/matheus3301/rolodex/internal/bus"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/prefs"
	"go.uber.org/zap"
)

// Journal subscribes to "contact." and "prefs." events and logs each one.
type Journal struct {
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a journal. Nothing is recorded until Start.
func New(b *bus.Bus, logger *zap.Logger) *Journal {
	return &Journal{
		bus:    b,
		logger: logger.Named("journal"),
	}
}

// Start begins recording in a background goroutine.
func (j *Journal) Start(ctx context.Context) {
	ctx, j.cancel = context.WithCancel(ctx)
	j.done = make(chan struct{})
	ch, unsub := j.bus.Subscribe(256, "contact.", "prefs.")

	go func() {
		defer close(j.done)
		defer unsub()
		for {
			select {
			case evt := <-ch:
				j.record(evt)
			case <-ctx.Done():
				j.drain(ch)
				return
			}
		}
	}()
}

// Stop stops recording and waits for pending events to be written.
func (j *Journal) Stop() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	<-j.done
	j.cancel = nil
	if n := j.bus.Dropped(); n > 0 {
		j.logger.Warn("events dropped by bus", zap.Uint64("count", n))
	}
}

func (j *Journal) drain(ch <-chan bus.Event) {
	for {
		select {
		case evt := <-ch:
			j.record(evt)
		default:
			return
		}
	}
}

func (j *Journal) record(evt bus.Event) {
	switch p := evt.Payload.(type) {
	case contact.Contact:
		j.logger.Info(evt.Kind,
			zap.String("id", p.ID),
			zap.String("name", p.Name),
			zap.Bool("favorite", p.Favorite),
			zap.Time("at", evt.Timestamp),
		)
	case prefs.ThemeChange:
		j.logger.Info(evt.Kind,
			zap.String("from", string(p.From)),
			zap.String("to", string(p.To)),
			zap.Time("at", evt.Timestamp),
		)
	default:
		j.logger.Debug("unrecognized event",
			zap.String("namespace", evt.Namespace()),
			zap.String("kind", evt.Kind),
		)
	}
}
