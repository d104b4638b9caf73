package memory

import (
	"context"
	"sync"

	"github.com/alanyang/gaas-console/internal/domain/event"
	porteventbus "github.com/alanyang/gaas-console/internal/port/eventbus"
)

var _ porteventbus.EventBus = (*EventBus)(nil)

// EventBus delivers events to subscribers in the same process.
// Used when the gateway runs without Postgres.
type EventBus struct {
	mu   sync.RWMutex
	subs map[event.Channel]map[*subscription]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[event.Channel]map[*subscription]struct{})}
}

// Publish queues e for every current subscriber of its channel. A subscriber
// whose queue is full misses the event rather than blocking the publisher.
func (b *EventBus) Publish(_ context.Context, e event.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs[event.ChannelFor(e.Type)] {
		select {
		case sub.events <- e:
		default:
		}
	}
	return nil
}

func (b *EventBus) Subscribe(ctx context.Context, ch event.Channel, handler porteventbus.Handler) (porteventbus.Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		events: make(chan event.Event, 64),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	b.mu.Lock()
	if b.subs[ch] == nil {
		b.subs[ch] = make(map[*subscription]struct{})
	}
	b.subs[ch][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		defer func() {
			b.mu.Lock()
			delete(b.subs[ch], sub)
			b.mu.Unlock()
			close(sub.done)
		}()
		for {
			select {
			case <-subCtx.Done():
				return
			case e := <-sub.events:
				handler(subCtx, e)
			}
		}
	}()

	return sub, nil
}

type subscription struct {
	events chan event.Event
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *subscription) Unsubscribe() {
	s.cancel()
	<-s.done
}
