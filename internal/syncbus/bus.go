// Package syncbus fans profile updates out to in-process subscribers.
package syncbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
)

// Topic names a kind of update.
type Topic string

// Supported topics.
const (
	TopicUserProfileUpdated    Topic = "userProfileUpdated"
	TopicCompanyProfileUpdated Topic = "companyProfileUpdated"
)

// Event is a single published update. Payload holds the full updated record.
type Event struct {
	Topic   Topic
	OwnerID string
	Payload any
}

// Handler receives events of the topic it subscribed to.
// Subscribers filter by owner themselves.
type Handler func(ctx context.Context, e Event) error

type subscription struct {
	id uint64
	h  Handler
}

// Bus delivers events synchronously in subscription order.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic][]subscription
	closed bool
}

// New returns an open Bus.
func New() *Bus {
	return &Bus{
		subs: make(map[Topic][]subscription),
	}
}

// Subscribe registers h for topic and returns a func removing it.
// Calling the returned func more than once is a no-op.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return func() {}
	}

	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, h: h})

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

func (b *Bus) remove(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == id {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of handlers registered for topic.
func (b *Bus) Subscribers(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[topic])
}

// Publish calls every handler of the event topic once.
// A failing or panicking handler does not stop delivery to the rest;
// their failures are returned together as *domain.SyncDeliveryError.
func (b *Bus) Publish(ctx context.Context, e Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return domain.ErrBusClosed
	}

	subs := make([]subscription, len(b.subs[e.Topic]))
	copy(subs, b.subs[e.Topic])
	b.mu.RUnlock()

	var errs []error

	for _, s := range subs {
		if err := deliver(ctx, s.h, e); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).
				Str("topic", string(e.Topic)).
				Str("owner_id", e.OwnerID).
				Msg("sync handler failed")

			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return &domain.SyncDeliveryError{Topic: string(e.Topic), Errors: errs}
	}

	return nil
}

func deliver(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return h(ctx, e)
}

// Close drops every subscription. Publishing on a closed bus returns domain.ErrBusClosed.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.subs = make(map[Topic][]subscription)
}
