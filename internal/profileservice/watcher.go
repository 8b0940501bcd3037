package profileservice

import (
	"context"
	"sync"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/syncbus"
)

const watcherBuffer = 16

// Watcher follows the profiles of one owner. It ignores updates of other owners.
type Watcher struct {
	ownerID string

	mu      sync.Mutex
	user    *domain.UserProfile
	company *domain.CompanyProfile
	closed  bool

	updates     chan syncbus.Event
	unsubscribe []func()
}

// Watch subscribes a Watcher of ownerID to both profile topics.
// The Watcher must be closed to release its subscriptions.
func (s *Service) Watch(ownerID string) *Watcher {
	w := &Watcher{
		ownerID: ownerID,
		updates: make(chan syncbus.Event, watcherBuffer),
	}

	w.unsubscribe = []func(){
		s.bus.Subscribe(syncbus.TopicUserProfileUpdated, w.handle),
		s.bus.Subscribe(syncbus.TopicCompanyProfileUpdated, w.handle),
	}

	return w
}

func (w *Watcher) handle(_ context.Context, e syncbus.Event) error {
	if e.OwnerID != w.ownerID {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	switch p := e.Payload.(type) {
	case domain.UserProfile:
		w.user = &p
	case domain.CompanyProfile:
		w.company = &p
	}

	// A full buffer drops the event; User and Company still hold the latest state.
	select {
	case w.updates <- e:
	default:
	}

	return nil
}

// Updates delivers the owner's profile events. It is closed by Close.
func (w *Watcher) Updates() <-chan syncbus.Event {
	return w.updates
}

// User returns the latest user profile seen by the watcher.
func (w *Watcher) User() (domain.UserProfile, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return domain.UserProfile{}, false
	}

	return *w.user, true
}

// Company returns the latest company profile seen by the watcher.
func (w *Watcher) Company() (domain.CompanyProfile, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.company == nil {
		return domain.CompanyProfile{}, false
	}

	return *w.company, true
}

// Close unsubscribes the watcher. It is safe to call more than once.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	for _, unsubscribe := range w.unsubscribe {
		unsubscribe()
	}

	close(w.updates)
}
