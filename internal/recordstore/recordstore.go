// Package recordstore persists record collections and profile documents
// as JSON values of a key-value namespace.
//
// Every operation reads or writes a whole value. There are no row level updates:
// callers read, modify and write back the full collection.
package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
)

const keyPrefix = "pet-budget:"

// ErrNoChange may be returned by an Update func to skip the write.
var ErrNoChange = errors.New("no change")

// Namespace is a string key-value storage shared by the whole process.
type Namespace interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// CollectionKey returns the namespace key of an entity collection.
func CollectionKey(entity string) string {
	return keyPrefix + entity
}

// ProfileKey returns the namespace key of the profile of the given kind and owner.
func ProfileKey(kind, ownerID string) string {
	return keyPrefix + kind + ":" + ownerID
}

// ProfilePrefix returns the key prefix shared by all profiles of the given kind.
func ProfilePrefix(kind string) string {
	return keyPrefix + kind + ":"
}

// Store serializes read-modify-write cycles per key.
type Store struct {
	ns Namespace

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New returns Store over the given namespace.
func New(ns Namespace) *Store {
	return &Store{
		ns:    ns,
		locks: make(map[string]*sync.Mutex),
	}
}

// Namespace returns the underlying namespace.
func (s *Store) Namespace() Namespace {
	return s.ns
}

func (s *Store) lock(key string) func() {
	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()

	return m.Unlock
}

// load reads and decodes key into dst. Absent, unreadable and corrupt values all report false.
func (s *Store) load(ctx context.Context, key string, dst any) bool {
	l := zerolog.Ctx(ctx)

	raw, ok, err := s.ns.Get(ctx, key)
	if err != nil {
		l.Warn().Err(err).Str("key", key).Msg("cannot read namespace value")
		return false
	}

	if !ok || raw == "" {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		l.Warn().Err(err).Str("key", key).Msg("corrupt namespace value treated as empty")
		return false
	}

	return true
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	l := zerolog.Ctx(ctx)

	b, err := json.Marshal(v)
	if err != nil {
		l.Error().Err(err).Str("key", key).Msg("cannot encode namespace value")
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if err := s.ns.Set(ctx, key, string(b)); err != nil {
		l.Warn().Err(err).Str("key", key).Int("bytes", len(b)).Msg("namespace rejected write")
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	return nil
}

func (s *Store) remove(ctx context.Context, key string) error {
	if err := s.ns.Remove(ctx, key); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("namespace rejected remove")
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	return nil
}

// Collection is the list of all records of one entity type, of every owner.
type Collection[T any] struct {
	store *Store
	key   string
}

// NewCollection returns the collection of the given entity.
func NewCollection[T any](s *Store, entity string) *Collection[T] {
	return &Collection[T]{
		store: s,
		key:   CollectionKey(entity),
	}
}

// Key returns the namespace key of the collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the full collection. It never fails: absent or corrupt data is an empty collection.
func (c *Collection[T]) Load(ctx context.Context) []T {
	var records []T
	if !c.store.load(ctx, c.key, &records) || records == nil {
		return []T{}
	}

	return records
}

// Save overwrites the full collection.
// A rejected write is logged and returned wrapped in domain.ErrStorage.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	return c.store.save(ctx, c.key, records)
}

// Update runs a read-modify-write cycle that no other Update of the same key interleaves with.
// Nothing is written when fn returns an error; ErrNoChange is reported as success.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	unlock := c.store.lock(c.key)
	defer unlock()

	records, err := fn(c.Load(ctx))
	if err != nil {
		if errors.Is(err, ErrNoChange) {
			return nil
		}

		return err
	}

	return c.Save(ctx, records)
}

// Document is a single JSON record stored under its own key.
type Document[T any] struct {
	store *Store
	key   string
}

// NewDocument returns the profile document of the given kind and owner.
func NewDocument[T any](s *Store, kind, ownerID string) *Document[T] {
	return &Document[T]{
		store: s,
		key:   ProfileKey(kind, ownerID),
	}
}

// Load returns the document and whether it was found.
func (d *Document[T]) Load(ctx context.Context) (T, bool) {
	var v T
	if !d.store.load(ctx, d.key, &v) {
		var zero T
		return zero, false
	}

	return v, true
}

// Save overwrites the document.
func (d *Document[T]) Save(ctx context.Context, v T) error {
	unlock := d.store.lock(d.key)
	defer unlock()

	return d.store.save(ctx, d.key, v)
}

// Remove deletes the document. Removing an absent document is not an error.
func (d *Document[T]) Remove(ctx context.Context) error {
	unlock := d.store.lock(d.key)
	defer unlock()

	return d.store.remove(ctx, d.key)
}
