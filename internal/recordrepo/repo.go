// Package recordrepo manages repository layer of owner scoped records.
//
// Local keeps records in the record store. RepoPGS keeps them in Postgres.
// Both satisfy Repo, so services do not know which backend they use.
package recordrepo

import (
	"context"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/model"
	"github.com/go-petr/pet-budget/internal/recordstore"
)

// Repo provides owner scoped access to records of one entity type.
type Repo[T domain.Record] interface {
	List(ctx context.Context, ownerID string) ([]T, error)
	Get(ctx context.Context, ownerID, id string) (T, error)
	Insert(ctx context.Context, rec T) error
	Replace(ctx context.Context, rec T) error
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	DeleteOwner(ctx context.Context, ownerID string) (int, error)
	Owners(ctx context.Context) ([]string, error)
}

// ProfileRepo provides access to profile documents keyed by owner.
type ProfileRepo[T domain.Record] interface {
	Get(ctx context.Context, ownerID string) (T, error)
	Put(ctx context.Context, p T) error
	Delete(ctx context.Context, ownerID string) error
}

// Local keeps records of one entity type in a record store collection.
type Local[T domain.Record] struct {
	c *recordstore.Collection[T]
}

// NewLocal returns Local for the given entity.
func NewLocal[T domain.Record](s *recordstore.Store, entity string) *Local[T] {
	return &Local[T]{
		c: recordstore.NewCollection[T](s, entity),
	}
}

// List returns records of the owner in stored order.
func (r *Local[T]) List(ctx context.Context, ownerID string) ([]T, error) {
	return model.OwnedBy(r.c.Load(ctx), ownerID), nil
}

// Get returns the record with the given id if it belongs to the owner.
func (r *Local[T]) Get(ctx context.Context, ownerID, id string) (T, error) {
	records := r.c.Load(ctx)

	i := indexOf(records, ownerID, id)
	if i < 0 {
		var zero T
		return zero, domain.ErrNotFound
	}

	return records[i], nil
}

// Insert appends the record to the collection.
func (r *Local[T]) Insert(ctx context.Context, rec T) error {
	return r.c.Update(ctx, func(records []T) ([]T, error) {
		return append(records, rec), nil
	})
}

// Replace overwrites the stored record with the same id and owner.
func (r *Local[T]) Replace(ctx context.Context, rec T) error {
	return r.c.Update(ctx, func(records []T) ([]T, error) {
		i := indexOf(records, rec.RecordOwner(), rec.RecordID())
		if i < 0 {
			return nil, domain.ErrNotFound
		}

		records[i] = rec

		return records, nil
	})
}

// Delete removes the record and reports whether it existed.
func (r *Local[T]) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	var removed bool

	err := r.c.Update(ctx, func(records []T) ([]T, error) {
		i := indexOf(records, ownerID, id)
		if i < 0 {
			return nil, recordstore.ErrNoChange
		}

		removed = true

		return append(records[:i], records[i+1:]...), nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// DeleteOwner removes every record of the owner and returns how many were removed.
func (r *Local[T]) DeleteOwner(ctx context.Context, ownerID string) (int, error) {
	var n int

	err := r.c.Update(ctx, func(records []T) ([]T, error) {
		kept := records[:0]

		for _, rec := range records {
			if rec.RecordOwner() == ownerID {
				n++
				continue
			}

			kept = append(kept, rec)
		}

		if n == 0 {
			return nil, recordstore.ErrNoChange
		}

		return kept, nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// Owners returns the distinct owners that have records, in order of first appearance.
func (r *Local[T]) Owners(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	owners := make([]string, 0)

	for _, rec := range r.c.Load(ctx) {
		if _, ok := seen[rec.RecordOwner()]; ok {
			continue
		}

		seen[rec.RecordOwner()] = struct{}{}
		owners = append(owners, rec.RecordOwner())
	}

	return owners, nil
}

func indexOf[T domain.Record](records []T, ownerID, id string) int {
	i := model.IndexOf(records, id)
	if i < 0 || records[i].RecordOwner() != ownerID {
		return -1
	}

	return i
}

// LocalProfiles keeps one profile document per owner in the record store.
type LocalProfiles[T domain.Record] struct {
	store *recordstore.Store
	kind  string
}

// NewLocalProfiles returns LocalProfiles for the given profile kind.
func NewLocalProfiles[T domain.Record](s *recordstore.Store, kind string) *LocalProfiles[T] {
	return &LocalProfiles[T]{
		store: s,
		kind:  kind,
	}
}

// Get returns the profile of the owner.
func (r *LocalProfiles[T]) Get(ctx context.Context, ownerID string) (T, error) {
	p, ok := recordstore.NewDocument[T](r.store, r.kind, ownerID).Load(ctx)
	if !ok {
		return p, domain.ErrNotFound
	}

	return p, nil
}

// Put stores the profile under its owner.
func (r *LocalProfiles[T]) Put(ctx context.Context, p T) error {
	return recordstore.NewDocument[T](r.store, r.kind, p.RecordOwner()).Save(ctx, p)
}

// Delete removes the profile of the owner.
func (r *LocalProfiles[T]) Delete(ctx context.Context, ownerID string) error {
	return recordstore.NewDocument[T](r.store, r.kind, ownerID).Remove(ctx)
}
