package recordstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/kvrepo"
)

type item struct {
	ID    string `json:"id"`
	Owner string `json:"owner_id"`
	N     int    `json:"n"`
}

func TestKeys(t *testing.T) {
	require.Equal(t, "pet-budget:transactions", CollectionKey(domain.EntityTransactions))
	require.Equal(t, "pet-budget:user-profile:u1", ProfileKey(domain.ProfileUser, "u1"))
	require.Equal(t, "pet-budget:company-profile:", ProfilePrefix(domain.ProfileCompany))
}

func TestCollectionLoad(t *testing.T) {
	testCases := []struct {
		name string
		raw  *string
		want []item
	}{
		{
			name: "Absent",
			want: []item{},
		},
		{
			name: "Corrupt",
			raw:  ptr("{not json"),
			want: []item{},
		},
		{
			name: "Null",
			raw:  ptr("null"),
			want: []item{},
		},
		{
			name: "Stored",
			raw:  ptr(`[{"id":"1","owner_id":"u1","n":1},{"id":"2","owner_id":"u2","n":2}]`),
			want: []item{{ID: "1", Owner: "u1", N: 1}, {ID: "2", Owner: "u2", N: 2}},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			ns := kvrepo.NewMemory(0)

			if tc.raw != nil {
				require.NoError(t, ns.Set(ctx, CollectionKey("items"), *tc.raw))
			}

			got := NewCollection[item](New(ns), "items").Load(ctx)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCollectionSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	ns := kvrepo.NewMemory(0)
	c := NewCollection[item](New(ns), "items")

	want := []item{{ID: "1", Owner: "u1"}, {ID: "2", Owner: "u1"}}
	require.NoError(t, c.Save(ctx, want))

	before, _, err := ns.Get(ctx, c.Key())
	require.NoError(t, err)

	require.NoError(t, c.Save(ctx, c.Load(ctx)))

	after, _, err := ns.Get(ctx, c.Key())
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Equal(t, want, c.Load(ctx))
}

func TestCollectionSaveQuota(t *testing.T) {
	ctx := context.Background()
	ns := kvrepo.NewMemory(40)
	c := NewCollection[item](New(ns), "items")

	err := c.Save(ctx, []item{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	require.ErrorIs(t, err, domain.ErrStorage)
	require.Equal(t, []item{}, c.Load(ctx))
}

func TestCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item](New(kvrepo.NewMemory(0)), "items")

	var wg sync.WaitGroup

	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			errs <- c.Update(ctx, func(items []item) ([]item, error) {
				return append(items, item{N: n}), nil
			})
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, c.Load(ctx), 50)

	err := c.Update(ctx, func(items []item) ([]item, error) {
		return nil, domain.ErrNotFound
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Len(t, c.Load(ctx), 50)

	err = c.Update(ctx, func(items []item) ([]item, error) {
		return nil, ErrNoChange
	})
	require.NoError(t, err)
	require.Len(t, c.Load(ctx), 50)
}

func TestDocument(t *testing.T) {
	ctx := context.Background()
	s := New(kvrepo.NewMemory(0))

	d := NewDocument[domain.UserProfile](s, domain.ProfileUser, "u1")

	_, ok := d.Load(ctx)
	require.False(t, ok)

	p := domain.UserProfile{OwnerID: "u1", FullName: "Ann"}
	require.NoError(t, d.Save(ctx, p))

	got, ok := d.Load(ctx)
	require.True(t, ok)
	require.Equal(t, p, got)

	other, ok := NewDocument[domain.UserProfile](s, domain.ProfileUser, "u2").Load(ctx)
	require.False(t, ok)
	require.Zero(t, other)

	require.NoError(t, d.Remove(ctx))

	_, ok = d.Load(ctx)
	require.False(t, ok)
}

func ptr(s string) *string {
	return &s
}
