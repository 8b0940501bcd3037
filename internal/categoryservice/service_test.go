package categoryservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/kvrepo"
	"github.com/go-petr/pet-budget/internal/model"
	"github.com/go-petr/pet-budget/internal/recordrepo"
	"github.com/go-petr/pet-budget/internal/recordstore"
)

var testNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()

	s := New(recordrepo.NewLocal[domain.Category](recordstore.New(kvrepo.NewMemory(0)), domain.EntityCategories))
	s.now = func() time.Time { return testNow }

	return s
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	res := s.Create(ctx, "u1", domain.CategoryForm{
		Name:          " Food ",
		Kind:          "EXPENSE",
		Subcategories: []string{"Coffee", "Lunch", "Coffee"},
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, "Food", res.Data.Name)
	require.Equal(t, domain.DefaultCategoryColor, res.Data.Color)
	require.Equal(t, []string{"Coffee", "Lunch"}, res.Data.Subcategories)
	require.False(t, res.Data.IsDefault)
	require.Equal(t, testNow, res.Data.CreatedAt)

	testCases := []struct {
		name      string
		owner     string
		form      domain.CategoryForm
		wantOK    bool
		wantError error
	}{
		{
			name:      "SameNameDifferentCase",
			owner:     "u1",
			form:      domain.CategoryForm{Name: "FOOD", Kind: "EXPENSE"},
			wantError: domain.ErrCategoryAlreadyExists,
		},
		{
			name:   "SameNameOtherKind",
			owner:  "u1",
			form:   domain.CategoryForm{Name: "Food", Kind: "INCOME"},
			wantOK: true,
		},
		{
			name:   "SameNameOtherOwner",
			owner:  "u2",
			form:   domain.CategoryForm{Name: "Food", Kind: "EXPENSE"},
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			res := s.Create(ctx, tc.owner, tc.form)
			require.Equal(t, tc.wantOK, res.Success)

			if tc.wantError != nil {
				require.ErrorIs(t, res.Cause, tc.wantError)
			}
		})
	}

	invalid := s.Create(ctx, "u1", domain.CategoryForm{Name: "Bad", Kind: "EXPENSE", Color: "blue"})
	require.False(t, invalid.Success)
	require.Equal(t, "color must be a hex color", invalid.Error)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	food := s.Create(ctx, "u1", domain.CategoryForm{Name: "Food", Kind: "EXPENSE"}).Data
	rent := s.Create(ctx, "u1", domain.CategoryForm{Name: "Rent", Kind: "EXPENSE"}).Data

	name := "rent"
	res := s.Update(ctx, "u1", food.ID, domain.CategoryPatch{Name: &name})
	require.False(t, res.Success)
	require.ErrorIs(t, res.Cause, domain.ErrCategoryAlreadyExists)

	name = "Rent"
	color := "#000000"
	res = s.Update(ctx, "u1", rent.ID, domain.CategoryPatch{Name: &name, Color: &color})
	require.True(t, res.Success, res.Error)
	require.Equal(t, rent.ID, res.Data.ID)
	require.Equal(t, "#000000", res.Data.Color)

	res = s.Update(ctx, "u2", rent.ID, domain.CategoryPatch{Color: &color})
	require.ErrorIs(t, res.Cause, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	food := s.Create(ctx, "u1", domain.CategoryForm{Name: "Food", Kind: "EXPENSE"}).Data

	require.True(t, s.Delete(ctx, "u1", food.ID).Data)

	res := s.Delete(ctx, "u1", food.ID)
	require.True(t, res.Success)
	require.False(t, res.Data)

	require.Empty(t, s.List(ctx, "u1", domain.CategoryFilter{}).Data)
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	require.True(t, s.Create(ctx, "u1", domain.CategoryForm{Name: "rent", Kind: "EXPENSE"}).Success)

	res := s.SeedDefaults(ctx, "u1")
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data, len(model.DefaultCategoryForms())-1)

	for _, c := range res.Data {
		require.True(t, c.IsDefault)
		require.Equal(t, "u1", c.OwnerID)
	}

	again := s.SeedDefaults(ctx, "u1")
	require.True(t, again.Success)
	require.Empty(t, again.Data)

	all := s.List(ctx, "u1", domain.CategoryFilter{})
	require.Len(t, all.Data, len(model.DefaultCategoryForms()))

	income := s.List(ctx, "u1", domain.CategoryFilter{Kind: domain.KindIncome})
	require.Len(t, income.Data, 3)

	require.Empty(t, s.List(ctx, "u2", domain.CategoryFilter{}).Data)
}
