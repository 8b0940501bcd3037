// Package categoryservice manages business logic layer of categories.
package categoryservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/model"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Repo provides data access layer interface needed by category service layer.
type Repo interface {
	List(ctx context.Context, ownerID string) ([]domain.Category, error)
	Get(ctx context.Context, ownerID, id string) (domain.Category, error)
	Insert(ctx context.Context, c domain.Category) error
	Replace(ctx context.Context, c domain.Category) error
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}

// Service facilitates category service layer logic.
type Service struct {
	repo  Repo
	now   func() time.Time
	newID func() string

	// mu keeps the name uniqueness check and the write together.
	mu sync.Mutex
}

// New returns category service struct to manage category bussines logic.
func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// List returns the owner's categories matching f ordered by kind and name.
func (s *Service) List(ctx context.Context, ownerID string, f domain.CategoryFilter) web.Result[[]domain.Category] {
	if ownerID == "" {
		return web.Fail[[]domain.Category](domain.ErrMissingOwner)
	}

	cats, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return web.Fail[[]domain.Category](err)
	}

	cats = model.FilterCategories(cats, f)
	model.SortCategories(cats)

	return web.OK(cats)
}

// Get returns the owner's category with the given id.
func (s *Service) Get(ctx context.Context, ownerID, id string) web.Result[domain.Category] {
	if ownerID == "" {
		return web.Fail[domain.Category](domain.ErrMissingOwner)
	}

	c, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return web.Fail[domain.Category](err)
	}

	return web.OK(c)
}

// Create validates the form and stores a new category.
// The name must be unique among the owner's categories of the same kind.
func (s *Service) Create(ctx context.Context, ownerID string, f domain.CategoryForm) web.Result[domain.Category] {
	if ownerID == "" {
		return web.Fail[domain.Category](domain.ErrMissingOwner)
	}

	if err := model.ValidateCategory(f); err != nil {
		return web.Fail[domain.Category](err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return web.Fail[domain.Category](err)
	}

	c := model.NewCategory(f, ownerID, s.newID(), s.now())

	if _, ok := model.FindCategoryByName(cats, c.Kind, c.Name); ok {
		return web.Fail[domain.Category](domain.ErrCategoryAlreadyExists)
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return web.FailWith(c, err)
	}

	return web.OK(c)
}

// Update merges patch into the stored category.
func (s *Service) Update(ctx context.Context, ownerID, id string, patch domain.CategoryPatch) web.Result[domain.Category] {
	if ownerID == "" {
		return web.Fail[domain.Category](domain.ErrMissingOwner)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return web.Fail[domain.Category](err)
	}

	f := model.PatchCategory(existing, patch)
	if err := model.ValidateCategory(f); err != nil {
		return web.Fail[domain.Category](err)
	}

	c := model.UpdateCategory(existing, f, s.now())

	cats, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return web.Fail[domain.Category](err)
	}

	if dup, ok := model.FindCategoryByName(cats, c.Kind, c.Name); ok && dup.ID != c.ID {
		return web.Fail[domain.Category](domain.ErrCategoryAlreadyExists)
	}

	if err := s.repo.Replace(ctx, c); err != nil {
		return web.FailWith(c, err)
	}

	return web.OK(c)
}

// Delete removes the category. Deleting an absent id still succeeds.
// Transactions keep referring to the category by name.
func (s *Service) Delete(ctx context.Context, ownerID, id string) web.Result[bool] {
	if ownerID == "" {
		return web.Fail[bool](domain.ErrMissingOwner)
	}

	removed, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return web.Fail[bool](err)
	}

	return web.OK(removed)
}

// SeedDefaults creates the default categories the owner does not have yet
// and returns the created ones. Seeding twice creates nothing the second time.
func (s *Service) SeedDefaults(ctx context.Context, ownerID string) web.Result[[]domain.Category] {
	if ownerID == "" {
		return web.Fail[[]domain.Category](domain.ErrMissingOwner)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return web.Fail[[]domain.Category](err)
	}

	created := make([]domain.Category, 0)
	now := s.now()

	for _, f := range model.DefaultCategoryForms() {
		c := model.NewCategory(f, ownerID, s.newID(), now)

		if _, ok := model.FindCategoryByName(cats, c.Kind, c.Name); ok {
			continue
		}

		if err := s.repo.Insert(ctx, c); err != nil {
			return web.FailWith(created, err)
		}

		cats = append(cats, c)
		created = append(created, c)
	}

	return web.OK(created)
}
