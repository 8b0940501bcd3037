// Package budgetservice manages business logic layer of budgets.
package budgetservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/model"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Repo provides data access layer interface needed by budget service layer.
type Repo interface {
	List(ctx context.Context, ownerID string) ([]domain.Budget, error)
	Get(ctx context.Context, ownerID, id string) (domain.Budget, error)
	Insert(ctx context.Context, b domain.Budget) error
	Replace(ctx context.Context, b domain.Budget) error
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	Owners(ctx context.Context) ([]string, error)
}

// TransactionRepo provides the transactions budgets are computed from.
type TransactionRepo interface {
	List(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}

// Service facilitates budget service layer logic.
type Service struct {
	repo  Repo
	txs   TransactionRepo
	now   func() time.Time
	newID func() string
}

// New returns budget service struct to manage budget bussines logic.
func New(repo Repo, txs TransactionRepo) *Service {
	return &Service{
		repo:  repo,
		txs:   txs,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// List returns the owner's budgets matching f, most recent first.
func (s *Service) List(ctx context.Context, ownerID string, f domain.BudgetFilter) web.Result[[]domain.Budget] {
	if ownerID == "" {
		return web.Fail[[]domain.Budget](domain.ErrMissingOwner)
	}

	budgets, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return web.Fail[[]domain.Budget](err)
	}

	budgets = model.FilterBudgets(budgets, f)
	model.SortBudgets(budgets)

	return web.OK(budgets)
}

// Get returns the owner's budget with the given id.
func (s *Service) Get(ctx context.Context, ownerID, id string) web.Result[domain.Budget] {
	if ownerID == "" {
		return web.Fail[domain.Budget](domain.ErrMissingOwner)
	}

	b, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return web.Fail[domain.Budget](err)
	}

	return web.OK(b)
}

// Create validates the form and stores a new budget.
func (s *Service) Create(ctx context.Context, ownerID string, f domain.BudgetForm) web.Result[domain.Budget] {
	if ownerID == "" {
		return web.Fail[domain.Budget](domain.ErrMissingOwner)
	}

	if err := model.ValidateBudget(f); err != nil {
		return web.Fail[domain.Budget](err)
	}

	b := model.NewBudget(f, ownerID, s.newID(), s.now())

	if err := s.repo.Insert(ctx, b); err != nil {
		return web.FailWith(b, err)
	}

	return web.OK(b)
}

// Update merges patch into the stored budget and validates the result as a whole,
// so moving only one of the dates is still checked against the other.
func (s *Service) Update(ctx context.Context, ownerID, id string, patch domain.BudgetPatch) web.Result[domain.Budget] {
	if ownerID == "" {
		return web.Fail[domain.Budget](domain.ErrMissingOwner)
	}

	existing, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return web.Fail[domain.Budget](err)
	}

	f := model.PatchBudget(existing, patch)
	if err := model.ValidateBudget(f); err != nil {
		return web.Fail[domain.Budget](err)
	}

	b := model.UpdateBudget(existing, f, s.now())

	if err := s.repo.Replace(ctx, b); err != nil {
		return web.FailWith(b, err)
	}

	return web.OK(b)
}

// Delete removes the budget. Deleting an absent id still succeeds.
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

// RefreshSpent recomputes Spent of every budget of the owner from its expenses
// and returns the budgets that changed.
func (s *Service) RefreshSpent(ctx context.Context, ownerID string) web.Result[[]domain.Budget] {
	if ownerID == "" {
		return web.Fail[[]domain.Budget](domain.ErrMissingOwner)
	}

	budgets, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return web.Fail[[]domain.Budget](err)
	}

	txs, err := s.txs.List(ctx, ownerID)
	if err != nil {
		return web.Fail[[]domain.Budget](err)
	}

	changed := make([]domain.Budget, 0)
	now := s.now()

	for _, b := range budgets {
		spent := model.BudgetSpent(b, txs)
		if spent.Equal(b.Spent) {
			continue
		}

		b.Spent = spent
		b.UpdatedAt = now

		if err := s.repo.Replace(ctx, b); err != nil {
			return web.FailWith(changed, err)
		}

		changed = append(changed, b)
	}

	return web.OK(changed)
}

// RefreshAll runs RefreshSpent for every owner that has budgets
// and returns the number of budgets changed.
func (s *Service) RefreshAll(ctx context.Context) (int, error) {
	l := zerolog.Ctx(ctx)

	owners, err := s.repo.Owners(ctx)
	if err != nil {
		return 0, err
	}

	var n int

	for _, owner := range owners {
		res := s.RefreshSpent(ctx, owner)
		if !res.Success {
			l.Warn().Err(res.Cause).Str("owner_id", owner).Msg("cannot refresh budgets")
			continue
		}

		n += len(res.Data)
	}

	return n, nil
}
