// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/model"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Repo provides data access layer interface needed by transaction service layer.
type Repo interface {
	List(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	Get(ctx context.Context, ownerID, id string) (domain.Transaction, error)
	Insert(ctx context.Context, tx domain.Transaction) error
	Replace(ctx context.Context, tx domain.Transaction) error
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo  Repo
	now   func() time.Time
	newID func() string
}

// New returns transaction service struct to manage transaction bussines logic.
func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// List returns the owner's transactions matching f, most recent first.
func (s *Service) List(ctx context.Context, ownerID string, f domain.TransactionFilter) web.Result[[]domain.Transaction] {
	if ownerID == "" {
		return web.Fail[[]domain.Transaction](domain.ErrMissingOwner)
	}

	txs, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return web.Fail[[]domain.Transaction](err)
	}

	txs = model.FilterTransactions(txs, f)
	model.SortTransactions(txs)

	return web.OK(txs)
}

// Get returns the owner's transaction with the given id.
func (s *Service) Get(ctx context.Context, ownerID, id string) web.Result[domain.Transaction] {
	if ownerID == "" {
		return web.Fail[domain.Transaction](domain.ErrMissingOwner)
	}

	tx, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return web.Fail[domain.Transaction](err)
	}

	return web.OK(tx)
}

// Create validates the form and stores a new transaction of the owner.
// Invalid input never reaches the repository.
func (s *Service) Create(ctx context.Context, ownerID string, f domain.TransactionForm) web.Result[domain.Transaction] {
	if ownerID == "" {
		return web.Fail[domain.Transaction](domain.ErrMissingOwner)
	}

	if err := model.ValidateTransaction(f); err != nil {
		return web.Fail[domain.Transaction](err)
	}

	tx := model.NewTransaction(f, ownerID, s.newID(), s.now())

	if err := s.repo.Insert(ctx, tx); err != nil {
		return web.FailWith(tx, err)
	}

	return web.OK(tx)
}

// Update merges patch into the stored transaction. Id, owner and creation time never change.
func (s *Service) Update(ctx context.Context, ownerID, id string, patch domain.TransactionPatch) web.Result[domain.Transaction] {
	if ownerID == "" {
		return web.Fail[domain.Transaction](domain.ErrMissingOwner)
	}

	existing, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return web.Fail[domain.Transaction](err)
	}

	f := model.PatchTransaction(existing, patch)
	if err := model.ValidateTransaction(f); err != nil {
		return web.Fail[domain.Transaction](err)
	}

	tx := model.UpdateTransaction(existing, f, s.now())

	if err := s.repo.Replace(ctx, tx); err != nil {
		return web.FailWith(tx, err)
	}

	return web.OK(tx)
}

// Delete removes the transaction. Data reports whether anything was removed;
// deleting an absent id still succeeds.
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

// Summary returns totals of the owner's transactions matching f.
func (s *Service) Summary(ctx context.Context, ownerID string, f domain.TransactionFilter) web.Result[domain.Summary] {
	res := s.List(ctx, ownerID, f)
	if !res.Success {
		return web.Fail[domain.Summary](res.Cause)
	}

	return web.OK(model.Summarize(res.Data))
}
