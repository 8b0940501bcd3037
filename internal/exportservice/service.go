// Package exportservice exports the data of an owner as CSV and as a JSON backup.
package exportservice

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/model"
	"github.com/go-petr/pet-budget/pkg/web"
)

// TransactionRepo lists transactions of an owner.
type TransactionRepo interface {
	List(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}

// CategoryRepo lists categories of an owner.
type CategoryRepo interface {
	List(ctx context.Context, ownerID string) ([]domain.Category, error)
}

// BudgetRepo lists budgets of an owner.
type BudgetRepo interface {
	List(ctx context.Context, ownerID string) ([]domain.Budget, error)
}

// UserRepo returns the user profile of an owner.
type UserRepo interface {
	Get(ctx context.Context, ownerID string) (domain.UserProfile, error)
}

// CompanyRepo returns the company profile of an owner.
type CompanyRepo interface {
	Get(ctx context.Context, ownerID string) (domain.CompanyProfile, error)
}

// Service facilitates export logic.
type Service struct {
	transactions TransactionRepo
	categories   CategoryRepo
	budgets      BudgetRepo
	users        UserRepo
	companies    CompanyRepo
	now          func() time.Time
}

// New returns export service.
func New(transactions TransactionRepo, categories CategoryRepo, budgets BudgetRepo, users UserRepo, companies CompanyRepo) *Service {
	return &Service{
		transactions: transactions,
		categories:   categories,
		budgets:      budgets,
		users:        users,
		companies:    companies,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var csvHeader = []string{
	"date", "type", "amount", "category", "subcategory",
	"description", "payment_method", "reference", "tags",
}

// WriteTransactionsCSV writes the owner's transactions matching f to w, most recent first.
func (s *Service) WriteTransactionsCSV(ctx context.Context, ownerID string, f domain.TransactionFilter, w io.Writer) error {
	if ownerID == "" {
		return domain.ErrMissingOwner
	}

	txs, err := s.transactions.List(ctx, ownerID)
	if err != nil {
		return err
	}

	txs = model.FilterTransactions(txs, f)
	model.SortTransactions(txs)

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range txs {
		row := []string{
			t.Date.String(),
			string(t.Kind),
			t.Amount.StringFixed(2),
			t.Category,
			t.Subcategory,
			t.Description,
			string(t.PaymentMethod),
			t.Reference,
			strings.Join(t.Tags, ";"),
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// Backup collects every record and both profiles of the owner.
func (s *Service) Backup(ctx context.Context, ownerID string) web.Result[domain.Backup] {
	if ownerID == "" {
		return web.Fail[domain.Backup](domain.ErrMissingOwner)
	}

	b := domain.Backup{
		Version:    domain.BackupVersion,
		OwnerID:    ownerID,
		ExportedAt: s.now(),
	}

	var err error

	if b.Transactions, err = s.transactions.List(ctx, ownerID); err != nil {
		return web.Fail[domain.Backup](err)
	}

	model.SortTransactions(b.Transactions)

	if b.Categories, err = s.categories.List(ctx, ownerID); err != nil {
		return web.Fail[domain.Backup](err)
	}

	model.SortCategories(b.Categories)

	if b.Budgets, err = s.budgets.List(ctx, ownerID); err != nil {
		return web.Fail[domain.Backup](err)
	}

	model.SortBudgets(b.Budgets)

	user, err := s.users.Get(ctx, ownerID)
	switch {
	case err == nil:
		b.UserProfile = &user
	case !errors.Is(err, domain.ErrNotFound):
		return web.Fail[domain.Backup](err)
	}

	company, err := s.companies.Get(ctx, ownerID)
	switch {
	case err == nil:
		b.CompanyProfile = &company
	case !errors.Is(err, domain.ErrNotFound):
		return web.Fail[domain.Backup](err)
	}

	return web.OK(b)
}
