// Package accountservice manages business logic layer of accounts.
//
// An account is everything stored for one owner. Purging it removes every
// record, both profiles and the objects the profiles point to.
package accountservice

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/pkg/web"
)

// RecordRepo provides owner wide removal of one entity type.
type RecordRepo interface {
	DeleteOwner(ctx context.Context, ownerID string) (int, error)
}

// UserRepo provides data access layer interface for user profiles.
type UserRepo interface {
	Get(ctx context.Context, ownerID string) (domain.UserProfile, error)
	Delete(ctx context.Context, ownerID string) error
}

// CompanyRepo provides data access layer interface for company profiles.
type CompanyRepo interface {
	Get(ctx context.Context, ownerID string) (domain.CompanyProfile, error)
	Delete(ctx context.Context, ownerID string) error
}

// ObjectRepo removes uploaded objects.
type ObjectRepo interface {
	Delete(ctx context.Context, ref string) error
}

// Service facilitates account service layer logic.
type Service struct {
	transactions RecordRepo
	categories   RecordRepo
	budgets      RecordRepo
	users        UserRepo
	companies    CompanyRepo
	objects      ObjectRepo
}

// New returns account service struct to manage account bussines logic.
func New(transactions, categories, budgets RecordRepo, users UserRepo, companies CompanyRepo, objects ObjectRepo) *Service {
	return &Service{
		transactions: transactions,
		categories:   categories,
		budgets:      budgets,
		users:        users,
		companies:    companies,
		objects:      objects,
	}
}

// Purge deletes all data of the owner. Entity types are purged concurrently;
// on failure the report counts what was removed before it.
func (s *Service) Purge(ctx context.Context, ownerID string) web.Result[domain.PurgeReport] {
	if ownerID == "" {
		return web.Fail[domain.PurgeReport](domain.ErrMissingOwner)
	}

	var report domain.PurgeReport

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		report.Transactions, err = s.transactions.DeleteOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		report.Categories, err = s.categories.DeleteOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		report.Budgets, err = s.budgets.DeleteOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		report.Profiles, report.Objects, err = s.purgeProfiles(gctx, ownerID)
		return err
	})

	if err := g.Wait(); err != nil {
		return web.FailWith(report, err)
	}

	return web.OK(report)
}

func (s *Service) purgeProfiles(ctx context.Context, ownerID string) (profiles, objects int, err error) {
	var refs []string

	user, err := s.users.Get(ctx, ownerID)
	switch {
	case err == nil:
		refs = append(refs, user.ImageRef)
		profiles++
	case !errors.Is(err, domain.ErrNotFound):
		return profiles, objects, err
	}

	company, err := s.companies.Get(ctx, ownerID)
	switch {
	case err == nil:
		refs = append(refs, company.LogoRef)
		profiles++
	case !errors.Is(err, domain.ErrNotFound):
		return profiles, objects, err
	}

	for _, ref := range refs {
		if ref == "" {
			continue
		}

		if err := s.objects.Delete(ctx, ref); err != nil {
			return profiles, objects, err
		}

		objects++
	}

	if err := s.users.Delete(ctx, ownerID); err != nil {
		return profiles, objects, err
	}

	if err := s.companies.Delete(ctx, ownerID); err != nil {
		return profiles, objects, err
	}

	return profiles, objects, nil
}
