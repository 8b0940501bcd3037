package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/kvrepo"
	"github.com/go-petr/pet-budget/internal/objectstore"
	"github.com/go-petr/pet-budget/internal/recordrepo"
	"github.com/go-petr/pet-budget/internal/recordstore"
	"github.com/go-petr/pet-budget/pkg/configpkg"
	"github.com/go-petr/pet-budget/pkg/dbpkg"
)

// MemoryBucket names the in-process object store used without GCS_BUCKET.
const MemoryBucket = "pet-budget"

// Repos holds the data access layer of every entity.
type Repos struct {
	Transactions recordrepo.Repo[domain.Transaction]
	Categories   recordrepo.Repo[domain.Category]
	Budgets      recordrepo.Repo[domain.Budget]
	Users        recordrepo.ProfileRepo[domain.UserProfile]
	Companies    recordrepo.ProfileRepo[domain.CompanyProfile]

	db *sql.DB
}

// Close releases the database behind the repos, if any.
func (r *Repos) Close() error {
	if r.db == nil {
		return nil
	}

	return r.db.Close()
}

// OpenRepos builds the repos for the configured storage mode.
//
// Local mode keeps every entity in one key-value namespace, in memory or in
// a SQLite file. Remote mode stores records in Postgres.
func OpenRepos(ctx context.Context, config configpkg.Config) (*Repos, error) {
	l := zerolog.Ctx(ctx)

	switch config.StorageMode {
	case configpkg.StorageLocal:
		var (
			ns recordstore.Namespace
			db *sql.DB
		)

		switch config.LocalNamespace {
		case configpkg.NamespaceMemory:
			ns = kvrepo.NewMemory(config.NamespaceQuotaBytes)
		case configpkg.NamespaceSQLite:
			var err error

			db, err = kvrepo.OpenSQLite(ctx, config.SQLitePath)
			if err != nil {
				return nil, fmt.Errorf("open sqlite namespace: %w", err)
			}

			ns = kvrepo.NewSQLite(db)
		default:
			return nil, fmt.Errorf("unknown local namespace %q", config.LocalNamespace)
		}

		l.Info().Str("namespace", config.LocalNamespace).Msg("using local storage")

		store := recordstore.New(ns)

		return &Repos{
			Transactions: recordrepo.NewLocal[domain.Transaction](store, domain.EntityTransactions),
			Categories:   recordrepo.NewLocal[domain.Category](store, domain.EntityCategories),
			Budgets:      recordrepo.NewLocal[domain.Budget](store, domain.EntityBudgets),
			Users:        recordrepo.NewLocalProfiles[domain.UserProfile](store, domain.ProfileUser),
			Companies:    recordrepo.NewLocalProfiles[domain.CompanyProfile](store, domain.ProfileCompany),
			db:           db,
		}, nil

	case configpkg.StorageRemote:
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}

		if err := recordrepo.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}

		l.Info().Str("driver", config.DBDriver).Msg("using remote storage")

		return &Repos{
			Transactions: recordrepo.NewRepoPGS[domain.Transaction](db, domain.EntityTransactions),
			Categories:   recordrepo.NewRepoPGS[domain.Category](db, domain.EntityCategories),
			Budgets:      recordrepo.NewRepoPGS[domain.Budget](db, domain.EntityBudgets),
			Users:        recordrepo.NewProfilesPGS[domain.UserProfile](db, domain.ProfileUser),
			Companies:    recordrepo.NewProfilesPGS[domain.CompanyProfile](db, domain.ProfileCompany),
			db:           db,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage mode %q", config.StorageMode)
}

// ObjectStore keeps uploaded images and logos.
type ObjectStore interface {
	Put(ctx context.Context, name string, u domain.Upload) (string, error)
	Get(ctx context.Context, ref string) ([]byte, error)
	Delete(ctx context.Context, ref string) error
}

// OpenObjects returns the GCS bucket when one is configured and an in-process store otherwise.
func OpenObjects(ctx context.Context, config configpkg.Config) (ObjectStore, func() error, error) {
	if config.GCSBucket == "" {
		zerolog.Ctx(ctx).Warn().Msg("GCS_BUCKET is not set, uploads are kept in memory")
		return objectstore.NewMemory(MemoryBucket), func() error { return nil }, nil
	}

	gcs, err := objectstore.NewGCS(ctx, config.GCSBucket)
	if err != nil {
		return nil, nil, errors.Join(errors.New("cannot create gcs client"), err)
	}

	return gcs, gcs.Close, nil
}
