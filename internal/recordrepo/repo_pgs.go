package recordrepo

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/pkg/dbpkg"
	"github.com/go-petr/pet-budget/pkg/errorspkg"
)

//go:embed migrations/postgres/*.sql
var migrations embed.FS

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Migrate applies the records schema to a Postgres database.
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations/postgres")
	if err != nil {
		return err
	}

	return dbpkg.Migrate(ctx, db, goose.DialectPostgres, fsys)
}

// storageErr logs err and maps it to a domain error.
func storageErr(ctx context.Context, err error) error {
	zerolog.Ctx(ctx).Error().Err(err).Send()

	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "records_pkey", "profiles_pkey":
			return errorspkg.ErrInternal
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}

// RepoPGS keeps records of one entity type in the Postgres records table.
type RepoPGS[T domain.Record] struct {
	db     dbpkg.SQLInterface
	entity string
}

// NewRepoPGS returns RepoPGS for the given entity.
func NewRepoPGS[T domain.Record](db dbpkg.SQLInterface, entity string) *RepoPGS[T] {
	return &RepoPGS[T]{
		db:     db,
		entity: entity,
	}
}

func decode[T any](ctx context.Context, raw []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("corrupt record data")
		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}

// List returns records of the owner in insertion order.
func (r *RepoPGS[T]) List(ctx context.Context, ownerID string) ([]T, error) {
	query, args, err := psql.
		Select("data").
		From("records").
		Where(sq.Eq{"entity": r.entity, "owner_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, storageErr(ctx, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(ctx, err)
	}
	defer rows.Close()

	res := make([]T, 0)

	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, storageErr(ctx, err)
		}

		rec, err := decode[T](ctx, raw)
		if err != nil {
			return nil, err
		}

		res = append(res, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(ctx, err)
	}

	return res, nil
}

// Get returns the record with the given id if it belongs to the owner.
func (r *RepoPGS[T]) Get(ctx context.Context, ownerID, id string) (T, error) {
	var zero T

	query, args, err := psql.
		Select("data").
		From("records").
		Where(sq.Eq{"entity": r.entity, "owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return zero, storageErr(ctx, err)
	}

	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return zero, domain.ErrNotFound
		}

		return zero, storageErr(ctx, err)
	}

	return decode[T](ctx, raw)
}

// Insert stores a new record.
func (r *RepoPGS[T]) Insert(ctx context.Context, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return storageErr(ctx, err)
	}

	query, args, err := psql.
		Insert("records").
		Columns("entity", "id", "owner_id", "data").
		Values(r.entity, rec.RecordID(), rec.RecordOwner(), string(data)).
		ToSql()
	if err != nil {
		return storageErr(ctx, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storageErr(ctx, err)
	}

	return nil
}

// Replace overwrites the stored record with the same id and owner.
func (r *RepoPGS[T]) Replace(ctx context.Context, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return storageErr(ctx, err)
	}

	query, args, err := psql.
		Update("records").
		Set("data", string(data)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"entity": r.entity, "owner_id": rec.RecordOwner(), "id": rec.RecordID()}).
		ToSql()
	if err != nil {
		return storageErr(ctx, err)
	}

	n, err := r.exec(ctx, query, args)
	if err != nil {
		return err
	}

	if n == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes the record and reports whether it existed.
func (r *RepoPGS[T]) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	query, args, err := psql.
		Delete("records").
		Where(sq.Eq{"entity": r.entity, "owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return false, storageErr(ctx, err)
	}

	n, err := r.exec(ctx, query, args)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// DeleteOwner removes every record of the owner and returns how many were removed.
func (r *RepoPGS[T]) DeleteOwner(ctx context.Context, ownerID string) (int, error) {
	query, args, err := psql.
		Delete("records").
		Where(sq.Eq{"entity": r.entity, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, storageErr(ctx, err)
	}

	n, err := r.exec(ctx, query, args)

	return int(n), err
}

// Owners returns the distinct owners that have records.
func (r *RepoPGS[T]) Owners(ctx context.Context) ([]string, error) {
	query, args, err := psql.
		Select("DISTINCT owner_id").
		From("records").
		Where(sq.Eq{"entity": r.entity}).
		OrderBy("owner_id").
		ToSql()
	if err != nil {
		return nil, storageErr(ctx, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(ctx, err)
	}
	defer rows.Close()

	owners := make([]string, 0)

	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return nil, storageErr(ctx, err)
		}

		owners = append(owners, o)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(ctx, err)
	}

	return owners, nil
}

func (r *RepoPGS[T]) exec(ctx context.Context, query string, args []interface{}) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageErr(ctx, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr(ctx, err)
	}

	return n, nil
}

// ProfilesPGS keeps profile documents of one kind in the Postgres profiles table.
type ProfilesPGS[T domain.Record] struct {
	db   dbpkg.SQLInterface
	kind string
}

// NewProfilesPGS returns ProfilesPGS for the given profile kind.
func NewProfilesPGS[T domain.Record](db dbpkg.SQLInterface, kind string) *ProfilesPGS[T] {
	return &ProfilesPGS[T]{
		db:   db,
		kind: kind,
	}
}

// Get returns the profile of the owner.
func (r *ProfilesPGS[T]) Get(ctx context.Context, ownerID string) (T, error) {
	var zero T

	query, args, err := psql.
		Select("data").
		From("profiles").
		Where(sq.Eq{"kind": r.kind, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return zero, storageErr(ctx, err)
	}

	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return zero, domain.ErrNotFound
		}

		return zero, storageErr(ctx, err)
	}

	return decode[T](ctx, raw)
}

// Put creates or overwrites the profile of its owner.
func (r *ProfilesPGS[T]) Put(ctx context.Context, p T) error {
	data, err := json.Marshal(p)
	if err != nil {
		return storageErr(ctx, err)
	}

	query, args, err := psql.
		Insert("profiles").
		Columns("kind", "owner_id", "data").
		Values(r.kind, p.RecordOwner(), string(data)).
		Suffix("ON CONFLICT (kind, owner_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return storageErr(ctx, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storageErr(ctx, err)
	}

	return nil
}

// Delete removes the profile of the owner.
func (r *ProfilesPGS[T]) Delete(ctx context.Context, ownerID string) error {
	query, args, err := psql.
		Delete("profiles").
		Where(sq.Eq{"kind": r.kind, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return storageErr(ctx, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storageErr(ctx, err)
	}

	return nil
}
