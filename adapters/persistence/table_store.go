package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// table maps one entity onto its Postgres table. columns excludes id, which
// is always selected first and passed first to scan.
type table[T ordering.Item] struct {
	resource string
	name     string
	columns  []string
	scan     func(row pgx.Row) (T, error)
	values   func(item T) []any

	// parentColumn and parentResource are set for child tables only.
	parentColumn   string
	parentResource string
}

func (t table[T]) selectColumns() []string {
	return append([]string{"id"}, t.columns...)
}

// tableStore is an ordering.Store over one table. Rows come back in seq order,
// which is insertion order.
type tableStore[T ordering.Item] struct {
	db  *pgxpool.Pool
	t   table[T]
	log logger.Logger
}

func newTableStore[T ordering.Item](db *pgxpool.Pool, t table[T], log logger.Logger) *tableStore[T] {
	return &tableStore[T]{db: db, t: t, log: log}
}

func (s *tableStore[T]) storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.NewConflict(s.t.resource, "id", pgErr.Detail)
		case pgForeignKeyViolation:
			return apperror.NewNotFound(s.t.parentResource, pgErr.Detail)
		}
	}
	s.log.Warn("Store call failed", zap.String("table", s.t.name), zap.String("op", op), zap.Error(err))
	return apperror.NewStoreUnavailable(s.t.resource+" "+op+" failed", err)
}

func (s *tableStore[T]) query(ctx context.Context, b sq.SelectBuilder) ([]T, error) {
	sql, args, err := b.OrderBy("seq").ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build "+s.t.name+" select", err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, s.storeErr("list", err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := s.t.scan(rows)
		if err != nil {
			return nil, s.storeErr("scan", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, s.storeErr("list", err)
	}
	return items, nil
}

func (s *tableStore[T]) List(ctx context.Context) ([]T, error) {
	return s.query(ctx, psql.Select(s.t.selectColumns()...).From(s.t.name))
}

func (s *tableStore[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	sql, args, err := psql.Select(s.t.selectColumns()...).From(s.t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return zero, apperror.NewInternal("failed to build "+s.t.name+" get", err)
	}
	item, err := s.t.scan(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, apperror.NewNotFound(s.t.resource, id.String())
		}
		return zero, s.storeErr("get", err)
	}
	return item, nil
}

func (s *tableStore[T]) Insert(ctx context.Context, item T) error {
	values := append([]any{item.ItemID()}, s.t.values(item)...)
	sql, args, err := psql.Insert(s.t.name).Columns(s.t.selectColumns()...).Values(values...).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build "+s.t.name+" insert", err)
	}
	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return s.storeErr("insert", err)
	}
	return nil
}

// Replace overwrites every column of the row in one UPDATE.
func (s *tableStore[T]) Replace(ctx context.Context, item T) error {
	values := s.t.values(item)
	set := make(map[string]any, len(s.t.columns))
	for i, col := range s.t.columns {
		set[col] = values[i]
	}
	sql, args, err := psql.Update(s.t.name).SetMap(set).Where(sq.Eq{"id": item.ItemID()}).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build "+s.t.name+" update", err)
	}
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return s.storeErr("update", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(s.t.resource, item.ItemID().String())
	}
	return nil
}

func (s *tableStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete(s.t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build "+s.t.name+" delete", err)
	}
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return s.storeErr("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(s.t.resource, id.String())
	}
	return nil
}

// childStore adds parent-scoped listing to a tableStore.
type childStore[C ordering.Child] struct {
	*tableStore[C]
}

func newChildStore[C ordering.Child](db *pgxpool.Pool, t table[C], log logger.Logger) *childStore[C] {
	return &childStore[C]{tableStore: newTableStore(db, t, log)}
}

func (s *childStore[C]) ListByParent(ctx context.Context, parentID uuid.UUID) ([]C, error) {
	return s.query(ctx, psql.Select(s.t.selectColumns()...).From(s.t.name).Where(sq.Eq{s.t.parentColumn: parentID}))
}
