package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/internal/domain/settings"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresSettingsRepo struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewPostgresSettingsRepo(db *pgxpool.Pool, log logger.Logger) ordering.SingletonStore[*settings.Settings] {
	return &postgresSettingsRepo{db: db, log: log}
}

func (r *postgresSettingsRepo) Current(ctx context.Context) (*settings.Settings, bool, error) {
	query := `
		SELECT id, site_title, site_description, theme, created_at
		FROM site_settings
		ORDER BY created_at DESC, seq DESC
		LIMIT 1
	`
	s := &settings.Settings{}
	var theme string
	err := r.db.QueryRow(ctx, query).Scan(&s.ID, &s.SiteTitle, &s.SiteDescription, &theme, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, apperror.NewStoreUnavailable("failed to query settings", err)
	}
	s.Theme = settings.Theme(theme)
	return s, true, nil
}

// ReplaceAll swaps the singleton row in one transaction. The EXCLUSIVE lock
// serializes concurrent replaces while readers keep seeing the committed row.
func (r *postgresSettingsRepo) ReplaceAll(ctx context.Context, s *settings.Settings) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewStoreUnavailable("failed to begin settings transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Warn("Settings rollback failed", zap.Error(rbErr))
		}
	}()

	if _, err := tx.Exec(ctx, `LOCK TABLE site_settings IN EXCLUSIVE MODE`); err != nil {
		return apperror.NewStoreUnavailable("failed to lock settings", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM site_settings`); err != nil {
		return apperror.NewStoreUnavailable("failed to clear settings", err)
	}

	sql, args, err := psql.Insert("site_settings").
		Columns("id", "site_title", "site_description", "theme", "created_at").
		Values(s.ID, s.SiteTitle, s.SiteDescription, string(s.Theme), s.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build settings insert", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStoreUnavailable("failed to insert settings", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewStoreUnavailable("failed to commit settings", err)
	}
	return nil
}
