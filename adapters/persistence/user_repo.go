package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type PostgresUserRepo struct {
	db *pgxpool.Pool
}

var _ user.Repository = (*PostgresUserRepo)(nil)

func NewPostgresUserRepo(db *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (r *PostgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, name, password_hash
		FROM users
		WHERE lower(email) = lower($1)
	`
	u := &user.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", email)
		}
		return nil, apperror.NewStoreUnavailable("failed to query user", err)
	}
	return u, nil
}

// Upsert creates or updates the owner account keyed by email.
func (r *PostgresUserRepo) Upsert(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash
	`
	if _, err := r.db.Exec(ctx, query, u.ID, u.Email, u.Name, u.PasswordHash); err != nil {
		return apperror.NewStoreUnavailable("failed to upsert user", err)
	}
	return nil
}
