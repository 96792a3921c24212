package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/award"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var awardTable = table[*award.Award]{
	resource: award.Resource,
	name:     "awards",
	columns:  []string{"title", "issuer", "awarded_at", "description", "image_url", "url", "sort_order"},
	scan: func(row pgx.Row) (*award.Award, error) {
		a := &award.Award{}
		err := row.Scan(&a.ID, &a.Title, &a.Issuer, &a.Date, &a.Description, &a.ImageURL, &a.URL, &a.Order)
		return a, err
	},
	values: func(a *award.Award) []any {
		return []any{a.Title, a.Issuer, a.Date, a.Description, a.ImageURL, a.URL, a.Order}
	},
}

func NewPostgresAwardRepo(db *pgxpool.Pool, log logger.Logger) ordering.Store[*award.Award] {
	return newTableStore(db, awardTable, log)
}
