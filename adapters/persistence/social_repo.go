package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/internal/domain/social"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var socialTable = table[*social.Link]{
	resource: social.Resource,
	name:     "social_links",
	columns:  []string{"platform", "url", "icon_url", "is_active", "sort_order"},
	scan: func(row pgx.Row) (*social.Link, error) {
		l := &social.Link{}
		err := row.Scan(&l.ID, &l.Platform, &l.URL, &l.IconURL, &l.IsActive, &l.Order)
		return l, err
	},
	values: func(l *social.Link) []any {
		return []any{l.Platform, l.URL, l.IconURL, l.IsActive, l.Order}
	},
}

func NewPostgresSocialLinkRepo(db *pgxpool.Pool, log logger.Logger) ordering.Store[*social.Link] {
	return newTableStore(db, socialTable, log)
}
