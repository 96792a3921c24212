package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var educationTable = table[*education.Education]{
	resource: education.Resource,
	name:     "education",
	columns: []string{
		"institution", "degree", "field_of_study", "location", "start_date",
		"end_date", "is_current", "description", "logo_url", "sort_order",
	},
	scan: func(row pgx.Row) (*education.Education, error) {
		e := &education.Education{}
		err := row.Scan(
			&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.Location, &e.StartDate,
			&e.EndDate, &e.IsCurrent, &e.Description, &e.LogoURL, &e.Order,
		)
		return e, err
	},
	values: func(e *education.Education) []any {
		return []any{
			e.Institution, e.Degree, e.FieldOfStudy, e.Location, e.StartDate,
			e.EndDate, e.IsCurrent, e.Description, e.LogoURL, e.Order,
		}
	},
}

func NewPostgresEducationRepo(db *pgxpool.Pool, log logger.Logger) ordering.Store[*education.Education] {
	return newTableStore(db, educationTable, log)
}
