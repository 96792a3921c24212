package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var experienceTable = table[*experience.Experience]{
	resource: experience.Resource,
	name:     "experiences",
	columns:  []string{"company", "location", "description", "logo_url", "sort_order"},
	scan: func(row pgx.Row) (*experience.Experience, error) {
		e := &experience.Experience{}
		err := row.Scan(&e.ID, &e.Company, &e.Location, &e.Description, &e.LogoURL, &e.Order)
		return e, err
	},
	values: func(e *experience.Experience) []any {
		return []any{e.Company, e.Location, e.Description, e.LogoURL, e.Order}
	},
}

// positionTable rows are removed with their experience by ON DELETE CASCADE.
var positionTable = table[*experience.Position]{
	resource: experience.PositionResource,
	name:     "experience_positions",
	columns: []string{
		"experience_id", "title", "start_date", "end_date", "is_current", "description",
		"year_label", "employment_type", "icon", "skills", "sort_order",
	},
	scan: func(row pgx.Row) (*experience.Position, error) {
		p := &experience.Position{}
		err := row.Scan(
			&p.ID, &p.ExperienceID, &p.Title, &p.StartDate, &p.EndDate, &p.IsCurrent, &p.Description,
			&p.Year, &p.EmploymentType, &p.Icon, &p.Skills, &p.Order,
		)
		if err == nil && p.Skills == nil {
			p.Skills = []string{}
		}
		return p, err
	},
	values: func(p *experience.Position) []any {
		return []any{
			p.ExperienceID, p.Title, p.StartDate, p.EndDate, p.IsCurrent, p.Description,
			p.Year, p.EmploymentType, p.Icon, p.Skills, p.Order,
		}
	},
	parentColumn:   "experience_id",
	parentResource: experience.Resource,
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, log logger.Logger) ordering.Store[*experience.Experience] {
	return newTableStore(db, experienceTable, log)
}

func NewPostgresPositionRepo(db *pgxpool.Pool, log logger.Logger) ordering.ChildStore[*experience.Position] {
	return newChildStore(db, positionTable, log)
}
