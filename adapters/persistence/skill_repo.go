package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var skillTable = table[*skill.Skill]{
	resource: skill.Resource,
	name:     "skills",
	columns:  []string{"name", "category", "icon_url", "level"},
	scan: func(row pgx.Row) (*skill.Skill, error) {
		s := &skill.Skill{}
		err := row.Scan(&s.ID, &s.Name, &s.Category, &s.IconURL, &s.Level)
		return s, err
	},
	values: func(s *skill.Skill) []any {
		return []any{s.Name, s.Category, s.IconURL, s.Level}
	},
}

func NewPostgresSkillRepo(db *pgxpool.Pool, log logger.Logger) ordering.Store[*skill.Skill] {
	return newTableStore(db, skillTable, log)
}
