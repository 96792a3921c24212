package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/certification"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var certificationTable = table[*certification.Certification]{
	resource: certification.Resource,
	name:     "certifications",
	columns: []string{
		"title", "issuer", "issue_date", "expiry_date", "credential_id",
		"description", "image_url", "url", "sort_order",
	},
	scan: func(row pgx.Row) (*certification.Certification, error) {
		c := &certification.Certification{}
		err := row.Scan(
			&c.ID, &c.Title, &c.Issuer, &c.IssueDate, &c.ExpiryDate, &c.CredentialID,
			&c.Description, &c.ImageURL, &c.URL, &c.Order,
		)
		return c, err
	},
	values: func(c *certification.Certification) []any {
		return []any{
			c.Title, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID,
			c.Description, c.ImageURL, c.URL, c.Order,
		}
	},
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, log logger.Logger) ordering.Store[*certification.Certification] {
	return newTableStore(db, certificationTable, log)
}
