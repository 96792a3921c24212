package certification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const Resource = "certification"

type Certification struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Issuer       string     `json:"issuer"`
	IssueDate    time.Time  `json:"issueDate"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	CredentialID *string    `json:"credentialId"`
	Description  string     `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	URL          *string    `json:"url"`
	Order        int        `json:"order"`
}

func (c *Certification) ItemID() uuid.UUID      { return c.ID }
func (c *Certification) SetItemID(id uuid.UUID) { c.ID = id }
func (c *Certification) SortOrder() int         { return c.Order }

func (c *Certification) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Issuer == "" {
		return errors.New("issuer is required")
	}
	if c.IssueDate.IsZero() {
		return errors.New("issueDate is required")
	}
	return nil
}

