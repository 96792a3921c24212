package social

import (
	"errors"

	"github.com/google/uuid"
)

const Resource = "social link"

type Link struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
	IconURL  *string   `json:"iconUrl"`
	IsActive bool      `json:"isActive"`
	Order    int       `json:"order"`
}

func (l *Link) ItemID() uuid.UUID      { return l.ID }
func (l *Link) SetItemID(id uuid.UUID) { l.ID = id }
func (l *Link) SortOrder() int         { return l.Order }

func (l *Link) Validate() error {
	if l.Platform == "" {
		return errors.New("platform is required")
	}
	if l.URL == "" {
		return errors.New("url is required")
	}
	return nil
}
