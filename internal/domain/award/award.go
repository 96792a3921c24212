package award

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const Resource = "award"

type Award struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Issuer      string    `json:"issuer"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	URL         *string   `json:"url"`
	Order       int       `json:"order"`
}

func (a *Award) ItemID() uuid.UUID      { return a.ID }
func (a *Award) SetItemID(id uuid.UUID) { a.ID = id }
func (a *Award) SortOrder() int         { return a.Order }

func (a *Award) Validate() error {
	if a.Title == "" {
		return errors.New("title is required")
	}
	if a.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}
