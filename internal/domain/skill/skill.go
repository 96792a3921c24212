package skill

import (
	"errors"

	"github.com/google/uuid"
)

const Resource = "skill"

// Skill has no display order of its own: skills tie at zero, so listings keep
// insertion order and the display page groups them by Category.
type Skill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	IconURL  *string   `json:"iconUrl"`
	Level    int       `json:"level"`
}

func (s *Skill) ItemID() uuid.UUID      { return s.ID }
func (s *Skill) SetItemID(id uuid.UUID) { s.ID = id }
func (s *Skill) SortOrder() int         { return 0 }

func (s *Skill) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Level < 0 {
		return errors.New("level must not be negative")
	}
	return nil
}
