package experience

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	Resource         = "experience"
	PositionResource = "position"
)

// Experience is an employer. Its roles are Positions, listed separately.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logoUrl"`
	Order       int       `json:"order"`
}

func (e *Experience) ItemID() uuid.UUID      { return e.ID }
func (e *Experience) SetItemID(id uuid.UUID) { e.ID = id }
func (e *Experience) SortOrder() int         { return e.Order }

func (e *Experience) Validate() error {
	if e.Company == "" {
		return errors.New("company is required")
	}
	return nil
}

type Position struct {
	ID             uuid.UUID  `json:"id"`
	ExperienceID   uuid.UUID  `json:"experienceId"`
	Title          string     `json:"title"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	IsCurrent      bool       `json:"isCurrent"`
	Description    string     `json:"description"`
	Year           string     `json:"year"`
	EmploymentType string     `json:"employmentType"`
	Icon           string     `json:"icon"`
	Skills         []string   `json:"skills"`
	Order          int        `json:"order"`
}

func (p *Position) ItemID() uuid.UUID        { return p.ID }
func (p *Position) SetItemID(id uuid.UUID)   { p.ID = id }
func (p *Position) SortOrder() int           { return p.Order }
func (p *Position) ParentID() uuid.UUID      { return p.ExperienceID }
func (p *Position) SetParentID(id uuid.UUID) { p.ExperienceID = id }

func (p *Position) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.StartDate.IsZero() {
		return errors.New("startDate is required")
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return nil
}

// WithPositions is an experience together with its ordered roles.
type WithPositions struct {
	*Experience
	Positions []*Position `json:"positions"`
}
