package education

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const Resource = "education"

// Education is one degree or program. EndDate is nil while IsCurrent is set,
// though the two are not cross-checked.
type Education struct {
	ID           uuid.UUID  `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	Description  string     `json:"description"`
	LogoURL      *string    `json:"logoUrl"`
	Order        int        `json:"order"`
}

func (e *Education) ItemID() uuid.UUID      { return e.ID }
func (e *Education) SetItemID(id uuid.UUID) { e.ID = id }
func (e *Education) SortOrder() int         { return e.Order }

func (e *Education) Validate() error {
	if e.Institution == "" {
		return errors.New("institution is required")
	}
	if e.Degree == "" {
		return errors.New("degree is required")
	}
	if e.StartDate.IsZero() {
		return errors.New("startDate is required")
	}
	return nil
}
