package settings

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const Resource = "settings"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings is the site-wide singleton. CreatedAt picks the current row if the
// store ever holds more than one.
type Settings struct {
	ID              uuid.UUID `json:"id"`
	SiteTitle       string    `json:"siteTitle"`
	SiteDescription string    `json:"siteDescription"`
	Theme           Theme     `json:"theme"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (s *Settings) SetItemID(id uuid.UUID)    { s.ID = id }
func (s *Settings) Stamp(createdAt time.Time) { s.CreatedAt = createdAt }

func (s *Settings) Validate() error {
	if s.Theme == "" {
		s.Theme = ThemeSystem
	}
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return nil
	default:
		return fmt.Errorf("theme must be one of light, dark, system; got %q", s.Theme)
	}
}
