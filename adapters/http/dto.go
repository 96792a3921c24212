package http

import (
	"time"

	"github.com/google/uuid"

	awardUC "github.com/khoahotran/portfolio-api/internal/application/usecase/award"
	certificationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/certification"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	settingsUC "github.com/khoahotran/portfolio-api/internal/application/usecase/settings"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	socialUC "github.com/khoahotran/portfolio-api/internal/application/usecase/social"
	"github.com/khoahotran/portfolio-api/internal/domain/award"
	"github.com/khoahotran/portfolio-api/internal/domain/certification"
	"github.com/khoahotran/portfolio-api/internal/domain/dates"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/settings"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/social"
)

func optionalDate(t *time.Time) dates.Time {
	if t == nil {
		return dates.Time{}
	}
	return dates.Of(*t)
}

func mapAll[E any, D any](items []E, fn func(E) D) []D {
	out := make([]D, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Award DTOs
type AwardRequest struct {
	Title       string     `json:"title"`
	Issuer      string     `json:"issuer"`
	Date        dates.Time `json:"date"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	URL         *string    `json:"url"`
	Order       int        `json:"order"`
}

func (r AwardRequest) ToInput() awardUC.Input {
	return awardUC.Input{
		Title:       r.Title,
		Issuer:      r.Issuer,
		Date:        r.Date.Time,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		URL:         r.URL,
		Order:       r.Order,
	}
}

type AwardDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Issuer      string     `json:"issuer"`
	Date        dates.Time `json:"date"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	URL         *string    `json:"url"`
	Order       int        `json:"order"`
}

func ToAwardDTO(a *award.Award) AwardDTO {
	return AwardDTO{
		ID:          a.ID,
		Title:       a.Title,
		Issuer:      a.Issuer,
		Date:        dates.Of(a.Date),
		Description: a.Description,
		ImageURL:    a.ImageURL,
		URL:         a.URL,
		Order:       a.Order,
	}
}

// Certification DTOs
type CertificationRequest struct {
	Title        string     `json:"title"`
	Issuer       string     `json:"issuer"`
	IssueDate    dates.Time `json:"issueDate"`
	ExpiryDate   dates.Time `json:"expiryDate"`
	CredentialID *string    `json:"credentialId"`
	Description  string     `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	URL          *string    `json:"url"`
	Order        int        `json:"order"`
}

func (r CertificationRequest) ToInput() certificationUC.Input {
	return certificationUC.Input{
		Title:        r.Title,
		Issuer:       r.Issuer,
		IssueDate:    r.IssueDate.Time,
		ExpiryDate:   r.ExpiryDate.Ptr(),
		CredentialID: r.CredentialID,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		URL:          r.URL,
		Order:        r.Order,
	}
}

type CertificationDTO struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Issuer       string     `json:"issuer"`
	IssueDate    dates.Time `json:"issueDate"`
	ExpiryDate   dates.Time `json:"expiryDate"`
	CredentialID *string    `json:"credentialId"`
	Description  string     `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	URL          *string    `json:"url"`
	Order        int        `json:"order"`
}

func ToCertificationDTO(c *certification.Certification) CertificationDTO {
	return CertificationDTO{
		ID:           c.ID,
		Title:        c.Title,
		Issuer:       c.Issuer,
		IssueDate:    dates.Of(c.IssueDate),
		ExpiryDate:   optionalDate(c.ExpiryDate),
		CredentialID: c.CredentialID,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		URL:          c.URL,
		Order:        c.Order,
	}
}

// Education DTOs

// EducationRequest accepts "field" as an older name for fieldOfStudy.
type EducationRequest struct {
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	Field        string     `json:"field"`
	Location     string     `json:"location"`
	StartDate    dates.Time `json:"startDate"`
	EndDate      dates.Time `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	Description  string     `json:"description"`
	LogoURL      *string    `json:"logoUrl"`
	Order        int        `json:"order"`
}

func (r EducationRequest) ToInput() educationUC.Input {
	field := r.FieldOfStudy
	if field == "" {
		field = r.Field
	}
	return educationUC.Input{
		Institution:  r.Institution,
		Degree:       r.Degree,
		FieldOfStudy: field,
		Location:     r.Location,
		StartDate:    r.StartDate.Time,
		EndDate:      r.EndDate.Ptr(),
		IsCurrent:    r.IsCurrent,
		Description:  r.Description,
		LogoURL:      r.LogoURL,
		Order:        r.Order,
	}
}

type EducationDTO struct {
	ID           uuid.UUID  `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	Field        string     `json:"field"`
	Location     string     `json:"location"`
	StartDate    dates.Time `json:"startDate"`
	EndDate      dates.Time `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	Description  string     `json:"description"`
	LogoURL      *string    `json:"logoUrl"`
	Order        int        `json:"order"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	return EducationDTO{
		ID:           e.ID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		Field:        e.FieldOfStudy,
		Location:     e.Location,
		StartDate:    dates.Of(e.StartDate),
		EndDate:      optionalDate(e.EndDate),
		IsCurrent:    e.IsCurrent,
		Description:  e.Description,
		LogoURL:      e.LogoURL,
		Order:        e.Order,
	}
}

// Experience DTOs
type ExperienceRequest struct {
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	LogoURL     *string `json:"logoUrl"`
	Order       int     `json:"order"`
}

func (r ExperienceRequest) ToInput() experienceUC.Input {
	return experienceUC.Input{
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		LogoURL:     r.LogoURL,
		Order:       r.Order,
	}
}

type ExperienceDTO struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logoUrl"`
	Order       int       `json:"order"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID,
		Company:     e.Company,
		Location:    e.Location,
		Description: e.Description,
		LogoURL:     e.LogoURL,
		Order:       e.Order,
	}
}

type ExperienceWithPositionsDTO struct {
	ExperienceDTO
	Positions []PositionDTO `json:"positions"`
}

// ToExperienceWithPositionsDTO always emits a positions array, empty or not.
func ToExperienceWithPositionsDTO(e experience.WithPositions) ExperienceWithPositionsDTO {
	return ExperienceWithPositionsDTO{
		ExperienceDTO: ToExperienceDTO(e.Experience),
		Positions:     mapAll(e.Positions, ToPositionDTO),
	}
}

type PositionRequest struct {
	Title          string     `json:"title"`
	StartDate      dates.Time `json:"startDate"`
	EndDate        dates.Time `json:"endDate"`
	IsCurrent      bool       `json:"isCurrent"`
	Description    string     `json:"description"`
	Year           string     `json:"year"`
	EmploymentType string     `json:"employmentType"`
	Icon           string     `json:"icon"`
	Skills         []string   `json:"skills"`
	Order          int        `json:"order"`
}

func (r PositionRequest) ToInput() experienceUC.PositionInput {
	return experienceUC.PositionInput{
		Title:          r.Title,
		StartDate:      r.StartDate.Time,
		EndDate:        r.EndDate.Ptr(),
		IsCurrent:      r.IsCurrent,
		Description:    r.Description,
		Year:           r.Year,
		EmploymentType: r.EmploymentType,
		Icon:           r.Icon,
		Skills:         r.Skills,
		Order:          r.Order,
	}
}

type PositionDTO struct {
	ID             uuid.UUID  `json:"id"`
	ExperienceID   uuid.UUID  `json:"experienceId"`
	Title          string     `json:"title"`
	StartDate      dates.Time `json:"startDate"`
	EndDate        dates.Time `json:"endDate"`
	IsCurrent      bool       `json:"isCurrent"`
	Description    string     `json:"description"`
	Year           string     `json:"year"`
	EmploymentType string     `json:"employmentType"`
	Icon           string     `json:"icon"`
	Skills         []string   `json:"skills"`
	Order          int        `json:"order"`
}

func ToPositionDTO(p *experience.Position) PositionDTO {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return PositionDTO{
		ID:             p.ID,
		ExperienceID:   p.ExperienceID,
		Title:          p.Title,
		StartDate:      dates.Of(p.StartDate),
		EndDate:        optionalDate(p.EndDate),
		IsCurrent:      p.IsCurrent,
		Description:    p.Description,
		Year:           p.Year,
		EmploymentType: p.EmploymentType,
		Icon:           p.Icon,
		Skills:         skills,
		Order:          p.Order,
	}
}

// Skill DTOs
type SkillRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	IconURL  *string `json:"iconUrl"`
	Level    int     `json:"level"`
}

func (r SkillRequest) ToInput() skillUC.Input {
	return skillUC.Input{Name: r.Name, Category: r.Category, IconURL: r.IconURL, Level: r.Level}
}

type SkillDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	IconURL  *string   `json:"iconUrl"`
	Level    int       `json:"level"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{ID: s.ID, Name: s.Name, Category: s.Category, IconURL: s.IconURL, Level: s.Level}
}

// Social link DTOs
type SocialLinkRequest struct {
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
	IconURL  *string `json:"iconUrl"`
	IsActive bool    `json:"isActive"`
	Order    int     `json:"order"`
}

func (r SocialLinkRequest) ToInput() socialUC.Input {
	return socialUC.Input{Platform: r.Platform, URL: r.URL, IconURL: r.IconURL, IsActive: r.IsActive, Order: r.Order}
}

type SocialLinkDTO struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
	IconURL  *string   `json:"iconUrl"`
	IsActive bool      `json:"isActive"`
	Order    int       `json:"order"`
}

func ToSocialLinkDTO(l *social.Link) SocialLinkDTO {
	return SocialLinkDTO{ID: l.ID, Platform: l.Platform, URL: l.URL, IconURL: l.IconURL, IsActive: l.IsActive, Order: l.Order}
}

// Settings DTOs
type SettingsRequest struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	Theme           string `json:"theme"`
}

func (r SettingsRequest) ToInput() settingsUC.Input {
	return settingsUC.Input{SiteTitle: r.SiteTitle, SiteDescription: r.SiteDescription, Theme: r.Theme}
}

type SettingsDTO struct {
	ID              uuid.UUID  `json:"id"`
	SiteTitle       string     `json:"siteTitle"`
	SiteDescription string     `json:"siteDescription"`
	Theme           string     `json:"theme"`
	CreatedAt       dates.Time `json:"createdAt"`
}

func ToSettingsDTO(s *settings.Settings) SettingsDTO {
	return SettingsDTO{
		ID:              s.ID,
		SiteTitle:       s.SiteTitle,
		SiteDescription: s.SiteDescription,
		Theme:           string(s.Theme),
		CreatedAt:       dates.Of(s.CreatedAt),
	}
}
