package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/award"
	"github.com/khoahotran/portfolio-api/internal/domain/certification"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/settings"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/social"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// Portfolio is the full set of in-memory stores, with experience deletes
// cascading to positions.
type Portfolio struct {
	Awards         *Collection[*award.Award]
	Certifications *Collection[*certification.Certification]
	Education      *Collection[*education.Education]
	Experiences    *Collection[*experience.Experience]
	Positions      *Children[*experience.Position]
	Skills         *Collection[*skill.Skill]
	SocialLinks    *Collection[*social.Link]
	Settings       *Singleton[*settings.Settings]
	Users          *Users
}

func NewPortfolio() *Portfolio {
	p := &Portfolio{
		Awards:         NewCollection(award.Resource, ShallowCopy[award.Award]),
		Certifications: NewCollection(certification.Resource, ShallowCopy[certification.Certification]),
		Education:      NewCollection(education.Resource, ShallowCopy[education.Education]),
		Experiences:    NewCollection(experience.Resource, ShallowCopy[experience.Experience]),
		Positions:      NewChildren(experience.PositionResource, clonePosition),
		Skills:         NewCollection(skill.Resource, ShallowCopy[skill.Skill]),
		SocialLinks:    NewCollection(social.Resource, ShallowCopy[social.Link]),
		Settings:       NewSingleton(settings.Resource, ShallowCopy[settings.Settings]),
		Users:          NewUsers(),
	}
	p.Experiences.OnDelete(p.Positions.DeleteByParent)
	return p
}

func clonePosition(p *experience.Position) *experience.Position {
	c := *p
	c.Skills = slices.Clone(p.Skills)
	return &c
}

// Users is an in-memory user.Repository keyed by lower-cased email.
type Users struct {
	mu    sync.RWMutex
	byKey map[string]*user.User
}

var _ user.Repository = (*Users)(nil)

func NewUsers() *Users {
	return &Users{byKey: make(map[string]*user.User)}
}

// Put stores u, replacing any user with the same email.
func (r *Users) Put(u *user.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	c := *u
	r.byKey[strings.ToLower(u.Email)] = &c
}

func (r *Users) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if err := alive(ctx, "user"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byKey[strings.ToLower(email)]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	c := *u
	return &c, nil
}
