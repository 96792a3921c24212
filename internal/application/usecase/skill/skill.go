package skill

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const Collection = "skills"

type Input struct {
	Name     string
	Category string
	IconURL  *string
	Level    int
}

func (in Input) toSkill() *skill.Skill {
	return &skill.Skill{
		Name:     in.Name,
		Category: in.Category,
		IconURL:  in.IconURL,
		Level:    in.Level,
	}
}

type SkillUseCase struct {
	items  *collection.Service[*skill.Skill]
	notify collection.Notifier
}

func NewSkillUseCase(store ordering.Store[*skill.Skill], events service.EventPublisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{
		items:  collection.NewService[*skill.Skill](skill.Resource, store),
		notify: collection.NewNotifier(Collection, events, log),
	}
}

// List returns skills in insertion order. A non-empty category keeps only
// skills of that category, compared case-insensitively.
func (uc *SkillUseCase) List(ctx context.Context, category string) ([]*skill.Skill, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return items, nil
	}
	filtered := make([]*skill.Skill, 0, len(items))
	for _, s := range items {
		if strings.EqualFold(s.Category, category) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (uc *SkillUseCase) Get(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	return uc.items.Get(ctx, id)
}

func (uc *SkillUseCase) Create(ctx context.Context, in Input) (*skill.Skill, error) {
	s, err := uc.items.Create(ctx, in.toSkill())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionCreated, s.ID)
	return s, nil
}

func (uc *SkillUseCase) Update(ctx context.Context, id uuid.UUID, in Input) (*skill.Skill, error) {
	s, err := uc.items.Update(ctx, id, in.toSkill())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionUpdated, id)
	return s, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Changed(ctx, service.ActionDeleted, id)
	return nil
}
