package experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	Collection         = "experiences"
	PositionCollection = "positions"
)

type Input struct {
	Company     string
	Location    string
	Description string
	LogoURL     *string
	Order       int
}

func (in Input) toExperience() *experience.Experience {
	return &experience.Experience{
		Company:     in.Company,
		Location:    in.Location,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		Order:       in.Order,
	}
}

type PositionInput struct {
	Title          string
	StartDate      time.Time
	EndDate        *time.Time
	IsCurrent      bool
	Description    string
	Year           string
	EmploymentType string
	Icon           string
	Skills         []string
	Order          int
}

func (in PositionInput) toPosition() *experience.Position {
	return &experience.Position{
		Title:          in.Title,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		IsCurrent:      in.IsCurrent,
		Description:    in.Description,
		Year:           in.Year,
		EmploymentType: in.EmploymentType,
		Icon:           in.Icon,
		Skills:         in.Skills,
		Order:          in.Order,
	}
}

// ExperienceUseCase serves experiences and their nested positions.
type ExperienceUseCase struct {
	items          *collection.Service[*experience.Experience]
	positions      *collection.NestedService[*experience.Position]
	notify         collection.Notifier
	notifyPosition collection.Notifier
}

func NewExperienceUseCase(
	store ordering.Store[*experience.Experience],
	positions ordering.ChildStore[*experience.Position],
	events service.EventPublisher,
	log logger.Logger,
) *ExperienceUseCase {
	items := collection.NewService[*experience.Experience](experience.Resource, store)
	return &ExperienceUseCase{
		items:          items,
		positions:      collection.NewNestedService[*experience.Position](experience.PositionResource, experience.Resource, positions, items),
		notify:         collection.NewNotifier(Collection, events, log),
		notifyPosition: collection.NewNotifier(PositionCollection, events, log),
	}
}

// List returns every experience in display order, each carrying its ordered
// positions. Positions whose experience is gone are dropped.
func (uc *ExperienceUseCase) List(ctx context.Context) ([]experience.WithPositions, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := uc.positions.List(ctx)
	if err != nil {
		return nil, err
	}

	byParent := make(map[uuid.UUID][]*experience.Position, len(items))
	for _, p := range all {
		byParent[p.ExperienceID] = append(byParent[p.ExperienceID], p)
	}

	out := make([]experience.WithPositions, 0, len(items))
	for _, e := range items {
		positions := byParent[e.ID]
		if positions == nil {
			positions = []*experience.Position{}
		}
		out = append(out, experience.WithPositions{Experience: e, Positions: positions})
	}
	return out, nil
}

func (uc *ExperienceUseCase) Get(ctx context.Context, id uuid.UUID) (experience.WithPositions, error) {
	e, err := uc.items.Get(ctx, id)
	if err != nil {
		return experience.WithPositions{}, err
	}
	positions, err := uc.positions.ListByParent(ctx, id)
	if err != nil {
		return experience.WithPositions{}, err
	}
	return experience.WithPositions{Experience: e, Positions: positions}, nil
}

func (uc *ExperienceUseCase) Create(ctx context.Context, in Input) (*experience.Experience, error) {
	e, err := uc.items.Create(ctx, in.toExperience())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionCreated, e.ID)
	return e, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, id uuid.UUID, in Input) (*experience.Experience, error) {
	e, err := uc.items.Update(ctx, id, in.toExperience())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionUpdated, id)
	return e, nil
}

// Delete removes the experience. Its positions go with it.
func (uc *ExperienceUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Changed(ctx, service.ActionDeleted, id)
	return nil
}

func (uc *ExperienceUseCase) ListPositions(ctx context.Context, experienceID uuid.UUID) ([]*experience.Position, error) {
	return uc.positions.ListByParent(ctx, experienceID)
}

func (uc *ExperienceUseCase) CreatePosition(ctx context.Context, experienceID uuid.UUID, in PositionInput) (*experience.Position, error) {
	p, err := uc.positions.CreateUnder(ctx, experienceID, in.toPosition())
	if err != nil {
		return nil, err
	}
	uc.notifyPosition.ChildChanged(ctx, service.ActionCreated, experienceID, p.ID)
	return p, nil
}

func (uc *ExperienceUseCase) UpdatePosition(ctx context.Context, experienceID, id uuid.UUID, in PositionInput) (*experience.Position, error) {
	p, err := uc.positions.UpdateUnder(ctx, experienceID, id, in.toPosition())
	if err != nil {
		return nil, err
	}
	uc.notifyPosition.ChildChanged(ctx, service.ActionUpdated, experienceID, id)
	return p, nil
}

func (uc *ExperienceUseCase) DeletePosition(ctx context.Context, experienceID, id uuid.UUID) error {
	if err := uc.positions.DeleteUnder(ctx, experienceID, id); err != nil {
		return err
	}
	uc.notifyPosition.ChildChanged(ctx, service.ActionDeleted, experienceID, id)
	return nil
}
