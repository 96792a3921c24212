package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const Collection = "education"

type Input struct {
	Institution  string
	Degree       string
	FieldOfStudy string
	Location     string
	StartDate    time.Time
	EndDate      *time.Time
	IsCurrent    bool
	Description  string
	LogoURL      *string
	Order        int
}

func (in Input) toEducation() *education.Education {
	return &education.Education{
		Institution:  in.Institution,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		IsCurrent:    in.IsCurrent,
		Description:  in.Description,
		LogoURL:      in.LogoURL,
		Order:        in.Order,
	}
}

type EducationUseCase struct {
	items  *collection.Service[*education.Education]
	notify collection.Notifier
}

func NewEducationUseCase(store ordering.Store[*education.Education], events service.EventPublisher, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{
		items:  collection.NewService[*education.Education](education.Resource, store),
		notify: collection.NewNotifier(Collection, events, log),
	}
}

func (uc *EducationUseCase) List(ctx context.Context) ([]*education.Education, error) {
	return uc.items.List(ctx)
}

func (uc *EducationUseCase) Get(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return uc.items.Get(ctx, id)
}

func (uc *EducationUseCase) Create(ctx context.Context, in Input) (*education.Education, error) {
	e, err := uc.items.Create(ctx, in.toEducation())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionCreated, e.ID)
	return e, nil
}

func (uc *EducationUseCase) Update(ctx context.Context, id uuid.UUID, in Input) (*education.Education, error) {
	e, err := uc.items.Update(ctx, id, in.toEducation())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionUpdated, id)
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Changed(ctx, service.ActionDeleted, id)
	return nil
}
