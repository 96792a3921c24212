package award

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/internal/domain/award"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const Collection = "awards"

type Input struct {
	Title       string
	Issuer      string
	Date        time.Time
	Description string
	ImageURL    *string
	URL         *string
	Order       int
}

func (in Input) toAward() *award.Award {
	return &award.Award{
		Title:       in.Title,
		Issuer:      in.Issuer,
		Date:        in.Date,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		URL:         in.URL,
		Order:       in.Order,
	}
}

type AwardUseCase struct {
	items  *collection.Service[*award.Award]
	notify collection.Notifier
}

func NewAwardUseCase(store ordering.Store[*award.Award], events service.EventPublisher, log logger.Logger) *AwardUseCase {
	return &AwardUseCase{
		items:  collection.NewService[*award.Award](award.Resource, store),
		notify: collection.NewNotifier(Collection, events, log),
	}
}

func (uc *AwardUseCase) List(ctx context.Context) ([]*award.Award, error) {
	return uc.items.List(ctx)
}

func (uc *AwardUseCase) Get(ctx context.Context, id uuid.UUID) (*award.Award, error) {
	return uc.items.Get(ctx, id)
}

func (uc *AwardUseCase) Create(ctx context.Context, in Input) (*award.Award, error) {
	a, err := uc.items.Create(ctx, in.toAward())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionCreated, a.ID)
	return a, nil
}

func (uc *AwardUseCase) Update(ctx context.Context, id uuid.UUID, in Input) (*award.Award, error) {
	a, err := uc.items.Update(ctx, id, in.toAward())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionUpdated, id)
	return a, nil
}

func (uc *AwardUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Changed(ctx, service.ActionDeleted, id)
	return nil
}
