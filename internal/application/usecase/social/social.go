package social

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/internal/domain/social"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const Collection = "social-links"

type Input struct {
	Platform string
	URL      string
	IconURL  *string
	IsActive bool
	Order    int
}

func (in Input) toLink() *social.Link {
	return &social.Link{
		Platform: in.Platform,
		URL:      in.URL,
		IconURL:  in.IconURL,
		IsActive: in.IsActive,
		Order:    in.Order,
	}
}

type SocialLinkUseCase struct {
	items  *collection.Service[*social.Link]
	notify collection.Notifier
}

func NewSocialLinkUseCase(store ordering.Store[*social.Link], events service.EventPublisher, log logger.Logger) *SocialLinkUseCase {
	return &SocialLinkUseCase{
		items:  collection.NewService[*social.Link](social.Resource, store),
		notify: collection.NewNotifier(Collection, events, log),
	}
}

func (uc *SocialLinkUseCase) List(ctx context.Context) ([]*social.Link, error) {
	return uc.items.List(ctx)
}

func (uc *SocialLinkUseCase) Get(ctx context.Context, id uuid.UUID) (*social.Link, error) {
	return uc.items.Get(ctx, id)
}

func (uc *SocialLinkUseCase) Create(ctx context.Context, in Input) (*social.Link, error) {
	l, err := uc.items.Create(ctx, in.toLink())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionCreated, l.ID)
	return l, nil
}

func (uc *SocialLinkUseCase) Update(ctx context.Context, id uuid.UUID, in Input) (*social.Link, error) {
	l, err := uc.items.Update(ctx, id, in.toLink())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionUpdated, id)
	return l, nil
}

func (uc *SocialLinkUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Changed(ctx, service.ActionDeleted, id)
	return nil
}
