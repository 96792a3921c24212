package settings

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/internal/domain/settings"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const Collection = "settings"

type Input struct {
	SiteTitle       string
	SiteDescription string
	Theme           string
}

type SettingsUseCase struct {
	current *collection.SingletonService[*settings.Settings]
	notify  collection.Notifier
}

func NewSettingsUseCase(store ordering.SingletonStore[*settings.Settings], events service.EventPublisher, log logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		current: collection.NewSingletonService[*settings.Settings](settings.Resource, store),
		notify:  collection.NewNotifier(Collection, events, log),
	}
}

// Get returns the current settings, or found=false when none were ever saved.
func (uc *SettingsUseCase) Get(ctx context.Context) (s *settings.Settings, found bool, err error) {
	return uc.current.Get(ctx)
}

func (uc *SettingsUseCase) Replace(ctx context.Context, in Input) (*settings.Settings, error) {
	s, err := uc.current.Replace(ctx, &settings.Settings{
		SiteTitle:       in.SiteTitle,
		SiteDescription: in.SiteDescription,
		Theme:           settings.Theme(in.Theme),
	})
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionReplaced, s.ID)
	return s, nil
}
