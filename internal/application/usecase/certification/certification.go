package certification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/internal/domain/certification"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const Collection = "certifications"

type Input struct {
	Title        string
	Issuer       string
	IssueDate    time.Time
	ExpiryDate   *time.Time
	CredentialID *string
	Description  string
	ImageURL     *string
	URL          *string
	Order        int
}

func (in Input) toCertification() *certification.Certification {
	return &certification.Certification{
		Title:        in.Title,
		Issuer:       in.Issuer,
		IssueDate:    in.IssueDate,
		ExpiryDate:   in.ExpiryDate,
		CredentialID: in.CredentialID,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		URL:          in.URL,
		Order:        in.Order,
	}
}

type CertificationUseCase struct {
	items  *collection.Service[*certification.Certification]
	notify collection.Notifier
}

func NewCertificationUseCase(store ordering.Store[*certification.Certification], events service.EventPublisher, log logger.Logger) *CertificationUseCase {
	return &CertificationUseCase{
		items:  collection.NewService[*certification.Certification](certification.Resource, store),
		notify: collection.NewNotifier(Collection, events, log),
	}
}

func (uc *CertificationUseCase) List(ctx context.Context) ([]*certification.Certification, error) {
	return uc.items.List(ctx)
}

func (uc *CertificationUseCase) Get(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	return uc.items.Get(ctx, id)
}

func (uc *CertificationUseCase) Create(ctx context.Context, in Input) (*certification.Certification, error) {
	c, err := uc.items.Create(ctx, in.toCertification())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionCreated, c.ID)
	return c, nil
}

func (uc *CertificationUseCase) Update(ctx context.Context, id uuid.UUID, in Input) (*certification.Certification, error) {
	c, err := uc.items.Update(ctx, id, in.toCertification())
	if err != nil {
		return nil, err
	}
	uc.notify.Changed(ctx, service.ActionUpdated, id)
	return c, nil
}

func (uc *CertificationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Changed(ctx, service.ActionDeleted, id)
	return nil
}
