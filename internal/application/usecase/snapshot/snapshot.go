// Package snapshot exports the whole public portfolio as one JSON document.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/award"
	"github.com/khoahotran/portfolio-api/internal/domain/certification"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/settings"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/social"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// PublicID is where the latest snapshot is stored, overwritten on every run.
const PublicID = "portfolio/snapshots/latest"

var tracer = otel.Tracer("snapshot_usecase")

type (
	AwardLister         interface{ List(context.Context) ([]*award.Award, error) }
	CertificationLister interface {
		List(context.Context) ([]*certification.Certification, error)
	}
	EducationLister  interface{ List(context.Context) ([]*education.Education, error) }
	ExperienceLister interface {
		List(context.Context) ([]experience.WithPositions, error)
	}
	SkillLister      interface{ List(context.Context, string) ([]*skill.Skill, error) }
	SocialLinkLister interface{ List(context.Context) ([]*social.Link, error) }
	SettingsReader   interface {
		Get(context.Context) (*settings.Settings, bool, error)
	}
)

// Sources are the read sides the snapshot is assembled from.
type Sources struct {
	Awards         AwardLister
	Certifications CertificationLister
	Education      EducationLister
	Experiences    ExperienceLister
	Skills         SkillLister
	SocialLinks    SocialLinkLister
	Settings       SettingsReader
}

// Document is the exported portfolio. Settings is nil until first saved.
type Document struct {
	GeneratedAt    time.Time                      `json:"generatedAt"`
	Settings       *settings.Settings             `json:"settings"`
	Awards         []*award.Award                 `json:"awards"`
	Certifications []*certification.Certification `json:"certifications"`
	Education      []*education.Education         `json:"education"`
	Experiences    []experience.WithPositions     `json:"experiences"`
	Skills         []*skill.Skill                 `json:"skills"`
	SocialLinks    []*social.Link                 `json:"socialLinks"`
}

type SnapshotUseCase struct {
	sources  Sources
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewSnapshotUseCase(sources Sources, uploader service.Uploader, log logger.Logger) *SnapshotUseCase {
	return &SnapshotUseCase{
		sources:  sources,
		uploader: uploader,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *SnapshotUseCase) Build(ctx context.Context) (*Document, error) {
	ctx, span := tracer.Start(ctx, "Build")
	defer span.End()

	doc := &Document{GeneratedAt: uc.now()}
	var err error

	if doc.Settings, _, err = uc.sources.Settings.Get(ctx); err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if doc.Awards, err = uc.sources.Awards.List(ctx); err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}
	if doc.Certifications, err = uc.sources.Certifications.List(ctx); err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	if doc.Education, err = uc.sources.Education.List(ctx); err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	if doc.Experiences, err = uc.sources.Experiences.List(ctx); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	if doc.Skills, err = uc.sources.Skills.List(ctx, ""); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	if doc.SocialLinks, err = uc.sources.SocialLinks.List(ctx); err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	return doc, nil
}

// Execute builds the document and uploads it, returning the stored URL.
func (uc *SnapshotUseCase) Execute(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	doc, err := uc.Build(ctx)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	url, err := uc.uploader.UploadRaw(ctx, bytes.NewReader(body), PublicID)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to upload portfolio snapshot", err)
		return "", err
	}

	uc.logger.Info("Portfolio snapshot uploaded",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
	)
	return url, nil
}
