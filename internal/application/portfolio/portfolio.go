// Package portfolio assembles the content use cases over either store
// backend. Both the API server and the snapshot worker start from here.
package portfolio

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	awardUC "github.com/khoahotran/portfolio-api/internal/application/usecase/award"
	certificationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/certification"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	settingsUC "github.com/khoahotran/portfolio-api/internal/application/usecase/settings"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/snapshot"
	socialUC "github.com/khoahotran/portfolio-api/internal/application/usecase/social"
	"github.com/khoahotran/portfolio-api/internal/domain/award"
	"github.com/khoahotran/portfolio-api/internal/domain/certification"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/internal/domain/settings"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/social"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type Stores struct {
	Awards         ordering.Store[*award.Award]
	Certifications ordering.Store[*certification.Certification]
	Education      ordering.Store[*education.Education]
	Experiences    ordering.Store[*experience.Experience]
	Positions      ordering.ChildStore[*experience.Position]
	Skills         ordering.Store[*skill.Skill]
	SocialLinks    ordering.Store[*social.Link]
	Settings       ordering.SingletonStore[*settings.Settings]
	Users          user.Repository
}

func PostgresStores(db *pgxpool.Pool, log logger.Logger) Stores {
	return Stores{
		Awards:         persistence.NewPostgresAwardRepo(db, log),
		Certifications: persistence.NewPostgresCertificationRepo(db, log),
		Education:      persistence.NewPostgresEducationRepo(db, log),
		Experiences:    persistence.NewPostgresExperienceRepo(db, log),
		Positions:      persistence.NewPostgresPositionRepo(db, log),
		Skills:         persistence.NewPostgresSkillRepo(db, log),
		SocialLinks:    persistence.NewPostgresSocialLinkRepo(db, log),
		Settings:       persistence.NewPostgresSettingsRepo(db, log),
		Users:          persistence.NewPostgresUserRepo(db),
	}
}

func MemoryStores(p *memstore.Portfolio) Stores {
	return Stores{
		Awards:         p.Awards,
		Certifications: p.Certifications,
		Education:      p.Education,
		Experiences:    p.Experiences,
		Positions:      p.Positions,
		Skills:         p.Skills,
		SocialLinks:    p.SocialLinks,
		Settings:       p.Settings,
		Users:          p.Users,
	}
}

type UseCases struct {
	Awards         *awardUC.AwardUseCase
	Certifications *certificationUC.CertificationUseCase
	Education      *educationUC.EducationUseCase
	Experiences    *experienceUC.ExperienceUseCase
	Skills         *skillUC.SkillUseCase
	SocialLinks    *socialUC.SocialLinkUseCase
	Settings       *settingsUC.SettingsUseCase
}

// NewUseCases builds every content use case. events may be nil.
func NewUseCases(s Stores, events service.EventPublisher, log logger.Logger) UseCases {
	return UseCases{
		Awards:         awardUC.NewAwardUseCase(s.Awards, events, log),
		Certifications: certificationUC.NewCertificationUseCase(s.Certifications, events, log),
		Education:      educationUC.NewEducationUseCase(s.Education, events, log),
		Experiences:    experienceUC.NewExperienceUseCase(s.Experiences, s.Positions, events, log),
		Skills:         skillUC.NewSkillUseCase(s.Skills, events, log),
		SocialLinks:    socialUC.NewSocialLinkUseCase(s.SocialLinks, events, log),
		Settings:       settingsUC.NewSettingsUseCase(s.Settings, events, log),
	}
}

// SnapshotSources exposes the read side of u to the snapshot export.
func (u UseCases) SnapshotSources() snapshot.Sources {
	return snapshot.Sources{
		Awards:         u.Awards,
		Certifications: u.Certifications,
		Education:      u.Education,
		Experiences:    u.Experiences,
		Skills:         u.Skills,
		SocialLinks:    u.SocialLinks,
		Settings:       u.Settings,
	}
}
