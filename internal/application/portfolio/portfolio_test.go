package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/memstore"
	awardUC "github.com/khoahotran/portfolio-api/internal/application/usecase/award"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	settingsUC "github.com/khoahotran/portfolio-api/internal/application/usecase/settings"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/snapshot"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func TestSnapshotOverMemoryStores(t *testing.T) {
	ctx := context.Background()
	uc := NewUseCases(MemoryStores(memstore.NewPortfolio()), nil, logger.NewNop())

	_, err := uc.Awards.Create(ctx, awardUC.Input{Title: "Hackathon", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	exp, err := uc.Experiences.Create(ctx, experienceUC.Input{Company: "Acme"})
	require.NoError(t, err)
	_, err = uc.Experiences.CreatePosition(ctx, exp.ID, experienceUC.PositionInput{Title: "Engineer", StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = uc.Settings.Replace(ctx, settingsUC.Input{SiteTitle: "Portfolio"})
	require.NoError(t, err)

	doc, err := snapshot.NewSnapshotUseCase(uc.SnapshotSources(), nil, logger.NewNop()).Build(ctx)
	require.NoError(t, err)

	require.Len(t, doc.Awards, 1)
	require.Len(t, doc.Experiences, 1)
	assert.Len(t, doc.Experiences[0].Positions, 1)
	require.NotNil(t, doc.Settings)
	assert.Equal(t, "Portfolio", doc.Settings.SiteTitle)
	assert.Empty(t, doc.Skills)
}
