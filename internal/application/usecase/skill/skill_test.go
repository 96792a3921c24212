package skill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func TestList_FiltersByCategory(t *testing.T) {
	ctx := context.Background()
	uc := NewSkillUseCase(memstore.NewPortfolio().Skills, event.NopPublisher{}, logger.NewNop())

	for _, in := range []Input{
		{Name: "Go", Category: "Backend", Level: 5},
		{Name: "React", Category: "Frontend", Level: 3},
		{Name: "Postgres", Category: "backend", Level: 4},
	} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	backend, err := uc.List(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, backend, 2)
	assert.Equal(t, "Go", backend[0].Name)
	assert.Equal(t, "Postgres", backend[1].Name)

	none, err := uc.List(ctx, "design")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreate_RejectsNegativeLevel(t *testing.T) {
	uc := NewSkillUseCase(memstore.NewPortfolio().Skills, event.NopPublisher{}, logger.NewNop())

	_, err := uc.Create(context.Background(), Input{Name: "Go", Level: -1})
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}
