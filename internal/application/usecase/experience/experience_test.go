package experience

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.ContentEvent
}

func (p *recordingPublisher) PublishContentChange(_ context.Context, ev service.ContentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func newUseCase() (*ExperienceUseCase, *recordingPublisher) {
	store := memstore.NewPortfolio()
	pub := &recordingPublisher{}
	return NewExperienceUseCase(store.Experiences, store.Positions, pub, logger.NewNop()), pub
}

func role(title string, order int) PositionInput {
	return PositionInput{Title: title, StartDate: time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC), Order: order}
}

func TestList_EmbedsOrderedPositions(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	later, err := uc.Create(ctx, Input{Company: "Later", Order: 2})
	require.NoError(t, err)
	first, err := uc.Create(ctx, Input{Company: "First", Order: 1})
	require.NoError(t, err)

	_, err = uc.CreatePosition(ctx, first.ID, role("Lead", 1))
	require.NoError(t, err)
	_, err = uc.CreatePosition(ctx, first.ID, role("Engineer", 0))
	require.NoError(t, err)

	got, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "First", got[0].Company)
	require.Len(t, got[0].Positions, 2)
	assert.Equal(t, "Engineer", got[0].Positions[0].Title)
	assert.Equal(t, "Lead", got[0].Positions[1].Title)

	assert.Equal(t, later.ID, got[1].ID)
	assert.NotNil(t, got[1].Positions)
	assert.Empty(t, got[1].Positions)
}

func TestDelete_RemovesPositions(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	e, err := uc.Create(ctx, Input{Company: "Acme"})
	require.NoError(t, err)
	_, err = uc.CreatePosition(ctx, e.ID, role("Engineer", 0))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, e.ID))

	positions, err := uc.ListPositions(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, positions)

	_, err = uc.Get(ctx, e.ID)
	assert.Error(t, err)
}

func TestWrites_PublishContentEvents(t *testing.T) {
	ctx := context.Background()
	uc, pub := newUseCase()

	e, err := uc.Create(ctx, Input{Company: "Acme"})
	require.NoError(t, err)
	p, err := uc.CreatePosition(ctx, e.ID, role("Engineer", 0))
	require.NoError(t, err)
	require.NoError(t, uc.DeletePosition(ctx, e.ID, p.ID))

	_, err = uc.CreatePosition(ctx, uuid.New(), role("Orphan", 0))
	require.Error(t, err)

	require.Len(t, pub.events, 3)
	assert.Equal(t, Collection, pub.events[0].Collection)
	assert.Equal(t, service.ActionCreated, pub.events[0].Action)
	assert.Nil(t, pub.events[0].ParentID)

	assert.Equal(t, PositionCollection, pub.events[1].Collection)
	require.NotNil(t, pub.events[1].ParentID)
	assert.Equal(t, e.ID, *pub.events[1].ParentID)
	assert.Equal(t, service.ActionDeleted, pub.events[2].Action)
	assert.False(t, pub.events[2].OccurredAt.IsZero())
}
