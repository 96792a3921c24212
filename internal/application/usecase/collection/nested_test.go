package collection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type nestedFixture struct {
	experiences *Service[*experience.Experience]
	positions   *NestedService[*experience.Position]
}

func newNestedFixture() nestedFixture {
	store := memstore.NewPortfolio()
	experiences := NewService[*experience.Experience](experience.Resource, store.Experiences)
	return nestedFixture{
		experiences: experiences,
		positions:   NewNestedService[*experience.Position](experience.PositionResource, experience.Resource, store.Positions, experiences),
	}
}

func position(title string, order int) *experience.Position {
	return &experience.Position{Title: title, StartDate: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), Order: order}
}

func positionTitles(items []*experience.Position) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

func (f nestedFixture) experience(t *testing.T, company string) *experience.Experience {
	t.Helper()
	e, err := f.experiences.Create(context.Background(), &experience.Experience{Company: company})
	require.NoError(t, err)
	return e
}

func TestNested_ListIsScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	f := newNestedFixture()
	e1 := f.experience(t, "Acme")
	e2 := f.experience(t, "Globex")

	_, err := f.positions.CreateUnder(ctx, e1.ID, position("Senior", 2))
	require.NoError(t, err)
	_, err = f.positions.CreateUnder(ctx, e2.ID, position("Elsewhere", 0))
	require.NoError(t, err)
	_, err = f.positions.CreateUnder(ctx, e1.ID, position("Junior", 1))
	require.NoError(t, err)

	got, err := f.positions.ListByParent(ctx, e1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Junior", "Senior"}, positionTitles(got))
	for _, p := range got {
		assert.Equal(t, e1.ID, p.ExperienceID)
	}
}

func TestNested_CreateUnderMissingParentIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newNestedFixture()

	_, err := f.positions.CreateUnder(ctx, uuid.New(), position("Orphan", 0))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	all, err := f.positions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNested_ListOfMissingParentIsEmpty(t *testing.T) {
	got, err := newNestedFixture().positions.ListByParent(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNested_DeletedParentHidesChildren(t *testing.T) {
	ctx := context.Background()
	f := newNestedFixture()
	e := f.experience(t, "Acme")
	p, err := f.positions.CreateUnder(ctx, e.ID, position("Engineer", 0))
	require.NoError(t, err)

	require.NoError(t, f.experiences.Delete(ctx, e.ID))

	got, err := f.positions.ListByParent(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.positions.Get(ctx, p.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestNested_UpdateKeepsParentAndReplacesFields(t *testing.T) {
	ctx := context.Background()
	f := newNestedFixture()
	e := f.experience(t, "Acme")
	orig := position("Engineer", 3)
	orig.Skills = []string{"go", "sql"}
	p, err := f.positions.CreateUnder(ctx, e.ID, orig)
	require.NoError(t, err)

	moved := position("Staff Engineer", 0)
	moved.ExperienceID = uuid.New()
	updated, err := f.positions.UpdateUnder(ctx, e.ID, p.ID, moved)
	require.NoError(t, err)
	assert.Equal(t, e.ID, updated.ExperienceID)

	got, err := f.positions.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Title)
	assert.Equal(t, e.ID, got.ExperienceID)
	assert.Equal(t, []string{}, got.Skills)
	assert.Equal(t, 0, got.Order)
}

func TestNested_ChildOfAnotherParentIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newNestedFixture()
	e1 := f.experience(t, "Acme")
	e2 := f.experience(t, "Globex")
	p, err := f.positions.CreateUnder(ctx, e1.ID, position("Engineer", 0))
	require.NoError(t, err)

	_, err = f.positions.UpdateUnder(ctx, e2.ID, p.ID, position("Hijacked", 0))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = f.positions.DeleteUnder(ctx, e2.ID, p.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	got, err := f.positions.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.Title)
}

func TestNested_DeleteUnder(t *testing.T) {
	ctx := context.Background()
	f := newNestedFixture()
	e := f.experience(t, "Acme")
	p, err := f.positions.CreateUnder(ctx, e.ID, position("Engineer", 0))
	require.NoError(t, err)

	require.NoError(t, f.positions.DeleteUnder(ctx, e.ID, p.ID))

	err = f.positions.DeleteUnder(ctx, e.ID, p.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
