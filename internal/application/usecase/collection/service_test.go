package collection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/internal/domain/award"
	"github.com/khoahotran/portfolio-api/internal/domain/certification"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func awardAt(title string, order int) *award.Award {
	return &award.Award{Title: title, Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), Order: order}
}

func titles(items []*award.Award) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.Title
	}
	return out
}

func newAwardService() *Service[*award.Award] {
	return NewService[*award.Award](award.Resource, memstore.NewPortfolio().Awards)
}

func TestList_OrdersByOrderThenArrival(t *testing.T) {
	ctx := context.Background()
	svc := newAwardService()

	for _, a := range []*award.Award{awardAt("c", 2), awardAt("a1", 1), awardAt("z", 0), awardAt("a2", 1), awardAt("b", 1)} {
		_, err := svc.Create(ctx, a)
		require.NoError(t, err)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a1", "a2", "b", "c"}, titles(got))
}

func TestList_EmptyCollectionIsEmptySlice(t *testing.T) {
	got, err := newAwardService().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreate_AssignsFreshIDAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	svc := newAwardService()
	fixed := uuid.MustParse("7b0e4b52-7f43-4a5c-9d36-9d7f6a3b2c11")
	svc.WithIDFunc(func() uuid.UUID { return fixed })

	in := awardAt("Hackathon", 7)
	in.ID = uuid.New()
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, fixed, created.ID)
	assert.Equal(t, 7, created.Order)

	stored, err := svc.Get(ctx, fixed)
	require.NoError(t, err)
	assert.Equal(t, "Hackathon", stored.Title)
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc := newAwardService()

	_, err := svc.Create(context.Background(), &award.Award{Title: "no date"})
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdate_ReplacesInsteadOfMerging(t *testing.T) {
	ctx := context.Background()
	svc := newAwardService()

	url := "https://example.com/award"
	orig := awardAt("Original", 4)
	orig.Description = "details"
	orig.URL = &url
	created, err := svc.Create(ctx, orig)
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, awardAt("Renamed", 0))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 0, got.Order)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.URL)
}

func TestUpdate_MissingIsNotFound(t *testing.T) {
	_, err := newAwardService().Update(context.Background(), uuid.New(), awardAt("x", 0))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdate_MissingWinsOverInvalidBody(t *testing.T) {
	svc := newAwardService()
	_, err := svc.Update(context.Background(), uuid.New(), &award.Award{})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	created, err := svc.Create(context.Background(), awardAt("x", 0))
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), created.ID, &award.Award{})
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestDelete_MissingIsNotFoundAndLeavesCollection(t *testing.T) {
	ctx := context.Background()
	svc := newAwardService()
	_, err := svc.Create(ctx, awardAt("kept", 0))
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDelete_DoesNotRenumberSiblings(t *testing.T) {
	ctx := context.Background()
	svc := newAwardService()
	a, err := svc.Create(ctx, awardAt("a", 10))
	require.NoError(t, err)
	_, err = svc.Create(ctx, awardAt("b", 20))
	require.NoError(t, err)
	_, err = svc.Create(ctx, awardAt("c", 30))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 20, got[0].Order)
	assert.Equal(t, 30, got[1].Order)
}

func TestAwardLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newAwardService()

	x, err := svc.Create(ctx, awardAt("X", 1))
	require.NoError(t, err)
	z, err := svc.Create(ctx, awardAt("Z", 0))
	require.NoError(t, err)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "X"}, titles(got))

	require.NoError(t, svc.Delete(ctx, z.ID))

	got, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, x.ID, got[0].ID)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	svc := newAwardService()
	a, err := svc.Create(ctx, awardAt("a", 0))
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreFailureSurfacesAsStoreUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAwardService().List(ctx)
	assert.Equal(t, apperror.KindStoreUnavailable, apperror.KindOf(err))
}

func TestCertification_NullableExpiryIsPreserved(t *testing.T) {
	ctx := context.Background()
	svc := NewService[*certification.Certification](certification.Resource, memstore.NewPortfolio().Certifications)

	expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)
	issued := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	with, err := svc.Create(ctx, &certification.Certification{Title: "CKA", Issuer: "CNCF", IssueDate: issued, ExpiryDate: &expiry})
	require.NoError(t, err)
	without, err := svc.Create(ctx, &certification.Certification{Title: "Go", Issuer: "Self", IssueDate: issued})
	require.NoError(t, err)

	got, err := svc.Get(ctx, without.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ExpiryDate)

	got, err = svc.Get(ctx, with.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiryDate)
	assert.True(t, expiry.Equal(*got.ExpiryDate))
}

func TestSkills_ListInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewService[*skill.Skill](skill.Resource, memstore.NewPortfolio().Skills)
	for _, name := range []string{"Go", "Postgres", "Kafka"} {
		_, err := svc.Create(ctx, &skill.Skill{Name: name, Category: "backend"})
		require.NoError(t, err)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Go", got[0].Name)
	assert.Equal(t, "Postgres", got[1].Name)
	assert.Equal(t, "Kafka", got[2].Name)
}
