package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type countingLimiter struct {
	max    int
	counts map[string]int
}

func (l *countingLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.counts[key]++
	return l.counts[key] <= l.max, nil
}

func (l *countingLimiter) Reset(_ context.Context, key string) error {
	delete(l.counts, key)
	return nil
}

func newLogin(t *testing.T, limiter AttemptLimiter) (*LoginUseCase, *auth.JWTService) {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	users := memstore.NewUsers()
	users.Put(&user.User{Email: "owner@example.com", PasswordHash: hash})

	jwtSvc := auth.NewJWTService("test-secret", time.Hour, "portfolio-test")
	return NewLoginUseCase(users, jwtSvc, limiter, logger.NewNop()), jwtSvc
}

func TestLogin_IssuesToken(t *testing.T) {
	uc, jwtSvc := newLogin(t, nil)

	out, err := uc.Execute(context.Background(), LoginInput{Email: "Owner@Example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = jwtSvc.ValidateToken(out.AccessToken)
	assert.NoError(t, err)
}

func TestLogin_BadCredentialsAreUnauthorized(t *testing.T) {
	uc, _ := newLogin(t, nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "wrong"})
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	_, err = uc.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "correct horse"})
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestLogin_LimiterBlocksAndResets(t *testing.T) {
	limiter := &countingLimiter{max: 2, counts: map[string]int{}}
	uc, _ := newLogin(t, limiter)
	ctx := context.Background()

	_, err := uc.Execute(ctx, LoginInput{Email: "owner@example.com", Password: "wrong"})
	require.Error(t, err)
	_, err = uc.Execute(ctx, LoginInput{Email: "owner@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Empty(t, limiter.counts)

	for i := 0; i < 2; i++ {
		_, err = uc.Execute(ctx, LoginInput{Email: "owner@example.com", Password: "wrong"})
		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	}
	_, err = uc.Execute(ctx, LoginInput{Email: "owner@example.com", Password: "correct horse"})
	assert.Equal(t, apperror.KindTooManyRequests, apperror.KindOf(err))
}
