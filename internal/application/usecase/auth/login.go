package auth

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// AttemptLimiter throttles repeated sign-in attempts per key.
type AttemptLimiter interface {
	// Allow counts an attempt and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	limiter  AttemptLimiter
	logger   logger.Logger
}

// NewLoginUseCase builds the owner sign-in flow. limiter may be nil.
func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, limiter AttemptLimiter, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		limiter:  limiter,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	key := strings.ToLower(strings.TrimSpace(input.Email))
	if uc.limiter != nil {
		ok, err := uc.limiter.Allow(ctx, key)
		if err != nil {
			// Limiter outages do not lock the owner out.
			uc.logger.Warn("Login limiter unavailable", zap.Error(err))
		} else if !ok {
			err := apperror.NewTooManyRequests("too many login attempts")
			span.RecordError(err)
			return nil, err
		}
	}

	u, err := uc.userRepo.FindByEmail(ctx, key)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewUnauthorized("unknown email", nil)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		err := apperror.NewUnauthorized("incorrect password", nil)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	if uc.limiter != nil {
		if err := uc.limiter.Reset(ctx, key); err != nil {
			uc.logger.Warn("Failed to reset login attempts", zap.Error(err))
		}
	}
	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &LoginOutput{AccessToken: token}, nil
}
