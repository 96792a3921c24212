package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	GinContextKeyOwnerID       = "ownerID"
	GinContextKeyCorrelationID = "correlationID"
	HeaderCorrelationID        = "X-Correlation-ID"
)

// AuthMiddleware admits requests bearing a valid owner token. Rejections go
// through ErrorMiddleware like every other handler failure.
func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			fail(c, "Authorization header is required", apperror.NewUnauthorized("missing authorization header", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			fail(c, "Invalid token format", apperror.NewUnauthorized("authorization header is not a bearer token", nil))
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			log.Debug("Rejected bearer token", zap.Error(err), zap.String("correlation_id", GetCorrelationID(c)))
			fail(c, "Invalid or expired token", err)
			c.Abort()
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)
		c.Next()
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	return ownerIDUUID, ok
}

// CorrelationIDMiddleware reuses the caller's X-Correlation-ID or mints one.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderCorrelationID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyCorrelationID, id)
		c.Header(HeaderCorrelationID, id)
		c.Next()
	}
}

func GetCorrelationID(c *gin.Context) string {
	return c.GetString(GinContextKeyCorrelationID)
}

func RequestLoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if ownerID, ok := GetOwnerIDFromGinContext(c); ok {
			fields = append(fields, zap.String("owner_id", ownerID.String()))
		}
		log.Info("request completed", fields...)
	}
}

// TimeoutMiddleware bounds the request context. Store calls observe it;
// the handler itself is not preempted.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// TracePropagationMiddleware continues a trace started by the caller.
func TracePropagationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// ErrorMeta is attached to a gin error to give the client-facing message.
type ErrorMeta struct {
	Message string
}

// fail records err for ErrorMiddleware with the static message clients see.
func fail(c *gin.Context, message string, err error) {
	_ = c.Error(err).SetMeta(ErrorMeta{Message: message})
}

// ErrorMiddleware turns the last handler error into {"error": message}.
// Content failures are flattened to 500 unless detailedStatus is set; auth
// failures always keep their status. The cause is logged, never returned.
func ErrorMiddleware(log logger.Logger, detailedStatus bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		ginErr := c.Errors.Last()
		err := ginErr.Err

		message := "internal server error"
		if meta, ok := ginErr.Meta.(ErrorMeta); ok {
			message = meta.Message
		}

		kind := apperror.KindOf(err)
		status := http.StatusInternalServerError
		if detailedStatus || kind == apperror.KindUnauthorized || kind == apperror.KindTooManyRequests {
			status = apperror.ToHTTPStatus(err)
		}

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("kind", string(kind)),
			zap.Int("status", status),
		}
		if status >= http.StatusInternalServerError {
			log.Error(message, err, fields...)
		} else {
			log.Warn(message, append(fields, zap.Error(err))...)
		}

		c.AbortWithStatusJSON(status, gin.H{"error": message})
	}
}
