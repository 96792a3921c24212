package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// Pinger is a backing service whose reachability shows up in /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function, e.g. a redis client's Ping, to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	checks map[string]Pinger
	log    logger.Logger
}

func NewHealthHandler(checks map[string]Pinger, log logger.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, log: log}
}

// Health answers 200 with status UP when every dependency responds and 503
// with status DOWN otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	deps := make(map[string]string, len(h.checks))
	status, code := "UP", http.StatusOK
	for name, p := range h.checks {
		if err := p.Ping(c.Request.Context()); err != nil {
			h.log.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "DOWN"
			status, code = "DOWN", http.StatusServiceUnavailable
			continue
		}
		deps[name] = "UP"
	}
	c.JSON(code, gin.H{"status": status, "dependencies": deps})
}
