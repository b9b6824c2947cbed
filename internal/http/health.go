package http

import (
	"context"
	"net/http"
	"time"

	"github.com/redmonkez12/adventure-api/internal/httputil"
	"github.com/redmonkez12/adventure-api/internal/logging"
)

// StorePinger reports whether the persistence layer is reachable.
// Implemented by database.HealthChecker.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and store-health endpoints
type HealthHandler struct {
	store     StorePinger
	startedAt time.Time
}

func NewHealthHandler(store StorePinger) *HealthHandler {
	return &HealthHandler{
		store:     store,
		startedAt: time.Now(),
	}
}

// Healthz reports process liveness and uptime in seconds
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]any{
		"ok":     true,
		"uptime": int64(time.Since(h.startedAt).Seconds()),
	}, http.StatusOK)
}

// DBHealthz pings the store; unreachable means 503
func (h *HealthHandler) DBHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logger := logging.GetLoggerFromContext(r.Context())
		logger.Error("store health check failed", "error", err.Error())
		httputil.RespondJSON(w, map[string]any{"ok": false}, http.StatusServiceUnavailable)
		return
	}
	httputil.RespondJSON(w, map[string]any{"ok": true}, http.StatusOK)
}
