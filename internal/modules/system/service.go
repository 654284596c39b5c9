package system

import (
	"context"
	"time"

	"github.com/georgemunganga/printa-pos/internal/store"
	"go.uber.org/zap"
)

// Health is the store connectivity report served by GET /health.
type Health struct {
	Status     string    `json:"status"`
	Store      string    `json:"store"`
	ServerInfo string    `json:"server_info,omitempty"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

type Service interface {
	Check(ctx context.Context) Health
}

type service struct {
	gw  store.Gateway
	log *zap.Logger
	now func() time.Time
}

func NewService(gw store.Gateway, log *zap.Logger) Service {
	return &service{gw: gw, log: log, now: time.Now}
}

// Check pings the store and, when it answers, asks for its version string.
// A failing version query does not degrade an otherwise reachable store.
func (s *service) Check(ctx context.Context) Health {
	h := Health{Status: StatusOK, Store: "up", CheckedAt: s.now().UTC()}

	if err := s.gw.Ping(ctx); err != nil {
		s.log.Warn("store ping failed", zap.Error(err))
		h.Status = StatusDegraded
		h.Store = "down"
		h.Error = err.Error()
		return h
	}

	info, err := s.gw.ServerInfo(ctx)
	if err != nil {
		s.log.Debug("server info unavailable", zap.Error(err))
		return h
	}
	h.ServerInfo = info
	return h
}
