package system

import (
	"context"
	"net/http"
	"time"

	"github.com/georgemunganga/printa-pos/internal/httpx"
	"github.com/go-chi/chi/v5"
)

const checkTimeout = 5 * time.Second

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.health) // GET /health
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	res := h.service.Check(ctx)
	status := http.StatusOK
	if res.Status != StatusOK {
		status = http.StatusServiceUnavailable
	}
	httpx.Respond(w, status, res)
}
